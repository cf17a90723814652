package policy

import "errors"

var ErrDocumentNotFound = errors.New("policy document not found")
