package auth

import "context"

// Classifier turns a login attempt's metadata into a verdict. The production
// implementation delegates to a generative text model; the interface exists
// so callers never depend on the provider and a rule-based heuristic can be
// swapped in without touching them.
type Classifier interface {
	ClassifyLogin(ctx context.Context, attempt LoginAttempt) (LoginVerdict, error)
}
