package policy

import "time"

// Document is a company policy entry served read-only to the console.
type Document struct {
	ID        string
	Title     string
	Category  string
	Summary   string
	Body      string
	UpdatedAt time.Time
}
