package auth

import "time"

// LoginAttempt carries the metadata of a single login submission. It is
// built per submission and handed to the classifier; it is never stored.
type LoginAttempt struct {
	Username           string
	SourceAddress      string
	Timestamp          time.Time
	ClientAgent        string
	RecentFailureCount int
}

// LoginVerdict is the structured result of classifying a login attempt.
// Reason is empty exactly when the attempt is not suspicious. The verdict is
// advisory: it selects the message shown to the operator and feeds the
// security alert feed, but it never blocks the login.
type LoginVerdict struct {
	IsSuspicious bool   `json:"isSuspicious"`
	Reason       string `json:"reason"`
}
