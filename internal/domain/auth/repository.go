package auth

import (
	"context"
	"time"
)

// FailureTracker counts recent login failures per username. It backs the
// classifier's recentFailureCount input with live data instead of a
// hard-coded zero.
type FailureTracker interface {
	// RecordFailure notes a failed or suspicious attempt for username at
	// the given time.
	RecordFailure(ctx context.Context, username string, at time.Time) error

	// CountSince returns the number of recorded failures for username at
	// or after the cutoff.
	CountSince(ctx context.Context, username string, cutoff time.Time) (int, error)

	// Prune drops entries older than the cutoff.
	Prune(ctx context.Context, cutoff time.Time) (int, error)
}
