package attendance

import (
	"context"
)

// Repository defines data access for attendance records. Implementations
// keep the list sorted by date descending and make Append atomic so
// concurrent submissions cannot lose updates.
type Repository interface {
	// List returns all records, newest date first.
	List(ctx context.Context) ([]Record, error)

	// Append inserts a record preserving the descending-date order.
	// It never deduplicates by (employee email, date).
	Append(ctx context.Context, rec Record) error

	// Find returns the records satisfying pred, in list order.
	Find(ctx context.Context, pred func(Record) bool) ([]Record, error)
}
