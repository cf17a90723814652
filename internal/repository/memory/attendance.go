package memory

import (
	"context"
	"sync"

	"github.com/aicorp/command-center-go/internal/domain/attendance"
)

// AttendanceRepository keeps the record list in process memory, sorted by
// date descending. Appends are serialized so concurrent submissions cannot
// lose updates.
type AttendanceRepository struct {
	mu      sync.RWMutex
	records []attendance.Record
}

func NewAttendanceRepository(seed []attendance.Record) *AttendanceRepository {
	repo := &AttendanceRepository{}
	for _, rec := range seed {
		repo.records = attendance.Insert(repo.records, rec)
	}
	return repo
}

func (r *AttendanceRepository) List(ctx context.Context) ([]attendance.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]attendance.Record, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *AttendanceRepository) Append(ctx context.Context, rec attendance.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = attendance.Insert(r.records, rec)
	return nil
}

func (r *AttendanceRepository) Find(ctx context.Context, pred func(attendance.Record) bool) ([]attendance.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return attendance.Matching(r.records, pred), nil
}
