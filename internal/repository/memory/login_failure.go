package memory

import (
	"context"
	"sync"
	"time"
)

// LoginFailureRepository tracks failed and suspicious login attempts per
// username inside a rolling window. A cron job prunes expired entries.
type LoginFailureRepository struct {
	mu       sync.Mutex
	failures map[string][]time.Time
}

func NewLoginFailureRepository() *LoginFailureRepository {
	return &LoginFailureRepository{
		failures: make(map[string][]time.Time),
	}
}

func (r *LoginFailureRepository) RecordFailure(ctx context.Context, username string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.failures[username] = append(r.failures[username], at)
	return nil
}

func (r *LoginFailureRepository) CountSince(ctx context.Context, username string, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, at := range r.failures[username] {
		if !at.Before(cutoff) {
			count++
		}
	}
	return count, nil
}

func (r *LoginFailureRepository) Prune(ctx context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pruned := 0
	for username, times := range r.failures {
		kept := times[:0]
		for _, at := range times {
			if at.Before(cutoff) {
				pruned++
				continue
			}
			kept = append(kept, at)
		}
		if len(kept) == 0 {
			delete(r.failures, username)
			continue
		}
		r.failures[username] = kept
	}
	return pruned, nil
}
