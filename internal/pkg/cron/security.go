package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/aicorp/command-center-go/internal/domain/auth"
)

// FailureWindow is how far back login failures count toward the
// classifier's recentFailureCount input.
const FailureWindow = time.Hour

// RegisterFailurePrune schedules periodic pruning of login-failure entries
// that have aged out of the counting window.
func RegisterFailurePrune(s *Scheduler, tracker auth.FailureTracker) {
	s.AddJob("login-failure-prune", 10*time.Minute, func(ctx context.Context) error {
		dropped, err := tracker.Prune(ctx, time.Now().Add(-FailureWindow))
		if err != nil {
			return err
		}
		if dropped > 0 {
			slog.Debug("Pruned stale login failures", "count", dropped)
		}
		return nil
	})
}
