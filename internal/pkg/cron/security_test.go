package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aicorp/command-center-go/internal/repository/memory"
)

func TestFailurePruneJobDropsAgedEntries(t *testing.T) {
	tracker := memory.NewLoginFailureRepository()
	now := time.Now()

	require.NoError(t, tracker.RecordFailure(context.Background(), "e.reed", now.Add(-2*time.Hour)))
	require.NoError(t, tracker.RecordFailure(context.Background(), "e.reed", now.Add(-10*time.Minute)))
	require.NoError(t, tracker.RecordFailure(context.Background(), "m.chen", now.Add(-3*time.Hour)))

	s := NewScheduler()
	RegisterFailurePrune(s, tracker)
	s.RunOnce(context.Background())

	// Entries older than the counting window are gone, fresh ones remain.
	count, err := tracker.CountSince(context.Background(), "e.reed", now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = tracker.CountSince(context.Background(), "m.chen", now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Zero(t, count)
}
