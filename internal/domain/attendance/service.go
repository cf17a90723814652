package attendance

import (
	"context"
)

// Service defines business logic for attendance tracking and reporting.
type Service interface {
	// Submit records a new attendance entry.
	Submit(ctx context.Context, req SubmitRequest) (RecordResponse, error)

	// List returns records narrowed by the drill-down filter. When the
	// filter combines employee, month, and status the result is ordered by
	// day of month ascending; otherwise list order (newest first) is kept.
	List(ctx context.Context, filter ListFilter) (ListResponse, error)

	// Daily tallies the records of one calendar day. An empty date means
	// today.
	Daily(ctx context.Context, date string) (DailySummaryResponse, error)

	// Monthly tallies records per calendar month, newest month first.
	Monthly(ctx context.Context) ([]MonthlySummaryResponse, error)

	// MonthlyByEmployee tallies records per employee per month.
	MonthlyByEmployee(ctx context.Context) ([]UserMonthlySummaryResponse, error)
}
