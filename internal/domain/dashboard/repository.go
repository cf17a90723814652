package dashboard

import (
	"context"
	"time"

	"github.com/aicorp/command-center-go/internal/domain/attendance"
)

// EmployeeSummaryStats combines roster counts by status.
type EmployeeSummaryStats struct {
	Total      int
	Active     int
	OnLeave    int
	Terminated int
}

// MonthlyAttendanceData combines a month's tally with its latest records.
type MonthlyAttendanceData struct {
	Summary attendance.Summary
	Records []attendance.Record
}

// DashboardRepository defines the read-only aggregates behind the landing
// view. Each method is a single pass over the backing store so the service
// can fan them out concurrently.
type DashboardRepository interface {
	GetEmployeeSummary(ctx context.Context) (EmployeeSummaryStats, error)

	GetDailyAttendance(ctx context.Context, date time.Time) (attendance.Summary, error)

	// GetMonthlyAttendance returns the tally for (year, month) plus up to
	// limit latest records of that month.
	GetMonthlyAttendance(ctx context.Context, year int, month time.Month, limit int) (MonthlyAttendanceData, error)

	GetPendingLeaveCount(ctx context.Context) (int, error)
}
