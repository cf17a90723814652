package memory

import (
	"context"
	"time"

	"github.com/aicorp/command-center-go/internal/domain/attendance"
	"github.com/aicorp/command-center-go/internal/domain/dashboard"
	"github.com/aicorp/command-center-go/internal/domain/employee"
	"github.com/aicorp/command-center-go/internal/domain/leave"
)

// DashboardRepository composes the other in-memory repositories into the
// read-only aggregates the landing view needs.
type DashboardRepository struct {
	employees  *EmployeeRepository
	attendance *AttendanceRepository
	leaves     *LeaveRequestRepository
}

func NewDashboardRepository(
	employees *EmployeeRepository,
	attendanceRepo *AttendanceRepository,
	leaves *LeaveRequestRepository,
) *DashboardRepository {
	return &DashboardRepository{
		employees:  employees,
		attendance: attendanceRepo,
		leaves:     leaves,
	}
}

func (r *DashboardRepository) GetEmployeeSummary(ctx context.Context) (dashboard.EmployeeSummaryStats, error) {
	emps, err := r.employees.List(ctx)
	if err != nil {
		return dashboard.EmployeeSummaryStats{}, err
	}

	stats := dashboard.EmployeeSummaryStats{Total: len(emps)}
	for _, emp := range emps {
		switch emp.Status {
		case employee.StatusActive:
			stats.Active++
		case employee.StatusOnLeave:
			stats.OnLeave++
		case employee.StatusTerminated:
			stats.Terminated++
		}
	}
	return stats, nil
}

func (r *DashboardRepository) GetDailyAttendance(ctx context.Context, date time.Time) (attendance.Summary, error) {
	records, err := r.attendance.List(ctx)
	if err != nil {
		return attendance.Summary{}, err
	}
	return attendance.DailySummary(records, date), nil
}

func (r *DashboardRepository) GetMonthlyAttendance(ctx context.Context, year int, month time.Month, limit int) (dashboard.MonthlyAttendanceData, error) {
	records, err := r.attendance.Find(ctx, func(rec attendance.Record) bool {
		return rec.Date.Year() == year && rec.Date.Month() == month
	})
	if err != nil {
		return dashboard.MonthlyAttendanceData{}, err
	}

	data := dashboard.MonthlyAttendanceData{Records: records}
	for _, monthly := range attendance.MonthlySummaries(records) {
		if monthly.Year == year && monthly.Month == month {
			data.Summary = monthly.Summary
			break
		}
	}
	if limit > 0 && len(data.Records) > limit {
		data.Records = data.Records[:limit]
	}
	return data, nil
}

func (r *DashboardRepository) GetPendingLeaveCount(ctx context.Context) (int, error) {
	requests, err := r.leaves.List(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, req := range requests {
		if req.Status == leave.RequestStatusPending {
			count++
		}
	}
	return count, nil
}
