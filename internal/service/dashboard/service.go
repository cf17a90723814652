package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aicorp/command-center-go/internal/domain/dashboard"
)

// monthlyRecordLimit caps the record list embedded in the dashboard payload.
const monthlyRecordLimit = 10

type DashboardServiceImpl struct {
	repo dashboard.DashboardRepository
	now  func() time.Time
}

func NewDashboardService(repo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		repo: repo,
		now:  time.Now,
	}
}

// NewDashboardServiceWithClock injects the clock for tests.
func NewDashboardServiceWithClock(repo dashboard.DashboardRepository, now func() time.Time) dashboard.DashboardService {
	return &DashboardServiceImpl{
		repo: repo,
		now:  now,
	}
}

// GetDashboard assembles the landing view with one goroutine per aggregate.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (*dashboard.DashboardResponse, error) {
	now := s.now()
	year, month := now.Year(), now.Month()

	var (
		employeeSummary   dashboard.EmployeeSummaryStats
		todaySummary      = dashboard.TodayAttendanceResponse{Date: now.Format("2006-01-02")}
		monthlyAttendance dashboard.MonthlyAttendanceData
		pendingLeave      int
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		employeeSummary, err = s.repo.GetEmployeeSummary(gctx)
		return err
	})

	g.Go(func() error {
		summary, err := s.repo.GetDailyAttendance(gctx, now)
		if err != nil {
			return err
		}
		todaySummary.Present = summary.Present
		todaySummary.Absent = summary.Absent
		todaySummary.OnLeave = summary.OnLeave
		todaySummary.HalfDay = summary.HalfDay
		todaySummary.Total = summary.Total()
		return nil
	})

	g.Go(func() error {
		var err error
		monthlyAttendance, err = s.repo.GetMonthlyAttendance(gctx, year, month, monthlyRecordLimit)
		return err
	})

	g.Go(func() error {
		var err error
		pendingLeave, err = s.repo.GetPendingLeaveCount(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	monthly := dashboard.MonthlyAttendanceResponse{
		Month:   time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01"),
		Present: monthlyAttendance.Summary.Present,
		Absent:  monthlyAttendance.Summary.Absent,
		OnLeave: monthlyAttendance.Summary.OnLeave,
		HalfDay: monthlyAttendance.Summary.HalfDay,
		Records: make([]dashboard.AttendanceRecordItem, 0, len(monthlyAttendance.Records)),
	}
	for i, rec := range monthlyAttendance.Records {
		monthly.Records = append(monthly.Records, dashboard.AttendanceRecordItem{
			No:            i + 1,
			EmployeeEmail: rec.EmployeeEmail,
			Date:          rec.Date.Format("2006-01-02"),
			Status:        string(rec.Status),
		})
	}

	return &dashboard.DashboardResponse{
		EmployeeSummary: dashboard.EmployeeSummaryResponse{
			Total:      employeeSummary.Total,
			Active:     employeeSummary.Active,
			OnLeave:    employeeSummary.OnLeave,
			Terminated: employeeSummary.Terminated,
		},
		TodayAttendance:   todaySummary,
		MonthlyAttendance: monthly,
		PendingLeave:      dashboard.PendingLeaveResponse{Count: pendingLeave},
	}, nil
}
