package attendance

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/aicorp/command-center-go/internal/domain/attendance"
)

type AttendanceServiceImpl struct {
	repo attendance.Repository
	now  func() time.Time
}

func NewAttendanceService(repo attendance.Repository) attendance.Service {
	return &AttendanceServiceImpl{
		repo: repo,
		now:  time.Now,
	}
}

// NewAttendanceServiceWithClock injects the clock for tests.
func NewAttendanceServiceWithClock(repo attendance.Repository, now func() time.Time) attendance.Service {
	return &AttendanceServiceImpl{
		repo: repo,
		now:  now,
	}
}

func (s *AttendanceServiceImpl) Submit(ctx context.Context, req attendance.SubmitRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	// Validate() already proved the format.
	day, _ := time.Parse("2006-01-02", req.Date)

	rec := attendance.Record{
		ID:            uuid.New().String(),
		EmployeeEmail: req.EmployeeEmail,
		Date:          attendance.NormalizeDate(day),
		Status:        attendance.Status(req.Status),
		CreatedAt:     s.now(),
	}

	if err := s.repo.Append(ctx, rec); err != nil {
		return attendance.RecordResponse{}, err
	}
	return attendance.ToRecordResponse(rec), nil
}

func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListFilter) (attendance.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListResponse{}, err
	}

	var filterDay time.Time
	if filter.Date != "" {
		filterDay, _ = time.Parse("2006-01-02", filter.Date)
	}
	var filterMonth time.Time
	if filter.Month != "" {
		filterMonth, _ = time.Parse("2006-01", filter.Month)
	}

	records, err := s.repo.Find(ctx, func(rec attendance.Record) bool {
		if filter.EmployeeEmail != "" && rec.EmployeeEmail != filter.EmployeeEmail {
			return false
		}
		if filter.Date != "" && !attendance.SameDay(rec.Date, filterDay) {
			return false
		}
		if filter.Month != "" && (rec.Date.Year() != filterMonth.Year() || rec.Date.Month() != filterMonth.Month()) {
			return false
		}
		if filter.Status != "" && rec.Status != attendance.Status(filter.Status) {
			return false
		}
		return true
	})
	if err != nil {
		return attendance.ListResponse{}, err
	}

	// The per-employee-month drill-down reads as a day-by-day trace, so it
	// flips to day ascending. Every other view keeps newest first.
	if filter.EmployeeEmail != "" && filter.Month != "" && filter.Status != "" {
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Date.Before(records[j].Date)
		})
	}

	resp := attendance.ListResponse{
		Records: make([]attendance.RecordResponse, 0, len(records)),
		Total:   len(records),
	}
	for _, rec := range records {
		resp.Records = append(resp.Records, attendance.ToRecordResponse(rec))
	}
	return resp, nil
}

func (s *AttendanceServiceImpl) Daily(ctx context.Context, date string) (attendance.DailySummaryResponse, error) {
	day := s.now()
	if date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			return attendance.DailySummaryResponse{}, err
		}
		day = parsed
	}

	records, err := s.repo.List(ctx)
	if err != nil {
		return attendance.DailySummaryResponse{}, err
	}

	summary := attendance.DailySummary(records, day)
	return attendance.DailySummaryResponse{
		Date:    attendance.NormalizeDate(day).Format("2006-01-02"),
		Present: summary.Present,
		Absent:  summary.Absent,
		OnLeave: summary.OnLeave,
		HalfDay: summary.HalfDay,
		Total:   summary.Total(),
	}, nil
}

func (s *AttendanceServiceImpl) Monthly(ctx context.Context) ([]attendance.MonthlySummaryResponse, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := attendance.MonthlySummaries(records)
	resp := make([]attendance.MonthlySummaryResponse, 0, len(summaries))
	for _, monthly := range summaries {
		resp = append(resp, attendance.MonthlySummaryResponse{
			Month:   monthly.MonthKey(),
			Present: monthly.Present,
			Absent:  monthly.Absent,
			OnLeave: monthly.OnLeave,
			HalfDay: monthly.HalfDay,
			Total:   monthly.Total(),
		})
	}
	return resp, nil
}

func (s *AttendanceServiceImpl) MonthlyByEmployee(ctx context.Context) ([]attendance.UserMonthlySummaryResponse, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := attendance.UserMonthlySummaries(records)
	resp := make([]attendance.UserMonthlySummaryResponse, 0, len(summaries))
	for _, user := range summaries {
		resp = append(resp, attendance.UserMonthlySummaryResponse{
			Month:         user.MonthKey(),
			EmployeeEmail: user.EmployeeEmail,
			Present:       user.Present,
			Absent:        user.Absent,
			OnLeave:       user.OnLeave,
			HalfDay:       user.HalfDay,
			Total:         user.Total(),
		})
	}
	return resp, nil
}
