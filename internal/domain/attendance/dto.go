package attendance

import (
	"strings"

	"github.com/aicorp/command-center-go/internal/pkg/validator"
)

type SubmitRequest struct {
	EmployeeEmail string `json:"employee_email"`
	Date          string `json:"date"`
	Status        string `json:"status"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_email",
			Message: "employee_email is required",
		})
	} else if !validator.IsValidEmail(r.EmployeeEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_email",
			Message: "employee_email must be a valid email address",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	} else if !validator.IsInSlice(r.Status, StatusValues()) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(StatusValues(), ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListFilter narrows the record list for drill-down queries. All fields are
// optional; empty means no constraint.
type ListFilter struct {
	EmployeeEmail string `json:"employee_email"`
	Date          string `json:"date"`  // YYYY-MM-DD
	Month         string `json:"month"` // YYYY-MM
	Status        string `json:"status"`
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(f.EmployeeEmail) && !validator.IsValidEmail(f.EmployeeEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_email",
			Message: "employee_email must be a valid email address",
		})
	}

	if !validator.IsEmpty(f.Date) {
		if _, ok := validator.IsValidDate(f.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if !validator.IsEmpty(f.Month) {
		if _, ok := validator.IsValidMonth(f.Month); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be in YYYY-MM format",
			})
		}
	}

	if !validator.IsEmpty(f.Date) && !validator.IsEmpty(f.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "date and month filters are mutually exclusive",
		})
	}

	if !validator.IsEmpty(f.Status) && !validator.IsInSlice(f.Status, StatusValues()) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(StatusValues(), ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	ID            string `json:"id"`
	EmployeeEmail string `json:"employee_email"`
	Date          string `json:"date"`
	Status        string `json:"status"`
}

func ToRecordResponse(rec Record) RecordResponse {
	return RecordResponse{
		ID:            rec.ID,
		EmployeeEmail: rec.EmployeeEmail,
		Date:          rec.Date.Format("2006-01-02"),
		Status:        string(rec.Status),
	}
}

type ListResponse struct {
	Records []RecordResponse `json:"records"`
	Total   int              `json:"total"`
}

type DailySummaryResponse struct {
	Date    string `json:"date"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
	OnLeave int    `json:"on_leave"`
	HalfDay int    `json:"half_day"`
	Total   int    `json:"total"`
}

type MonthlySummaryResponse struct {
	Month   string `json:"month"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
	OnLeave int    `json:"on_leave"`
	HalfDay int    `json:"half_day"`
	Total   int    `json:"total"`
}

type UserMonthlySummaryResponse struct {
	Month         string `json:"month"`
	EmployeeEmail string `json:"employee_email"`
	Present       int    `json:"present"`
	Absent        int    `json:"absent"`
	OnLeave       int    `json:"on_leave"`
	HalfDay       int    `json:"half_day"`
	Total         int    `json:"total"`
}
