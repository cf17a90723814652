package leave

import (
	"strings"

	"github.com/aicorp/command-center-go/internal/pkg/validator"
)

type ApplyRequest struct {
	EmployeeEmail string `json:"employee_email"`
	Type          string `json:"type"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Reason        string `json:"reason"`
}

func (r *ApplyRequest) Validate() error {
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

	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type is required",
		})
	} else if !validator.IsInSlice(r.Type, TypeValues()) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: " + strings.Join(TypeValues(), ", "),
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(r.Reason) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecideRequest struct {
	ID        string `json:"-"`
	DecidedBy string `json:"-"`
}

type RequestResponse struct {
	ID            string  `json:"id"`
	EmployeeEmail string  `json:"employee_email"`
	Type          string  `json:"type"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Days          int     `json:"days"`
	Reason        string  `json:"reason,omitempty"`
	Status        string  `json:"status"`
	DecidedBy     *string `json:"decided_by,omitempty"`
}

func ToRequestResponse(req Request) RequestResponse {
	return RequestResponse{
		ID:            req.ID,
		EmployeeEmail: req.EmployeeEmail,
		Type:          string(req.Type),
		StartDate:     req.StartDate.Format("2006-01-02"),
		EndDate:       req.EndDate.Format("2006-01-02"),
		Days:          req.Days(),
		Reason:        req.Reason,
		Status:        string(req.Status),
		DecidedBy:     req.DecidedBy,
	}
}

type ListRequestsResponse struct {
	Requests []RequestResponse `json:"requests"`
	Total    int               `json:"total"`
}

type BalanceResponse struct {
	EmployeeEmail   string `json:"employee_email"`
	AnnualTotal     int    `json:"annual_total"`
	AnnualUsed      int    `json:"annual_used"`
	AnnualRemaining int    `json:"annual_remaining"`
	SickTotal       int    `json:"sick_total"`
	SickUsed        int    `json:"sick_used"`
	SickRemaining   int    `json:"sick_remaining"`
	UnpaidUsed      int    `json:"unpaid_used"`
}

func ToBalanceResponse(b Balance) BalanceResponse {
	return BalanceResponse{
		EmployeeEmail:   b.EmployeeEmail,
		AnnualTotal:     b.AnnualTotal,
		AnnualUsed:      b.AnnualUsed,
		AnnualRemaining: b.AnnualTotal - b.AnnualUsed,
		SickTotal:       b.SickTotal,
		SickUsed:        b.SickUsed,
		SickRemaining:   b.SickTotal - b.SickUsed,
		UnpaidUsed:      b.UnpaidUsed,
	}
}
