package employee

import (
	"strings"
	"time"

	"github.com/aicorp/command-center-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Role       string `json:"role"`
	Status     string `json:"status"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
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

type EmployeeResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Department string  `json:"department"`
	Role       string  `json:"role"`
	Status     string  `json:"status"`
	AvatarURL  *string `json:"avatar_url,omitempty"`
}

func ToEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Department: e.Department,
		Role:       e.Role,
		Status:     string(e.Status),
		AvatarURL:  e.AvatarURL,
	}
}

type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int                `json:"total"`
}

type AssetResponse struct {
	AssetID        string               `json:"asset_id"`
	Type           string               `json:"type"`
	Name           string               `json:"name"`
	Make           string               `json:"make"`
	Model          string               `json:"model"`
	SerialNumber   *string              `json:"serial_number,omitempty"`
	Specifications []AssetSpecification `json:"specifications"`
	AssignedDate   string               `json:"assigned_date"`
	PurchaseDate   *string              `json:"purchase_date,omitempty"`
}

func ToAssetResponse(a Asset) AssetResponse {
	resp := AssetResponse{
		AssetID:        a.AssetID,
		Type:           string(a.Type),
		Name:           a.Name,
		Make:           a.Make,
		Model:          a.Model,
		SerialNumber:   a.SerialNumber,
		Specifications: a.Specifications,
		AssignedDate:   a.AssignedDate.Format(time.RFC3339),
	}
	if a.PurchaseDate != nil {
		formatted := a.PurchaseDate.Format(time.RFC3339)
		resp.PurchaseDate = &formatted
	}
	return resp
}

type ListAssetsResponse struct {
	Assets []AssetResponse `json:"assets"`
	Total  int             `json:"total"`
}
