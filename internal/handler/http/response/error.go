package response

import (
	"errors"
	"net/http"

	"github.com/aicorp/command-center-go/internal/domain/auth"
	"github.com/aicorp/command-center-go/internal/domain/employee"
	"github.com/aicorp/command-center-go/internal/domain/leave"
	"github.com/aicorp/command-center-go/internal/domain/policy"
	"github.com/aicorp/command-center-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrClassifierUnavailable):
		BadGateway(w, "Security screening is temporarily unavailable")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Policy domain errors
	case errors.Is(err, policy.ErrDocumentNotFound):
		NotFound(w, "Policy document not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
