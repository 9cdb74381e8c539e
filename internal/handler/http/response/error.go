package response

import (
	"errors"
	"net/http"

	"github.com/acss-labs/acss-backend-go/internal/domain/attendance"
	"github.com/acss-labs/acss-backend-go/internal/domain/auth"
	"github.com/acss-labs/acss-backend-go/internal/domain/report"
	"github.com/acss-labs/acss-backend-go/internal/domain/rules"
	"github.com/acss-labs/acss-backend-go/internal/domain/staff"
	"github.com/acss-labs/acss-backend-go/internal/domain/user"
	"github.com/acss-labs/acss-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff member not found")
	case errors.Is(err, staff.ErrBadgeIDExists):
		Conflict(w, "Badge id already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "No open check-in to check out from")
	case errors.Is(err, attendance.ErrEventNotFound):
		NotFound(w, "Attendance record not found")

	// Rules domain errors
	case errors.Is(err, rules.ErrRulesNotFound):
		NotFound(w, "Attendance rules not found")
	case errors.Is(err, rules.ErrUnknownField):
		BadRequest(w, "Unknown rules field path", nil)

	// Report domain errors
	case errors.Is(err, report.ErrInvalidDateRange):
		BadRequest(w, "Invalid date range", nil)
	case errors.Is(err, report.ErrUnknownPreset):
		BadRequest(w, "Unknown date range preset", nil)
	case errors.Is(err, report.ErrEmptyReport):
		NotFound(w, "No attendance data in range")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
