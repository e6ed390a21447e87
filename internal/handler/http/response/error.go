package response

import (
	"errors"
	"net/http"

	"github.com/attendash/attendance-backend-go/internal/domain/attendance"
	"github.com/attendash/attendance-backend-go/internal/domain/auth"
	"github.com/attendash/attendance-backend-go/internal/domain/employee"
	"github.com/attendash/attendance-backend-go/internal/domain/settings"
	"github.com/attendash/attendance-backend-go/internal/pkg/database"
	"github.com/attendash/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Storage outages come first: the device must see 503 so it retries
	// rather than dropping the scan.
	case errors.Is(err, database.ErrUnavailable):
		ServiceUnavailable(w, "Storage temporarily unavailable, retry the request")

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrUnknownFingerprint):
		NotFound(w, "No employee enrolled with this fingerprint")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrRollNumberExists):
		Conflict(w, "Roll number already exists")
	case errors.Is(err, employee.ErrAlreadyEnrolled):
		Conflict(w, "Employee already has a fingerprint assigned")
	case errors.Is(err, employee.ErrFingerprintInUse):
		Conflict(w, "Fingerprint id is already assigned to another employee")
	case errors.Is(err, employee.ErrEnrollmentRequired):
		Conflict(w, "Employee has no fingerprint enrolled")
	case errors.Is(err, employee.ErrInvalidStatus):
		BadRequest(w, "Invalid employee status", nil)

	// Settings domain errors
	case errors.Is(err, settings.ErrInvalidWindow):
		BadRequest(w, "Window start must not be after window end", nil)
	case errors.Is(err, settings.ErrWindowsNotFound):
		NotFound(w, "Time windows are not configured")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
