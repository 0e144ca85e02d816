package response

import (
	"errors"
	"net/http"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/area"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/attendance"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/auth"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/schedule"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/user"
	"github.com/asistencia-qr/attendance-backend-go/internal/domain/worker"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/scanner"
	"github.com/asistencia-qr/attendance-backend-go/internal/pkg/validator"
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
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "User account is inactive")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Administrator access required")
	case errors.Is(err, user.ErrStaffAccessRequired):
		Forbidden(w, "Supervisor or administrator access required")

	// Attendance scan rejections
	case errors.Is(err, attendance.ErrWorkerNotFound):
		NotFound(w, "No active worker matches the scanned code")
	case errors.Is(err, attendance.ErrNoSchedule):
		Conflict(w, "Worker has no schedule assigned")
	case errors.Is(err, attendance.ErrIncompleteSchedule):
		Conflict(w, "Worker schedule is missing entry or exit time")
	case errors.Is(err, attendance.ErrNonWorkingDay):
		Conflict(w, "Today is not a working day for this worker")
	case errors.Is(err, attendance.ErrAlreadyCompleted):
		Conflict(w, "Attendance for today is already complete")
	case errors.Is(err, attendance.ErrDuplicateScan):
		Conflict(w, "A simultaneous scan was already recorded")
	case errors.Is(err, attendance.ErrTransient):
		ServiceUnavailable(w, "Scan could not be processed, please retry")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Worker domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrDNIExists):
		Conflict(w, "DNI already registered")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Schedule not found")
	case errors.Is(err, schedule.ErrScheduleInUse):
		Conflict(w, "Schedule is assigned to workers and cannot be deleted")

	// Catalog errors
	case errors.Is(err, area.ErrAreaNotFound):
		NotFound(w, "Area not found")

	// Scanner process
	case errors.Is(err, scanner.ErrAlreadyRunning):
		Conflict(w, "Scanner is already running")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
