package response

import (
	"errors"
	"net/http"

	"github.com/campuslabs/monitoria-backend-go/internal/domain/adjustment"
	"github.com/campuslabs/monitoria-backend-go/internal/domain/attendance"
	"github.com/campuslabs/monitoria-backend-go/internal/domain/auth"
	"github.com/campuslabs/monitoria-backend-go/internal/domain/schedule"
	"github.com/campuslabs/monitoria-backend-go/internal/domain/sysconfig"
	"github.com/campuslabs/monitoria-backend-go/internal/domain/user"
	"github.com/campuslabs/monitoria-backend-go/internal/pkg/validator"
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
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrMonitorNotFound):
		NotFound(w, "Monitor not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrDirectivoAccessRequired):
		Forbidden(w, "Directivo role required")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrSlotNotFound):
		NotFound(w, "Schedule slot not found")
	case errors.Is(err, schedule.ErrDuplicateSlot):
		Conflict(w, "A slot already exists for this day and shift")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrDuplicateAttendance):
		Conflict(w, "An attendance record already exists for this date and slot")
	case errors.Is(err, attendance.ErrSlotNotOwned):
		Forbidden(w, "Schedule slot does not belong to the user")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, err.Error(), nil)

	// Adjustment domain errors
	case errors.Is(err, adjustment.ErrAdjustmentNotFound):
		NotFound(w, "Hour adjustment not found")

	// Configuration domain errors
	case errors.Is(err, sysconfig.ErrConfigNotFound):
		NotFound(w, "Configuration entry not found")
	case errors.Is(err, sysconfig.ErrClaveExists):
		Conflict(w, "Configuration clave already exists")
	case errors.Is(err, sysconfig.ErrValueTypeMismatch):
		ValidationError(w, map[string]string{"valor": err.Error()})

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
