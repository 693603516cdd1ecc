package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/portal-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/portal-backend-go/internal/domain/editsession"
	"github.com/cmlabs-hris/portal-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/portal-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/portal-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
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
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		Unauthorized(w, "OAuth state mismatch")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee ID already exists")
	case errors.Is(err, employee.ErrWorkEmailExists):
		Conflict(w, "Work email already registered in this company")
	case errors.Is(err, employee.ErrSupervisorConflictIndividual):
		Conflict(w, "Supervisor already manages another employee directly")
	case errors.Is(err, employee.ErrSupervisorConflictTeam):
		Conflict(w, "Supervisor already supervises another team")
	case errors.Is(err, employee.ErrAvatarUploadFailed):
		BadRequest(w, "Failed to upload profile picture", nil)
	case errors.Is(err, employee.ErrUnauthorized):
		Forbidden(w, "Not allowed to access this employee")

	// Edit session errors
	case errors.Is(err, editsession.ErrSessionNotFound):
		NotFound(w, "Edit session not found")
	case errors.Is(err, editsession.ErrSessionExists):
		Conflict(w, "Edit session already exists")
	case errors.Is(err, editsession.ErrStepNotInWizard):
		BadRequest(w, "Step is not part of this edit session", nil)
	case errors.Is(err, editsession.ErrSectionMismatch):
		BadRequest(w, "Section payload does not match the step", nil)
	case errors.Is(err, editsession.ErrModalNotOpen):
		Conflict(w, "No discard confirmation is open")
	case errors.Is(err, editsession.ErrNoPendingIntent):
		Conflict(w, "No navigation is pending")
	case errors.Is(err, editsession.ErrNothingToNavigate):
		BadRequest(w, "No step to navigate to", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
