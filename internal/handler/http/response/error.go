package response

import (
	"errors"
	"net/http"

	"github.com/alsaqr-welding/portal-backend-go/internal/domain/attendance"
	"github.com/alsaqr-welding/portal-backend-go/internal/domain/auth"
	"github.com/alsaqr-welding/portal-backend-go/internal/domain/transaction"
	"github.com/alsaqr-welding/portal-backend-go/internal/domain/user"
	"github.com/alsaqr-welding/portal-backend-go/internal/pkg/actor"
	"github.com/alsaqr-welding/portal-backend-go/internal/pkg/validator"
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
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, actor.ErrNoActor):
		Unauthorized(w, "Invalid or expired token")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrNameTaken):
		Conflict(w, "A user with this name already exists")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Transaction workflow errors
	case errors.Is(err, transaction.ErrTransactionNotFound):
		NotFound(w, "Transaction not found")
	case errors.Is(err, transaction.ErrNotPending):
		Conflict(w, "Transaction has already been decided")
	case errors.Is(err, transaction.ErrInvalidAmount):
		BadRequest(w, "Amount must be positive", nil)
	case errors.Is(err, transaction.ErrInvalidDecision):
		BadRequest(w, "Decision must be APPROVED or REJECTED", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrShiftAlreadyOpen):
		Conflict(w, "You already have an open shift")
	case errors.Is(err, attendance.ErrNoOpenShift):
		Conflict(w, "You have no open shift to close")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrLocationUnavailable):
		BadRequest(w, "Location could not be captured", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
