package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/talentiq/talentiq-backend-go/internal/domain/account"
	"github.com/talentiq/talentiq-backend-go/internal/domain/auth"
	"github.com/talentiq/talentiq-backend-go/internal/domain/department"
	"github.com/talentiq/talentiq-backend-go/internal/domain/employee"
	"github.com/talentiq/talentiq-backend-go/internal/domain/mobility"
	"github.com/talentiq/talentiq-backend-go/internal/domain/user"
	"github.com/talentiq/talentiq-backend-go/internal/pkg/validator"
)

// ErrorBody is the single error shape returned by every endpoint.
type ErrorBody struct {
	Error string `json:"error"`
}

// Error writes an error body with the given status.
func Error(w http.ResponseWriter, r *http.Request, status int, message string) {
	JSON(w, r, status, ErrorBody{Error: message})
}

// HandleError maps a domain error to its HTTP status and writes the error
// body. Unrecognized errors become a generic 500 and are logged.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		Error(w, r, http.StatusBadRequest, validationErrs.Error())
		return
	}

	var deptNotFound *department.NotFoundError
	if errors.As(err, &deptNotFound) {
		Error(w, r, http.StatusNotFound, deptNotFound.Error())
		return
	}

	switch {
	case errors.Is(err, auth.ErrProviderNotSupported):
		Error(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrProviderVerification),
		errors.Is(err, auth.ErrSessionCookieNotFound):
		Error(w, r, http.StatusUnauthorized, err.Error())
	case errors.Is(err, user.ErrHRAccessRequired),
		errors.Is(err, user.ErrAdminAccessRequired):
		Error(w, r, http.StatusForbidden, err.Error())
	case errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, account.ErrAccountNotFound),
		errors.Is(err, department.ErrDepartmentNotFound),
		errors.Is(err, employee.ErrProfileNotFound):
		Error(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, auth.ErrEmailAlreadyExists),
		errors.Is(err, user.ErrEmailAlreadyExists),
		errors.Is(err, department.ErrDepartmentExists),
		errors.Is(err, mobility.ErrTransferConflict):
		Error(w, r, http.StatusConflict, err.Error())
	default:
		slog.ErrorContext(r.Context(), "unhandled error", slog.Any("error", err))
		Error(w, r, http.StatusInternalServerError, "internal server error")
	}
}
