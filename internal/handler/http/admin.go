package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/talentiq/talentiq-backend-go/internal/domain/auth"
	"github.com/talentiq/talentiq-backend-go/internal/handler/http/response"
	"github.com/talentiq/talentiq-backend-go/internal/pkg/validator"
)

type AdminHandler interface {
	DeleteUser(w http.ResponseWriter, r *http.Request)
}

type AdminHandlerImpl struct {
	authService auth.AuthService
}

func NewAdminHandler(authService auth.AuthService) AdminHandler {
	return &AdminHandlerImpl{authService: authService}
}

// DeleteUser implements AdminHandler. Hard delete; accounts and the employee
// profile go with the user row via cascade.
func (a *AdminHandlerImpl) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.Error(w, r, http.StatusBadRequest, "id must be a valid uuid")
		return
	}

	if err := a.authService.DeleteUser(r.Context(), id); err != nil {
		slog.Error("DeleteUser service error", "error", err, "id", id)
		response.HandleError(w, r, err)
		return
	}

	slog.Info("User deleted successfully", "id", id)
	response.JSON(w, r, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}
