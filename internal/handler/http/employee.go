package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/talentiq/talentiq-backend-go/internal/domain/employee"
	"github.com/talentiq/talentiq-backend-go/internal/handler/http/middleware"
	"github.com/talentiq/talentiq-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	SaveProfile(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// SaveProfile implements EmployeeHandler. The profile row is created on
// first save.
func (e *EmployeeHandlerImpl) SaveProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserID(r)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	// 1. Decode JSON
	var profileReq employee.SaveProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&profileReq); err != nil {
		slog.Error("SaveProfile decode error", "error", err)
		response.Error(w, r, http.StatusBadRequest, "invalid request format")
		return
	}

	// Validate DTO
	if err := profileReq.Validate(); err != nil {
		slog.Error("SaveProfile validate error", "error", err)
		response.HandleError(w, r, err)
		return
	}

	// Call service
	saved, err := e.employeeService.SaveProfile(r.Context(), userID, profileReq)
	if err != nil {
		slog.Error("SaveProfile service error", "error", err)
		response.HandleError(w, r, err)
		return
	}

	// Success response
	response.JSON(w, r, http.StatusOK, saved)
}

// GetProfile implements EmployeeHandler.
func (e *EmployeeHandlerImpl) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserID(r)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	profile, err := e.employeeService.GetProfile(r.Context(), userID)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, profile)
}
