package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/talentiq/talentiq-backend-go/internal/domain/department"
	"github.com/talentiq/talentiq-backend-go/internal/handler/http/middleware"
	"github.com/talentiq/talentiq-backend-go/internal/handler/http/response"
)

type DepartmentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type DepartmentHandlerImpl struct {
	departmentService department.DepartmentService
}

func NewDepartmentHandler(departmentService department.DepartmentService) DepartmentHandler {
	return &DepartmentHandlerImpl{departmentService: departmentService}
}

// Create implements DepartmentHandler.
func (d *DepartmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	hrID, err := middleware.UserID(r)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	// 1. Decode JSON
	var createReq department.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateDepartment decode error", "error", err)
		response.Error(w, r, http.StatusBadRequest, "invalid request format")
		return
	}

	// Validate DTO
	if err := createReq.Validate(); err != nil {
		slog.Error("CreateDepartment validate error", "error", err)
		response.HandleError(w, r, err)
		return
	}

	// Call service
	created, err := d.departmentService.Create(r.Context(), hrID, createReq)
	if err != nil {
		slog.Error("CreateDepartment service error", "error", err, "name", createReq.Name)
		response.HandleError(w, r, err)
		return
	}

	// Success response
	slog.Info("Department created successfully", "name", createReq.Name)
	response.JSON(w, r, http.StatusCreated, created)
}

// List implements DepartmentHandler.
func (d *DepartmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	hrID, err := middleware.UserID(r)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	departments, err := d.departmentService.List(r.Context(), hrID)
	if err != nil {
		slog.Error("ListDepartments service error", "error", err)
		response.HandleError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, departments)
}
