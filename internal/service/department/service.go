package department

import (
	"context"
	"fmt"
	"time"

	"github.com/talentiq/talentiq-backend-go/internal/domain/department"
	"github.com/talentiq/talentiq-backend-go/internal/repository/postgresql"
)

const departmentTimeout = 10 * time.Second

type DepartmentServiceImpl struct {
	departmentRepo department.DepartmentRepository
}

func NewDepartmentService(departmentRepo department.DepartmentRepository) department.DepartmentService {
	return &DepartmentServiceImpl{departmentRepo: departmentRepo}
}

// Create implements department.DepartmentService.
func (d *DepartmentServiceImpl) Create(ctx context.Context, hrID string, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	createCtx, cancel := context.WithTimeout(ctx, departmentTimeout)
	defer cancel()

	created, err := d.departmentRepo.Create(createCtx, hrID, req.Name)
	if err != nil {
		if postgresql.IsUniqueViolation(err) {
			return department.DepartmentResponse{}, department.ErrDepartmentExists
		}
		return department.DepartmentResponse{}, fmt.Errorf("failed to create department: %w", err)
	}

	return departmentResponse(created), nil
}

// List implements department.DepartmentService.
func (d *DepartmentServiceImpl) List(ctx context.Context, hrID string) (department.ListDepartmentsResponse, error) {
	listCtx, cancel := context.WithTimeout(ctx, departmentTimeout)
	defer cancel()

	departments, err := d.departmentRepo.ListByHR(listCtx, hrID)
	if err != nil {
		return department.ListDepartmentsResponse{}, fmt.Errorf("failed to list departments: %w", err)
	}

	resp := department.ListDepartmentsResponse{
		Departments: make([]department.DepartmentResponse, 0, len(departments)),
	}
	for _, dept := range departments {
		resp.Departments = append(resp.Departments, departmentResponse(dept))
	}
	return resp, nil
}

func departmentResponse(dept department.Department) department.DepartmentResponse {
	if dept.Ingoing == nil {
		dept.Ingoing = []department.LedgerEntry{}
	}
	if dept.Outgoing == nil {
		dept.Outgoing = []department.LedgerEntry{}
	}
	return department.DepartmentResponse{
		ID:        dept.ID,
		Name:      dept.Name,
		Ingoing:   dept.Ingoing,
		Outgoing:  dept.Outgoing,
		Promotion: dept.Promotion,
		Transfer:  dept.Transfer,
	}
}
