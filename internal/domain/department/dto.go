package department

import (
	"context"

	"github.com/talentiq/talentiq-backend-go/internal/pkg/validator"
)

type CreateDepartmentRequest struct {
	Name string `json:"name"`
}

func (r *CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DepartmentResponse struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Ingoing   []LedgerEntry `json:"ingoing"`
	Outgoing  []LedgerEntry `json:"outgoing"`
	Promotion *string       `json:"promotion"`
	Transfer  *string       `json:"transfer"`
}

type ListDepartmentsResponse struct {
	Departments []DepartmentResponse `json:"departments"`
}

type DepartmentService interface {
	// Create registers a department under the acting HR; (hr_id, name) is
	// unique.
	Create(ctx context.Context, hrID string, req CreateDepartmentRequest) (DepartmentResponse, error)
	// List returns every department owned by the acting HR, ledgers included.
	List(ctx context.Context, hrID string) (ListDepartmentsResponse, error)
}
