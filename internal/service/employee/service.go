package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/talentiq/talentiq-backend-go/internal/domain/employee"
)

const profileTimeout = 10 * time.Second

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// SaveProfile implements employee.EmployeeService.
func (e *EmployeeServiceImpl) SaveProfile(ctx context.Context, userID string, req employee.SaveProfileRequest) (employee.ProfileResponse, error) {
	saveCtx, cancel := context.WithTimeout(ctx, profileTimeout)
	defer cancel()

	saved, err := e.employeeRepo.Upsert(saveCtx, employee.Employee{
		UserID:     userID,
		Bio:        req.Bio,
		Skills:     req.Skills,
		Education:  req.Education,
		Experience: req.Experience,
		Resume:     req.Resume,
	})
	if err != nil {
		return employee.ProfileResponse{}, fmt.Errorf("failed to save profile: %w", err)
	}

	return profileResponse(saved), nil
}

// GetProfile implements employee.EmployeeService.
func (e *EmployeeServiceImpl) GetProfile(ctx context.Context, userID string) (employee.ProfileResponse, error) {
	getCtx, cancel := context.WithTimeout(ctx, profileTimeout)
	defer cancel()

	found, err := e.employeeRepo.GetByUserID(getCtx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ProfileResponse{}, employee.ErrProfileNotFound
		}
		return employee.ProfileResponse{}, fmt.Errorf("failed to get profile: %w", err)
	}

	return profileResponse(found), nil
}

func profileResponse(p employee.Employee) employee.ProfileResponse {
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	return employee.ProfileResponse{
		UserID:     p.UserID,
		Bio:        p.Bio,
		Skills:     skills,
		Education:  p.Education,
		Experience: p.Experience,
		Resume:     p.Resume,
	}
}
