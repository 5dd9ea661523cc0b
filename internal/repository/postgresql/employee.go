package postgresql

import (
	"context"

	"github.com/talentiq/talentiq-backend-go/internal/domain/employee"
	"github.com/talentiq/talentiq-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, user_id, bio, skills, education, experience, resume,
		   created_at, updated_at`

func scanEmployee(row interface{ Scan(dest ...any) error }) (employee.Employee, error) {
	var found employee.Employee
	err := row.Scan(
		&found.ID,
		&found.UserID,
		&found.Bio,
		&found.Skills,
		&found.Education,
		&found.Experience,
		&found.Resume,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	return found, nil
}

// Upsert implements employee.EmployeeRepository. The profile row is created
// lazily on first save.
func (r *employeeRepositoryImpl) Upsert(ctx context.Context, profile employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (user_id, bio, skills, education, experience, resume)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE
		SET bio = EXCLUDED.bio,
			skills = EXCLUDED.skills,
			education = EXCLUDED.education,
			experience = EXCLUDED.experience,
			resume = EXCLUDED.resume,
			updated_at = NOW()
		RETURNING ` + employeeColumns

	if profile.Skills == nil {
		profile.Skills = []string{}
	}

	return scanEmployee(q.QueryRow(ctx, query,
		profile.UserID,
		profile.Bio,
		profile.Skills,
		profile.Education,
		profile.Experience,
		profile.Resume,
	))
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE user_id = $1
	`
	return scanEmployee(q.QueryRow(ctx, query, userID))
}
