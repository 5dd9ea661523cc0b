package postgresql

import (
	"context"
	"encoding/json"

	"github.com/talentiq/talentiq-backend-go/internal/domain/department"
	"github.com/talentiq/talentiq-backend-go/internal/pkg/database"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

const departmentColumns = `id, hr_id, name, ingoing, outgoing, promotion, transfer,
		   created_at, updated_at`

func scanDepartment(row interface{ Scan(dest ...any) error }) (department.Department, error) {
	var found department.Department
	err := row.Scan(
		&found.ID,
		&found.HRID,
		&found.Name,
		&found.Ingoing,
		&found.Outgoing,
		&found.Promotion,
		&found.Transfer,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		return department.Department{}, err
	}
	return found, nil
}

// Create implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, hrID string, name string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (hr_id, name)
		VALUES ($1, $2)
		RETURNING ` + departmentColumns

	return scanDepartment(q.QueryRow(ctx, query, hrID, name))
}

// GetByHRAndName implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByHRAndName(ctx context.Context, hrID string, name string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + departmentColumns + `
		FROM departments
		WHERE hr_id = $1 AND name = $2
	`
	return scanDepartment(q.QueryRow(ctx, query, hrID, name))
}

// ListByHR implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) ListByHR(ctx context.Context, hrID string) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + departmentColumns + `
		FROM departments
		WHERE hr_id = $1
		ORDER BY name
	`
	rows, err := q.Query(ctx, query, hrID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		dept, err := scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		departments = append(departments, dept)
	}
	return departments, rows.Err()
}

// AppendIngoing implements department.DepartmentRepository. The ledger is
// append-only; entries are never rewritten or pruned.
func (r *departmentRepositoryImpl) AppendIngoing(ctx context.Context, id string, entry department.LedgerEntry, status string, promotion *string) error {
	return r.appendLedger(ctx, id, "ingoing", entry, status, promotion)
}

// AppendOutgoing implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) AppendOutgoing(ctx context.Context, id string, entry department.LedgerEntry, status string, promotion *string) error {
	return r.appendLedger(ctx, id, "outgoing", entry, status, promotion)
}

func (r *departmentRepositoryImpl) appendLedger(ctx context.Context, id string, column string, entry department.LedgerEntry, status string, promotion *string) error {
	q := GetQuerier(ctx, r.db)

	payload, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	// column is one of the two ledger names, never caller input.
	query := `
		UPDATE departments
		SET ` + column + ` = ` + column + ` || $2::jsonb,
			transfer = $3,
			promotion = COALESCE($4, promotion),
			updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query, id, payload, status, promotion)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}
	return nil
}
