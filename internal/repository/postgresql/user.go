package postgresql

import (
	"context"

	"github.com/talentiq/talentiq-backend-go/internal/domain/user"
	"github.com/talentiq/talentiq-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `id, email, password_hash, name, image, role, department, position,
		   salary, hr_id, paid, email_verified, created_at, updated_at`

func scanUser(row interface{ Scan(dest ...any) error }) (user.User, error) {
	var found user.User
	err := row.Scan(
		&found.ID,
		&found.Email,
		&found.PasswordHash,
		&found.Name,
		&found.Image,
		&found.Role,
		&found.Department,
		&found.Position,
		&found.Salary,
		&found.HRID,
		&found.Paid,
		&found.EmailVerified,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		return user.User{}, err
	}
	return found, nil
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (
			email, password_hash, name, image, role, department, position,
			salary, hr_id, paid, email_verified
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + userColumns

	if newUser.Department == nil {
		newUser.Department = []string{}
	}
	if newUser.Position == nil {
		newUser.Position = []string{}
	}

	return scanUser(q.QueryRow(ctx, query,
		newUser.Email,
		newUser.PasswordHash,
		newUser.Name,
		newUser.Image,
		newUser.Role,
		newUser.Department,
		newUser.Position,
		newUser.Salary,
		newUser.HRID,
		newUser.Paid,
		newUser.EmailVerified,
	))
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`
	return scanUser(q.QueryRow(ctx, query, id))
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
	`
	return scanUser(q.QueryRow(ctx, query, email))
}

// AppendMobility implements user.UserRepository. The history arrays only
// ever grow; salary is overwritten.
func (r *userRepositoryImpl) AppendMobility(ctx context.Context, id string, department string, position string, salary string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET department = department || to_jsonb($2::text),
			position = position || to_jsonb($3::text),
			salary = $4,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	return scanUser(q.QueryRow(ctx, query, id, department, position, salary))
}

// Delete implements user.UserRepository. Accounts and the employee profile
// row cascade at the schema level.
func (r *userRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
