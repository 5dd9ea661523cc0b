package employee

import "context"

type EmployeeRepository interface {
	// Upsert creates the profile row on first save and overwrites the
	// supplied fields afterwards.
	Upsert(ctx context.Context, profile Employee) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
}
