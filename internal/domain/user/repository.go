package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, newUser User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	// AppendMobility appends department/position to the history arrays and
	// overwrites salary. History is never rewritten, only extended.
	AppendMobility(ctx context.Context, id string, department string, position string, salary string) (User, error)
	// Delete hard-deletes the user; accounts and the employee profile row
	// cascade at the database level.
	Delete(ctx context.Context, id string) error
}
