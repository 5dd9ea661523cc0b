package department

import "context"

type DepartmentRepository interface {
	Create(ctx context.Context, hrID string, name string) (Department, error)
	GetByHRAndName(ctx context.Context, hrID string, name string) (Department, error)
	ListByHR(ctx context.Context, hrID string) ([]Department, error)
	// AppendIngoing appends one ledger entry to the ingoing array, sets the
	// transfer status, and updates promotion only when a value is supplied.
	AppendIngoing(ctx context.Context, id string, entry LedgerEntry, status string, promotion *string) error
	// AppendOutgoing is the source-side counterpart of AppendIngoing.
	AppendOutgoing(ctx context.Context, id string, entry LedgerEntry, status string, promotion *string) error
}
