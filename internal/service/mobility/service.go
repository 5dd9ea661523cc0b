package mobility

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/talentiq/talentiq-backend-go/internal/domain/department"
	"github.com/talentiq/talentiq-backend-go/internal/domain/mobility"
	"github.com/talentiq/talentiq-backend-go/internal/domain/user"
	"github.com/talentiq/talentiq-backend-go/internal/pkg/database"
	"github.com/talentiq/talentiq-backend-go/internal/repository/postgresql"
)

// Per-call timeouts. A timeout abandons the handler-side wait; the database
// may still finish the statement, but the multi-step mutation sits inside
// one transaction so no partial ledger write survives a failure.
const (
	userLookupTimeout = 10 * time.Second
	transferTimeout   = 30 * time.Second
	updateTimeout     = 20 * time.Second
)

type MobilityServiceImpl struct {
	db             *database.DB
	userRepo       user.UserRepository
	departmentRepo department.DepartmentRepository
}

func NewMobilityService(db *database.DB, userRepo user.UserRepository, departmentRepo department.DepartmentRepository) mobility.MobilityService {
	return &MobilityServiceImpl{
		db:             db,
		userRepo:       userRepo,
		departmentRepo: departmentRepo,
	}
}

// UpdateMobility implements mobility.MobilityService.
func (m *MobilityServiceImpl) UpdateMobility(ctx context.Context, hrID string, req mobility.UpdateMobilityRequest) (mobility.UpdateMobilityResponse, error) {
	lookupCtx, cancel := context.WithTimeout(ctx, userLookupTimeout)
	defer cancel()

	target, err := m.userRepo.GetByID(lookupCtx, req.UserID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return mobility.UpdateMobilityResponse{}, user.ErrUserNotFound
		}
		return mobility.UpdateMobilityResponse{}, wrapTimeout(err, "user lookup")
	}

	newDepartment := req.Department.Value()
	newPosition := req.Position.Value()
	newSalary := req.Salary.String()

	if !req.Transfer {
		// No ledger work: a single-statement history append outside any
		// explicit transaction.
		updateCtx, cancel := context.WithTimeout(ctx, updateTimeout)
		defer cancel()

		updated, err := m.userRepo.AppendMobility(updateCtx, req.UserID, newDepartment, newPosition, newSalary)
		if err != nil {
			return mobility.UpdateMobilityResponse{}, wrapTimeout(err, "mobility update")
		}
		return buildResponse(updated), nil
	}

	// One timestamp for every ledger entry in this transfer.
	now := time.Now().UTC()
	sourceDepartment := target.CurrentDepartment()

	var updated user.User
	txCtx, cancelTx := context.WithTimeout(ctx, transferTimeout)
	defer cancelTx()

	// Sequential statements inside one serializable transaction; the
	// transaction is bound to a single connection, so nothing here may run
	// concurrently.
	err = postgresql.WithSerializableTransaction(txCtx, m.db, func(txCtx context.Context) error {
		destination, err := m.departmentRepo.GetByHRAndName(txCtx, hrID, newDepartment)
		if err != nil {
			if err == pgx.ErrNoRows {
				return &department.NotFoundError{Name: newDepartment}
			}
			return fmt.Errorf("failed to get destination department: %w", err)
		}

		entry := department.LedgerEntry{
			UserID:     req.UserID,
			Department: newDepartment,
			Timestamp:  now,
		}

		if err := m.departmentRepo.AppendIngoing(txCtx, destination.ID, entry, department.TransferStatusOutgoing, req.Promotion.Value()); err != nil {
			return fmt.Errorf("failed to append ingoing ledger entry: %w", err)
		}

		// The matching outgoing entry lands on the source department only
		// when one exists under the same HR; otherwise the transfer is
		// treated as an external hire into the destination.
		if sourceDepartment != nil {
			source, err := m.departmentRepo.GetByHRAndName(txCtx, hrID, *sourceDepartment)
			switch {
			case err == pgx.ErrNoRows:
				// no-op
			case err != nil:
				return fmt.Errorf("failed to get source department: %w", err)
			default:
				if err := m.departmentRepo.AppendOutgoing(txCtx, source.ID, entry, department.TransferStatusOutgoing, req.Promotion.Value()); err != nil {
					return fmt.Errorf("failed to append outgoing ledger entry: %w", err)
				}
			}
		}

		updated, err = m.userRepo.AppendMobility(txCtx, req.UserID, newDepartment, newPosition, newSalary)
		if err != nil {
			return fmt.Errorf("failed to update user mobility: %w", err)
		}
		return nil
	})
	if err != nil {
		if postgresql.IsSerializationFailure(err) {
			return mobility.UpdateMobilityResponse{}, mobility.ErrTransferConflict
		}
		return mobility.UpdateMobilityResponse{}, wrapTimeout(err, "transfer transaction")
	}

	return buildResponse(updated), nil
}

func buildResponse(updated user.User) mobility.UpdateMobilityResponse {
	salary := ""
	if updated.Salary != nil {
		salary = *updated.Salary
	}
	return mobility.UpdateMobilityResponse{
		Message: "Mobility updated successfully",
		User: mobility.MobilityUser{
			Department: updated.Department,
			Position:   updated.Position,
			Salary:     salary,
		},
	}
}

func wrapTimeout(err error, op string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", mobility.ErrTimeout, op)
	}
	return err
}
