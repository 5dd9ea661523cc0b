package postgresql

import (
	"context"

	"github.com/talentiq/talentiq-backend-go/internal/domain/account"
	"github.com/talentiq/talentiq-backend-go/internal/pkg/database"
)

type accountRepositoryImpl struct {
	db *database.DB
}

func NewAccountRepository(db *database.DB) account.AccountRepository {
	return &accountRepositoryImpl{db: db}
}

const accountColumns = `id, user_id, type, provider, provider_account_id,
		   access_token, expires_at, refresh_token, refresh_expires_at,
		   created_at, updated_at`

func scanAccount(row interface{ Scan(dest ...any) error }) (account.Account, error) {
	var found account.Account
	err := row.Scan(
		&found.ID,
		&found.UserID,
		&found.Type,
		&found.Provider,
		&found.ProviderAccountID,
		&found.AccessToken,
		&found.ExpiresAt,
		&found.RefreshToken,
		&found.RefreshExpiresAt,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		return account.Account{}, err
	}
	return found, nil
}

// Upsert implements account.AccountRepository.
func (r *accountRepositoryImpl) Upsert(ctx context.Context, acct account.Account) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO accounts (
			user_id, type, provider, provider_account_id,
			access_token, expires_at, refresh_token, refresh_expires_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (provider, provider_account_id) DO UPDATE
		SET access_token = EXCLUDED.access_token,
			expires_at = EXCLUDED.expires_at,
			refresh_token = EXCLUDED.refresh_token,
			refresh_expires_at = EXCLUDED.refresh_expires_at,
			updated_at = NOW()
		RETURNING ` + accountColumns

	return scanAccount(q.QueryRow(ctx, query,
		acct.UserID,
		acct.Type,
		acct.Provider,
		acct.ProviderAccountID,
		acct.AccessToken,
		acct.ExpiresAt,
		acct.RefreshToken,
		acct.RefreshExpiresAt,
	))
}

// GetByProviderAccount implements account.AccountRepository.
func (r *accountRepositoryImpl) GetByProviderAccount(ctx context.Context, provider string, providerAccountID string) (account.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE provider = $1 AND provider_account_id = $2
	`
	return scanAccount(q.QueryRow(ctx, query, provider, providerAccountID))
}

// UpdateTokens implements account.AccountRepository.
func (r *accountRepositoryImpl) UpdateTokens(ctx context.Context, provider string, providerAccountID string, accessToken string, expiresAt int64, refreshToken string, refreshExpiresAt int64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE accounts
		SET access_token = $3, expires_at = $4,
			refresh_token = $5, refresh_expires_at = $6,
			updated_at = NOW()
		WHERE provider = $1 AND provider_account_id = $2
	`
	tag, err := q.Exec(ctx, query, provider, providerAccountID, accessToken, expiresAt, refreshToken, refreshExpiresAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return account.ErrAccountNotFound
	}
	return nil
}
