package account

import "context"

type AccountRepository interface {
	// Upsert inserts the account or, on a (provider, provider_account_id)
	// conflict, overwrites the token columns. Runs on every credential
	// sign-in and every refresh rotation.
	Upsert(ctx context.Context, acct Account) (Account, error)
	GetByProviderAccount(ctx context.Context, provider string, providerAccountID string) (Account, error)
	// UpdateTokens overwrites the token pair on an existing row.
	UpdateTokens(ctx context.Context, provider string, providerAccountID string, accessToken string, expiresAt int64, refreshToken string, refreshExpiresAt int64) error
}
