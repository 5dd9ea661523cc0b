package account

import "time"

const (
	TypeCredentials = "credentials"
	TypeOAuth       = "oauth"

	// ProviderCredentials is the provider name under which the system's own
	// token pair is persisted; the provider_account_id is the user id.
	ProviderCredentials = "credentials"
)

// Account holds one (provider, provider_account_id) pair per user. For the
// credentials provider the access/refresh token columns carry the system's
// own issued pair with absolute epoch-second expiries; the column names are
// part of the persisted interface and must not change.
type Account struct {
	ID                string
	UserID            string
	Type              string
	Provider          string
	ProviderAccountID string
	AccessToken       *string
	ExpiresAt         *int64
	RefreshToken      *string
	RefreshExpiresAt  *int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
