package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/talentiq/talentiq-backend-go/internal/domain/account"
	"github.com/talentiq/talentiq-backend-go/internal/domain/auth"
	"github.com/talentiq/talentiq-backend-go/internal/domain/user"
	"github.com/talentiq/talentiq-backend-go/internal/pkg/database"
	"github.com/talentiq/talentiq-backend-go/internal/pkg/oauth"
	"github.com/talentiq/talentiq-backend-go/internal/pkg/token"
	"github.com/talentiq/talentiq-backend-go/internal/repository/postgresql"
)

const (
	accountLookupTimeout = 10 * time.Second
	userLookupTimeout    = 10 * time.Second
)

type AuthServiceImpl struct {
	db          *database.DB
	userRepo    user.UserRepository
	accountRepo account.AccountRepository
	tokens      token.Service
	providers   oauth.Registry
}

func NewAuthService(db *database.DB, userRepo user.UserRepository, accountRepo account.AccountRepository, tokens token.Service, providers oauth.Registry) auth.AuthService {
	return &AuthServiceImpl{
		db:          db,
		userRepo:    userRepo,
		accountRepo: accountRepo,
		tokens:      tokens,
		providers:   providers,
	}
}

// SignUp implements auth.AuthService.
func (a *AuthServiceImpl) SignUp(ctx context.Context, req auth.SignUpRequest) (auth.Session, token.SessionClaims, error) {
	_, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		return auth.Session{}, token.SessionClaims{}, auth.ErrEmailAlreadyExists
	}
	if err != pgx.ErrNoRows {
		return auth.Session{}, token.SessionClaims{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.Session{}, token.SessionClaims{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashed := string(hash)

	newUser, err := a.userRepo.Create(ctx, user.User{
		Email:        req.Email,
		PasswordHash: &hashed,
		Name:         &req.Name,
		Role:         user.RoleEmployee,
	})
	if err != nil {
		return auth.Session{}, token.SessionClaims{}, fmt.Errorf("failed to create user: %w", err)
	}

	return a.signInUser(ctx, newUser)
}

// SignIn implements auth.AuthService.
func (a *AuthServiceImpl) SignIn(ctx context.Context, req auth.SignInRequest) (auth.Session, token.SessionClaims, error) {
	userData, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.Session{}, token.SessionClaims{}, auth.ErrInvalidCredentials
		}
		return auth.Session{}, token.SessionClaims{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	// A federated-only user has no password hash; the failure is reported
	// identically so neither field is revealed.
	if userData.PasswordHash == nil {
		return auth.Session{}, token.SessionClaims{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.Session{}, token.SessionClaims{}, auth.ErrInvalidCredentials
	}

	return a.signInUser(ctx, userData)
}

// signInUser mints the token pair and persists it on the credentials account
// row inside one transaction.
func (a *AuthServiceImpl) signInUser(ctx context.Context, userData user.User) (auth.Session, token.SessionClaims, error) {
	var accessToken, refreshToken string
	var accessExpiresAt, refreshExpiresAt int64

	err := postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		var err error
		accessToken, accessExpiresAt, err = a.tokens.GenerateAccessToken(userData.ID, userData.Email, userData.Role, userData.HRID)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		refreshToken, refreshExpiresAt, err = a.tokens.GenerateRefreshToken()
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		_, err = a.accountRepo.Upsert(txCtx, account.Account{
			UserID:            userData.ID,
			Type:              account.TypeCredentials,
			Provider:          account.ProviderCredentials,
			ProviderAccountID: userData.ID,
			AccessToken:       &accessToken,
			ExpiresAt:         &accessExpiresAt,
			RefreshToken:      &refreshToken,
			RefreshExpiresAt:  &refreshExpiresAt,
		})
		if err != nil {
			return fmt.Errorf("failed to save token pair to database: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.Session{}, token.SessionClaims{}, err
	}

	claims := claimsFromUser(userData)
	session := sessionFromClaims(claims)
	session.AccessToken = accessToken
	session.RefreshExpiresAt = refreshExpiresAt
	return session, claims, nil
}

// Callback implements auth.AuthService. The authorization code is exchanged
// with the provider and the identity is read from the provider's own userinfo
// response; nothing identity-bearing is accepted from the client. First
// contact auto-provisions a local user with a random password and a
// pre-verified email; no token pair is minted because the provider owns
// session validity on this path.
func (a *AuthServiceImpl) Callback(ctx context.Context, provider string, req auth.CallbackRequest) (auth.Session, token.SessionClaims, error) {
	verifier, ok := a.providers.Lookup(provider)
	if !ok {
		return auth.Session{}, token.SessionClaims{}, auth.ErrProviderNotSupported
	}

	identity, err := verifier.Verify(ctx, req.Code)
	if err != nil {
		return auth.Session{}, token.SessionClaims{}, auth.ErrProviderVerification
	}
	if !identity.EmailVerified {
		return auth.Session{}, token.SessionClaims{}, auth.ErrProviderVerification
	}

	userData, err := a.userRepo.GetByEmail(ctx, identity.Email)
	if err != nil {
		if err != pgx.ErrNoRows {
			return auth.Session{}, token.SessionClaims{}, fmt.Errorf("failed to get user by email: %w", err)
		}

		randomPassword, err := randomSecret()
		if err != nil {
			return auth.Session{}, token.SessionClaims{}, err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(randomPassword), bcrypt.DefaultCost)
		if err != nil {
			return auth.Session{}, token.SessionClaims{}, fmt.Errorf("failed to hash password: %w", err)
		}
		hashed := string(hash)
		verified := time.Now().UTC()

		userData, err = a.userRepo.Create(ctx, user.User{
			Email:         identity.Email,
			PasswordHash:  &hashed,
			Name:          identity.Name,
			Image:         identity.Image,
			Role:          user.RoleEmployee,
			EmailVerified: &verified,
		})
		if err != nil {
			return auth.Session{}, token.SessionClaims{}, fmt.Errorf("failed to create user: %w", err)
		}
	}

	_, err = a.accountRepo.Upsert(ctx, account.Account{
		UserID:            userData.ID,
		Type:              account.TypeOAuth,
		Provider:          provider,
		ProviderAccountID: identity.ProviderAccountID,
	})
	if err != nil {
		return auth.Session{}, token.SessionClaims{}, fmt.Errorf("failed to save oauth account: %w", err)
	}

	claims := claimsFromUser(userData)
	return sessionFromClaims(claims), claims, nil
}

// Resume implements auth.AuthService. This is the rotation state machine run
// on every session read; failures are reported inside the session object.
func (a *AuthServiceImpl) Resume(ctx context.Context, claims token.SessionClaims) auth.Session {
	session := sessionFromClaims(claims)

	lookupCtx, cancel := context.WithTimeout(ctx, accountLookupTimeout)
	defer cancel()

	acct, err := a.accountRepo.GetByProviderAccount(lookupCtx, account.ProviderCredentials, claims.UserID)
	if err != nil {
		if err == pgx.ErrNoRows {
			session.Error = auth.SessionErrorNoAccount
		} else {
			session.Error = auth.SessionErrorRefresh
		}
		return session
	}

	now := time.Now().Unix()

	// Access token still valid: reuse the stored pair unchanged.
	if acct.AccessToken != nil && acct.ExpiresAt != nil && now < *acct.ExpiresAt {
		session.AccessToken = *acct.AccessToken
		if acct.RefreshExpiresAt != nil {
			session.RefreshExpiresAt = *acct.RefreshExpiresAt
		}
		return session
	}

	// Access expired but the refresh window is open: rotate both tokens.
	if acct.RefreshToken != nil && acct.RefreshExpiresAt != nil && now < *acct.RefreshExpiresAt {
		accessToken, accessExpiresAt, err := a.tokens.GenerateAccessToken(claims.UserID, claims.Email, claims.Role, claims.HRID)
		if err != nil {
			session.Error = auth.SessionErrorRefresh
			return session
		}
		refreshToken, refreshExpiresAt, err := a.tokens.GenerateRefreshToken()
		if err != nil {
			session.Error = auth.SessionErrorRefresh
			return session
		}

		if err := a.accountRepo.UpdateTokens(lookupCtx, account.ProviderCredentials, claims.UserID, accessToken, accessExpiresAt, refreshToken, refreshExpiresAt); err != nil {
			session.Error = auth.SessionErrorRefresh
			return session
		}

		session.AccessToken = accessToken
		session.RefreshExpiresAt = refreshExpiresAt
		return session
	}

	// Refresh token missing or expired: the caller must force a fresh
	// sign-in. The account row is left untouched.
	session.Error = auth.SessionErrorRefreshTokenExpired
	return session
}

// UpdateSession implements auth.AuthService. Pure merge over the claim
// whitelist; no database access.
func (a *AuthServiceImpl) UpdateSession(claims token.SessionClaims, req auth.SessionUpdateRequest) token.SessionClaims {
	if req.Name != nil {
		claims.Name = req.Name
	}
	if req.Email != nil {
		claims.Email = *req.Email
	}
	if req.Image != nil {
		claims.Image = req.Image
	}
	if req.Department != nil {
		claims.Department = req.Department
	}
	return claims
}

// DeleteUser implements auth.AuthService.
func (a *AuthServiceImpl) DeleteUser(ctx context.Context, id string) error {
	lookupCtx, cancel := context.WithTimeout(ctx, userLookupTimeout)
	defer cancel()
	return a.userRepo.Delete(lookupCtx, id)
}

func claimsFromUser(u user.User) token.SessionClaims {
	claims := token.SessionClaims{
		UserID:     u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Image:      u.Image,
		Department: u.CurrentDepartment(),
		Role:       u.Role,
		HRID:       u.HRID,
		Paid:       u.Paid,
	}
	if u.EmailVerified != nil {
		ts := u.EmailVerified.Unix()
		claims.EmailVerified = &ts
	}
	return claims
}

func sessionFromClaims(claims token.SessionClaims) auth.Session {
	return auth.Session{
		User:       auth.SessionUserFromClaims(claims),
		RedirectTo: auth.RedirectForRole(claims.Role),
	}
}

func randomSecret() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
