package auth

import (
	"context"

	"github.com/talentiq/talentiq-backend-go/internal/pkg/token"
)

type AuthService interface {
	// SignUp registers a credentials user and signs it in.
	SignUp(ctx context.Context, req SignUpRequest) (Session, token.SessionClaims, error)
	// SignIn authenticates by email/password, mints the token pair and
	// upserts it on the account row.
	SignIn(ctx context.Context, req SignInRequest) (Session, token.SessionClaims, error)
	// Callback signs in a federated identity, auto-provisioning the local
	// user and oauth account on first contact. No token pair is minted.
	Callback(ctx context.Context, provider string, req CallbackRequest) (Session, token.SessionClaims, error)
	// Resume is the per-request session read: it re-validates the stored
	// token pair and rotates it when the access token has expired. Session
	// errors come back inside the Session, never as an error value.
	Resume(ctx context.Context, claims token.SessionClaims) Session
	// UpdateSession merges the whitelisted fields into the session claims
	// without touching the database.
	UpdateSession(claims token.SessionClaims, req SessionUpdateRequest) token.SessionClaims
	// DeleteUser hard-deletes a user and its auth records. Admin only.
	DeleteUser(ctx context.Context, id string) error
}
