package token

import (
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentiq/talentiq-backend-go/internal/domain/user"
)

const (
	testSigningSecret = "test-signing-secret"
	testSessionSecret = "test-session-secret"
	testAccessExp     = "15m"
	testRefreshExp    = "168h"
)

func newTestService() Service {
	return NewTokenService(testSigningSecret, testSessionSecret, testAccessExp, testRefreshExp)
}

func TestGenerateAccessToken_Claims(t *testing.T) {
	svc := newTestService()
	hrID := "hr-1"

	tokenString, expiresAt, err := svc.GenerateAccessToken("user-1", "jane@example.com", user.RoleHR, &hrID)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	tok, err := jwtauth.VerifyToken(svc.JWTAuth(), tokenString)
	require.NoError(t, err)

	userID, _ := tok.Get("user_id")
	assert.Equal(t, "user-1", userID)
	email, _ := tok.Get("email")
	assert.Equal(t, "jane@example.com", email)
	role, _ := tok.Get("role")
	assert.Equal(t, "HR", role)
	tokenType, _ := tok.Get("type")
	assert.Equal(t, "access", tokenType)

	// Expiry roughly fifteen minutes out, as epoch seconds.
	now := time.Now().Unix()
	assert.Greater(t, expiresAt, now)
	assert.LessOrEqual(t, expiresAt, now+16*60)
}

func TestGenerateRefreshToken_Opaque(t *testing.T) {
	svc := newTestService()

	first, firstExp, err := svc.GenerateRefreshToken()
	require.NoError(t, err)
	second, _, err := svc.GenerateRefreshToken()
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
	// Opaque token, not a JWT.
	assert.NotContains(t, first, ".")

	now := time.Now().Unix()
	assert.Greater(t, firstExp, now+6*24*60*60)
}

func TestSessionToken_RoundTrip(t *testing.T) {
	svc := newTestService()
	name := "Jane"
	dept := "Engineering"
	verified := time.Now().UTC().Unix()

	claims := SessionClaims{
		UserID:        "user-1",
		Email:         "jane@example.com",
		Name:          &name,
		Department:    &dept,
		Role:          user.RoleHR,
		EmailVerified: &verified,
		Paid:          true,
	}

	tokenString, expiresAt, err := svc.EncodeSession(claims)
	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Unix())

	decoded, err := svc.DecodeSession(tokenString)
	require.NoError(t, err)

	assert.Equal(t, claims.UserID, decoded.UserID)
	assert.Equal(t, claims.Email, decoded.Email)
	assert.Equal(t, claims.Role, decoded.Role)
	require.NotNil(t, decoded.Name)
	assert.Equal(t, name, *decoded.Name)
	require.NotNil(t, decoded.Department)
	assert.Equal(t, dept, *decoded.Department)
	require.NotNil(t, decoded.EmailVerified)
	assert.Equal(t, verified, *decoded.EmailVerified)
	assert.True(t, decoded.Paid)
	assert.Nil(t, decoded.Image)
	assert.Nil(t, decoded.HRID)
}

func TestDecodeSession_RejectsAccessToken(t *testing.T) {
	svc := newTestService()

	// Signed with the access secret, not the session secret.
	accessToken, _, err := svc.GenerateAccessToken("user-1", "jane@example.com", user.RoleEmployee, nil)
	require.NoError(t, err)

	_, err = svc.DecodeSession(accessToken)
	assert.Error(t, err)
}

func TestDecodeSession_RejectsGarbage(t *testing.T) {
	svc := newTestService()
	_, err := svc.DecodeSession("not-a-token")
	assert.Error(t, err)
}

func TestSessionCookie_Attributes(t *testing.T) {
	svc := newTestService()
	expiresAt := time.Now().Add(time.Hour).Unix()

	cookie := svc.SessionCookie("tok", expiresAt)
	assert.Equal(t, SessionCookieName, cookie.Name)
	assert.Equal(t, "tok", cookie.Value)
	assert.Equal(t, "/api/auth", cookie.Path)
	assert.True(t, cookie.HttpOnly)

	cleared := svc.ClearSessionCookie()
	assert.Equal(t, SessionCookieName, cleared.Name)
	assert.Empty(t, cleared.Value)
	assert.True(t, cleared.Expires.Before(time.Now()))
}
