package token

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/talentiq/talentiq-backend-go/internal/domain/user"
)

const SessionCookieName = "session_token"

// SessionClaims is the explicit whitelist of fields carried inside the
// session token. Client-supplied update payloads can only ever touch these;
// nothing else is admitted into the trusted session.
type SessionClaims struct {
	UserID        string
	Email         string
	Name          *string
	Image         *string
	Department    *string
	Role          user.Role
	HRID          *string
	EmailVerified *int64
	Paid          bool
}

type Service interface {
	GenerateAccessToken(userID string, email string, role user.Role, hrID *string) (token string, expiresAt int64, err error)
	GenerateRefreshToken() (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	EncodeSession(claims SessionClaims) (token string, expiresAt int64, err error)
	DecodeSession(tokenString string) (SessionClaims, error)
	SessionCookie(token string, expiresAt int64) *http.Cookie
	ClearSessionCookie() *http.Cookie
}

type TokenService struct {
	accessTokenExpirationTime  string
	refreshTokenExpirationTime string
	// tokenAuth signs access tokens; sessionAuth signs the session cookie
	// token with the separate session secret.
	tokenAuth   *jwtauth.JWTAuth
	sessionAuth *jwtauth.JWTAuth
}

func NewTokenService(signingSecret string, sessionSecret string, accessTokenExpirationTime string, refreshTokenExpirationTime string) Service {
	return &TokenService{
		accessTokenExpirationTime:  accessTokenExpirationTime,
		refreshTokenExpirationTime: refreshTokenExpirationTime,
		tokenAuth:                  jwtauth.New("HS256", []byte(signingSecret), nil, jwt.WithAcceptableSkew(30*time.Second)),
		sessionAuth:                jwtauth.New("HS256", []byte(sessionSecret), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (t *TokenService) JWTAuth() *jwtauth.JWTAuth {
	return t.tokenAuth
}

func (t *TokenService) GenerateAccessToken(userID string, email string, role user.Role, hrID *string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(t.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id": userID,
		"email":   email,
		"role":    string(role),
		"hr_id":   t.returnValueOrNil(hrID),
		"type":    "access",
		"exp":     expiresAt,
	}

	_, tokenString, err := t.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// GenerateRefreshToken mints an opaque random refresh token. Unlike the
// access token it carries no claims; validity lives on the account row.
func (t *TokenService) GenerateRefreshToken() (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(t.refreshTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", 0, err
	}
	return base64.RawURLEncoding.EncodeToString(buf), expiresAt, nil
}

func (t *TokenService) EncodeSession(claims SessionClaims) (string, int64, error) {
	expDuration, err := time.ParseDuration(t.refreshTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt := time.Now().Add(expDuration).Unix()

	payload := map[string]interface{}{
		"user_id":        claims.UserID,
		"email":          claims.Email,
		"name":           t.returnValueOrNil(claims.Name),
		"image":          t.returnValueOrNil(claims.Image),
		"department":     t.returnValueOrNil(claims.Department),
		"role":           string(claims.Role),
		"hr_id":          t.returnValueOrNil(claims.HRID),
		"email_verified": nil,
		"paid":           claims.Paid,
		"type":           "session",
		"exp":            expiresAt,
	}
	if claims.EmailVerified != nil {
		payload["email_verified"] = *claims.EmailVerified
	}

	_, tokenString, err := t.sessionAuth.Encode(payload)
	return tokenString, expiresAt, err
}

func (t *TokenService) DecodeSession(tokenString string) (SessionClaims, error) {
	tok, err := jwtauth.VerifyToken(t.sessionAuth, tokenString)
	if err != nil {
		return SessionClaims{}, err
	}

	tokenType, ok := tok.Get("type")
	if !ok || tokenType != "session" {
		return SessionClaims{}, jwt.ErrInvalidJWT()
	}

	var claims SessionClaims
	userID, ok := getString(tok, "user_id")
	if !ok || userID == "" {
		return SessionClaims{}, jwt.ErrInvalidJWT()
	}
	claims.UserID = userID
	claims.Email, _ = getString(tok, "email")
	claims.Name = getStringPtr(tok, "name")
	claims.Image = getStringPtr(tok, "image")
	claims.Department = getStringPtr(tok, "department")
	claims.HRID = getStringPtr(tok, "hr_id")
	if role, ok := getString(tok, "role"); ok {
		claims.Role = user.Role(role)
	}
	if v, ok := tok.Get("email_verified"); ok && v != nil {
		if f, ok := v.(float64); ok {
			ts := int64(f)
			claims.EmailVerified = &ts
		}
	}
	if v, ok := tok.Get("paid"); ok {
		claims.Paid, _ = v.(bool)
	}

	return claims, nil
}

func (t *TokenService) SessionCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/api/auth",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
	}
}

func (t *TokenService) ClearSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/api/auth",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
	}
}

func (t *TokenService) returnValueOrNil(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}

func getString(tok jwt.Token, key string) (string, bool) {
	v, ok := tok.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func getStringPtr(tok jwt.Token, key string) *string {
	v, ok := tok.Get(key)
	if !ok || v == nil {
		return nil
	}
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}
