package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/talentiq/talentiq-backend-go/internal/domain/auth"
	"github.com/talentiq/talentiq-backend-go/internal/handler/http/response"
	"github.com/talentiq/talentiq-backend-go/internal/pkg/token"
)

type AuthHandler interface {
	SignUp(w http.ResponseWriter, r *http.Request)
	SignIn(w http.ResponseWriter, r *http.Request)
	Callback(w http.ResponseWriter, r *http.Request)
	GetSession(w http.ResponseWriter, r *http.Request)
	UpdateSession(w http.ResponseWriter, r *http.Request)
	SignOut(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	tokenService token.Service
	authService  auth.AuthService
}

func NewAuthHandler(tokenService token.Service, authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		tokenService: tokenService,
		authService:  authService,
	}
}

// SignUp implements AuthHandler.
func (a *AuthHandlerImpl) SignUp(w http.ResponseWriter, r *http.Request) {
	var signUpReq auth.SignUpRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&signUpReq); err != nil {
		slog.Error("SignUp decode error", "error", err)
		response.Error(w, r, http.StatusBadRequest, "invalid request format")
		return
	}

	// Validate DTO
	if err := signUpReq.Validate(); err != nil {
		slog.Error("SignUp validate error", "error", err)
		response.HandleError(w, r, err)
		return
	}

	// Call service
	session, claims, err := a.authService.SignUp(r.Context(), signUpReq)
	if err != nil {
		slog.Error("SignUp service error", "error", err)
		response.HandleError(w, r, err)
		return
	}

	// Success response
	if !a.setSessionCookie(w, r, claims) {
		return
	}
	slog.Info("User signed up successfully")
	response.JSON(w, r, http.StatusCreated, session)
}

// SignIn implements AuthHandler.
func (a *AuthHandlerImpl) SignIn(w http.ResponseWriter, r *http.Request) {
	var signInReq auth.SignInRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&signInReq); err != nil {
		slog.Error("SignIn decode error", "error", err)
		response.Error(w, r, http.StatusBadRequest, "invalid request format")
		return
	}

	// Validate DTO
	if err := signInReq.Validate(); err != nil {
		slog.Error("SignIn validate error", "error", err)
		response.HandleError(w, r, err)
		return
	}

	// Call service
	session, claims, err := a.authService.SignIn(r.Context(), signInReq)
	if err != nil {
		slog.Error("SignIn service error", "error", err)
		response.HandleError(w, r, err)
		return
	}

	// Success response
	if !a.setSessionCookie(w, r, claims) {
		return
	}
	slog.Info("User signed in successfully")
	response.JSON(w, r, http.StatusOK, session)
}

// Callback implements AuthHandler. The body carries only the authorization
// code; the identity is verified against the provider before any local record
// is touched.
func (a *AuthHandlerImpl) Callback(w http.ResponseWriter, r *http.Request) {
	provider := chi.URLParam(r, "provider")

	var callbackReq auth.CallbackRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&callbackReq); err != nil {
		slog.Error("Callback decode error", "error", err)
		response.Error(w, r, http.StatusBadRequest, "invalid request format")
		return
	}

	// Validate DTO
	if err := callbackReq.Validate(); err != nil {
		slog.Error("Callback validate error", "error", err)
		response.HandleError(w, r, err)
		return
	}

	// Call service
	session, claims, err := a.authService.Callback(r.Context(), provider, callbackReq)
	if err != nil {
		slog.Error("Callback service error", "error", err, "provider", provider)
		response.HandleError(w, r, err)
		return
	}

	// Success response
	if !a.setSessionCookie(w, r, claims) {
		return
	}
	slog.Info("Federated user signed in successfully", "provider", provider)
	response.JSON(w, r, http.StatusOK, session)
}

// GetSession implements AuthHandler. Every read runs the rotation state
// machine; session errors come back inside the session body with status 200.
func (a *AuthHandlerImpl) GetSession(w http.ResponseWriter, r *http.Request) {
	claims, err := a.sessionFromCookie(r)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	session := a.authService.Resume(r.Context(), claims)

	// Re-issue the cookie so its expiry tracks the freshest token pair.
	if session.Error == "" {
		if !a.setSessionCookie(w, r, claims) {
			return
		}
	}
	response.JSON(w, r, http.StatusOK, session)
}

// UpdateSession implements AuthHandler. This is the client-triggered session
// update: whitelisted fields are merged into the session token and the cookie
// is re-issued. No database access.
func (a *AuthHandlerImpl) UpdateSession(w http.ResponseWriter, r *http.Request) {
	claims, err := a.sessionFromCookie(r)
	if err != nil {
		response.HandleError(w, r, err)
		return
	}

	var updateReq auth.SessionUpdateRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateSession decode error", "error", err)
		response.Error(w, r, http.StatusBadRequest, "invalid request format")
		return
	}

	merged := a.authService.UpdateSession(claims, updateReq)
	if !a.setSessionCookie(w, r, merged) {
		return
	}

	session := auth.Session{
		User:       auth.SessionUserFromClaims(merged),
		RedirectTo: auth.RedirectForRole(merged.Role),
	}
	response.JSON(w, r, http.StatusOK, session)
}

// SignOut implements AuthHandler.
func (a *AuthHandlerImpl) SignOut(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, a.tokenService.ClearSessionCookie())
	response.JSON(w, r, http.StatusOK, map[string]string{"message": "Signed out successfully"})
}

func (a *AuthHandlerImpl) sessionFromCookie(r *http.Request) (token.SessionClaims, error) {
	cookie, err := r.Cookie(token.SessionCookieName)
	if err != nil {
		return token.SessionClaims{}, auth.ErrSessionCookieNotFound
	}
	claims, err := a.tokenService.DecodeSession(cookie.Value)
	if err != nil {
		return token.SessionClaims{}, auth.ErrInvalidToken
	}
	return claims, nil
}

func (a *AuthHandlerImpl) setSessionCookie(w http.ResponseWriter, r *http.Request, claims token.SessionClaims) bool {
	sessionToken, expiresAt, err := a.tokenService.EncodeSession(claims)
	if err != nil {
		slog.Error("session encode error", "error", err)
		response.HandleError(w, r, err)
		return false
	}
	http.SetCookie(w, a.tokenService.SessionCookie(sessionToken, expiresAt))
	return true
}
