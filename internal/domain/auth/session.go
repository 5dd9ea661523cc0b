package auth

import (
	"time"

	"github.com/talentiq/talentiq-backend-go/internal/domain/user"
	"github.com/talentiq/talentiq-backend-go/internal/pkg/token"
)

// Session error codes. These are values inside the session object, not
// thrown errors; the UI reacts to them (e.g. forced sign-out) without an
// exception crossing the render boundary.
const (
	SessionErrorNoAccount           = "NoAccount"
	SessionErrorRefreshTokenExpired = "RefreshTokenExpired"
	SessionErrorRefresh             = "RefreshError"
)

// Role-based landing pages.
const (
	RedirectEmployeeDashboard = "/employee-dashboard"
	RedirectAdminDashboard    = "/dashboard"
	RedirectHRDashboard       = "/hr-dashboard"
	RedirectSignIn            = "/auth/sign-in"
)

type SessionUser struct {
	ID            string     `json:"id"`
	Role          user.Role  `json:"role"`
	Name          *string    `json:"name"`
	Email         string     `json:"email"`
	Image         *string    `json:"image"`
	HRID          *string    `json:"hrId"`
	Department    *string    `json:"department"`
	EmailVerified *time.Time `json:"emailVerified"`
	Paid          bool       `json:"paid"`
}

// Session is the object consumed by pages. The field names are part of the
// external interface.
type Session struct {
	User             SessionUser `json:"user"`
	AccessToken      string      `json:"accessToken,omitempty"`
	RefreshExpiresAt int64       `json:"refreshExpiresAt,omitempty"`
	RedirectTo       string      `json:"redirectTo"`
	Error            string      `json:"error,omitempty"`
}

// RedirectForRole maps a role to its dashboard. Pure; unknown roles land on
// the sign-in page.
func RedirectForRole(role user.Role) string {
	switch role {
	case user.RoleEmployee:
		return RedirectEmployeeDashboard
	case user.RoleAdmin:
		return RedirectAdminDashboard
	case user.RoleHR:
		return RedirectHRDashboard
	default:
		return RedirectSignIn
	}
}

// SessionUserFromClaims projects the session-token claims into the session
// object's user block.
func SessionUserFromClaims(claims token.SessionClaims) SessionUser {
	u := SessionUser{
		ID:         claims.UserID,
		Role:       claims.Role,
		Name:       claims.Name,
		Email:      claims.Email,
		Image:      claims.Image,
		HRID:       claims.HRID,
		Department: claims.Department,
		Paid:       claims.Paid,
	}
	if claims.EmailVerified != nil {
		ts := time.Unix(*claims.EmailVerified, 0).UTC()
		u.EmailVerified = &ts
	}
	return u
}
