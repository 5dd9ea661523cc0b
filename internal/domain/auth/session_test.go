package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/talentiq/talentiq-backend-go/internal/domain/user"
	"github.com/talentiq/talentiq-backend-go/internal/pkg/token"
)

func TestRedirectForRole(t *testing.T) {
	tests := []struct {
		name     string
		role     user.Role
		expected string
	}{
		{"employee lands on employee dashboard", user.RoleEmployee, RedirectEmployeeDashboard},
		{"admin lands on dashboard", user.RoleAdmin, RedirectAdminDashboard},
		{"hr lands on hr dashboard", user.RoleHR, RedirectHRDashboard},
		{"unknown role lands on sign-in", user.Role("Intern"), RedirectSignIn},
		{"empty role lands on sign-in", user.Role(""), RedirectSignIn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RedirectForRole(tt.role))
		})
	}
}

func TestSessionUserFromClaims(t *testing.T) {
	name := "Jane"
	dept := "Engineering"
	verified := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC).Unix()

	claims := token.SessionClaims{
		UserID:        "user-1",
		Email:         "jane@example.com",
		Name:          &name,
		Department:    &dept,
		Role:          user.RoleHR,
		EmailVerified: &verified,
		Paid:          true,
	}

	u := SessionUserFromClaims(claims)

	assert.Equal(t, "user-1", u.ID)
	assert.Equal(t, "jane@example.com", u.Email)
	assert.Equal(t, user.RoleHR, u.Role)
	assert.Equal(t, &name, u.Name)
	assert.Equal(t, &dept, u.Department)
	assert.True(t, u.Paid)
	assert.NotNil(t, u.EmailVerified)
	assert.Equal(t, verified, u.EmailVerified.Unix())
}

func TestSessionUserFromClaims_NilOptionals(t *testing.T) {
	u := SessionUserFromClaims(token.SessionClaims{
		UserID: "user-2",
		Email:  "min@example.com",
		Role:   user.RoleEmployee,
	})

	assert.Nil(t, u.Name)
	assert.Nil(t, u.Image)
	assert.Nil(t, u.HRID)
	assert.Nil(t, u.Department)
	assert.Nil(t, u.EmailVerified)
	assert.False(t, u.Paid)
}
