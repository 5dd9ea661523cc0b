package user

import "time"

type Role string

const (
	RoleEmployee Role = "Employee" // Regular employee
	RoleHR       Role = "HR"       // Owns departments, runs mobility transfers
	RoleAdmin    Role = "Admin"    // Full access, can hard-delete users
)

type User struct {
	ID           string
	Email        string
	PasswordHash *string
	Name         *string
	Image        *string
	Role         Role
	// Department and Position are append-only job histories; the last
	// element is the current value.
	Department    []string
	Position      []string
	Salary        *string
	HRID          *string
	Paid          bool
	EmailVerified *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CurrentDepartment returns the last element of the department history.
func (u *User) CurrentDepartment() *string {
	if len(u.Department) == 0 {
		return nil
	}
	return &u.Department[len(u.Department)-1]
}

// IsHR checks if the user owns departments
func (u *User) IsHR() bool {
	return u.Role == RoleHR
}

// IsAdmin checks if the user has admin access
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
