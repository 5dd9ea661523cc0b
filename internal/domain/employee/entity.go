package employee

import "time"

// Employee is the 1:1 profile extension of a User. The row is created lazily
// on the first profile save.
type Employee struct {
	ID         string
	UserID     string
	Bio        *string
	Skills     []string
	Education  *string
	Experience *string
	Resume     *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
