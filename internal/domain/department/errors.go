package department

import (
	"errors"
	"fmt"
)

var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrDepartmentExists   = errors.New("department already exists")
)

// NotFoundError names the missing department so the handler can surface the
// resource name and nothing else.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("department %q not found", e.Name)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrDepartmentNotFound
}
