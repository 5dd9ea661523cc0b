package mobility

import "errors"

var (
	// ErrTransferConflict reports a serialization failure between two
	// concurrent transfers touching the same rows; callers may retry.
	ErrTransferConflict = errors.New("concurrent transfer conflict, retry")
	ErrTimeout          = errors.New("operation timed out")
)
