package errors

import "errors"

var (
	// ErrNotFound marks lookups of unknown categories or prompt modules.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument marks caller input that cannot be built into a prompt.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnavailable marks a collaborator that is not configured, such as a
	// missing AI invoker.
	ErrUnavailable = errors.New("unavailable")
)
