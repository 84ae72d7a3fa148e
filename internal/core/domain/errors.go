package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the core wraps exactly one of these so
// the transport layer can map it without knowing the concrete failure.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("access forbidden")
	ErrNoOp               = errors.New("nothing to change")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

var (
	ErrUserNotFound      = fmt.Errorf("user %w", ErrNotFound)
	ErrProjectNotFound   = fmt.Errorf("project %w", ErrNotFound)
	ErrTaskNotFound      = fmt.Errorf("task %w", ErrNotFound)
	ErrMemberNotFound    = fmt.Errorf("member %w", ErrNotFound)
	ErrNoUsersMatched    = fmt.Errorf("no users matched the provided identifiers: %w", ErrNotFound)
	ErrNoProjectsForUser = fmt.Errorf("no projects for this user: %w", ErrNotFound)

	ErrAllMembersPresent = fmt.Errorf("all members are already in the project: %w", ErrNoOp)
	ErrNoFieldsToUpdate  = fmt.Errorf("no fields to update: %w", ErrInvalidInput)

	ErrUserExists        = fmt.Errorf("username or email already exists: %w", ErrConflict)
	ErrMembershipChanged = fmt.Errorf("project membership changed concurrently: %w", ErrConflict)

	// ErrMalformedDueDate is raised while folding a report over stored tasks.
	// It is a data error, not a client error, and aborts the whole report.
	ErrMalformedDueDate = errors.New("malformed task due date")
)

// InvalidInput builds a client error carrying the offending detail.
func InvalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Forbidden builds a policy denial carrying the policy's reason.
func Forbidden(reason string) error {
	return fmt.Errorf("%w: %s", ErrForbidden, reason)
}
