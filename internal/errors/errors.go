// internal/errors/errors.go
package errors

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidCredentials is returned when a login or password check fails.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUpstreamStatus is returned when the GitHub listing endpoint answers with a non-success status.
type ErrUpstreamStatus struct {
	StatusCode int
}

func (e *ErrUpstreamStatus) Error() string {
	return fmt.Sprintf("GitHub API returned %d", e.StatusCode)
}

// ErrReservedSlug is returned when a manually authored project would take a slug from the sync namespace.
type ErrReservedSlug struct {
	Slug string
}

func (e *ErrReservedSlug) Error() string {
	return fmt.Sprintf("slug %q is reserved for imported repositories", e.Slug)
}

// ErrValidation is returned when submitted data is missing or malformed.
type ErrValidation struct {
	Field  string
	Reason string
}

func (e *ErrValidation) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ErrConflict is returned when a write collides with an existing record, e.g. a duplicate slug.
var ErrConflict = errors.New("conflict")
