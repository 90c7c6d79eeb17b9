package domain

import (
	"errors"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
// Implementing this interface enables extensible error handling.
type HTTPError interface {
	error
	StatusCode() int
}

// Domain error types implementing HTTPError interface
type (
	// NotFoundError indicates a resource was not found. Ownership mismatches
	// are reported as not-found too, so callers cannot probe for existence.
	NotFoundError struct {
		Message string
	}

	// ValidationError indicates invalid input
	ValidationError struct {
		Message string
	}

	// UnauthorizedError indicates authentication failure
	UnauthorizedError struct {
		Message string
	}

	// CycleError indicates a folder move that would make a folder its own
	// ancestor (including the degenerate self-parent case)
	CycleError struct {
		Message string
	}

	// LockedError indicates a mutation was rejected because the entry is locked
	LockedError struct {
		Message string
	}
)

// Error implementations
func (e *NotFoundError) Error() string     { return e.Message }
func (e *ValidationError) Error() string   { return e.Message }
func (e *UnauthorizedError) Error() string { return e.Message }
func (e *CycleError) Error() string        { return e.Message }
func (e *LockedError) Error() string       { return e.Message }

// StatusCode implementations (HTTPError interface)
func (e *NotFoundError) StatusCode() int     { return http.StatusNotFound }
func (e *ValidationError) StatusCode() int   { return http.StatusBadRequest }
func (e *UnauthorizedError) StatusCode() int { return http.StatusUnauthorized }
func (e *CycleError) StatusCode() int        { return http.StatusBadRequest }
func (e *LockedError) StatusCode() int       { return http.StatusLocked }

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("already exists")
	ErrValidation    = errors.New("validation failed")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrCycle         = errors.New("cycle detected")
	ErrDuplicateName = errors.New("duplicate name")
	ErrLocked        = errors.New("entry is locked")
)

// Is allows errors.Is() matching against the corresponding sentinels
func (e *NotFoundError) Is(target error) bool     { return target == ErrNotFound }
func (e *ValidationError) Is(target error) bool   { return target == ErrValidation }
func (e *UnauthorizedError) Is(target error) bool { return target == ErrUnauthorized }
func (e *CycleError) Is(target error) bool        { return target == ErrCycle }
func (e *LockedError) Is(target error) bool       { return target == ErrLocked }

// DuplicateNameError represents a sibling name collision with details about
// the existing resource
type DuplicateNameError struct {
	Message      string // Human-readable error message
	ResourceType string // Type of resource (folder, journal)
	ResourceID   string // ID of the existing/conflicting resource
}

// Error implements the error interface
func (e *DuplicateNameError) Error() string {
	return e.Message
}

// StatusCode implements the HTTPError interface
func (e *DuplicateNameError) StatusCode() int {
	return http.StatusConflict
}

// Is allows errors.Is() to match against ErrDuplicateName and ErrConflict
func (e *DuplicateNameError) Is(target error) bool {
	return target == ErrDuplicateName || target == ErrConflict
}

// ConflictError represents a resource conflict (e.g. a comic already exists
// for a journal entry)
type ConflictError struct {
	Message      string
	ResourceType string
	ResourceID   string
}

// Error implements the error interface
func (e *ConflictError) Error() string {
	return e.Message
}

// StatusCode implements the HTTPError interface
func (e *ConflictError) StatusCode() int {
	return http.StatusConflict
}

// Is allows errors.Is() to match against ErrConflict
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}
