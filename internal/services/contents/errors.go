package contents

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrContentNotFound = errors.New("content not found")
	ErrDuplicateKey    = errors.New("duplicate key conflict")
	ErrLockConflict    = errors.New("lock conflict")
	ErrInvalidInput    = errors.New("invalid input")
)

// NotFoundError represents an error when a content row is not found
type NotFoundError struct {
	Resource string
	ID       interface{}
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s with identifier %v not found", e.Resource, e.ID)
}

func (e NotFoundError) Is(target error) bool {
	return target == ErrContentNotFound
}

// DuplicateKeyError is raised when a concurrent writer already inserted
// the same natural key. It is always recovered locally by re-reading
// the winning row and must never reach an API caller.
type DuplicateKeyError struct {
	TmdbID int64
	Kind   string
	Cause  error
}

func (e DuplicateKeyError) Error() string {
	return fmt.Sprintf("content (%d, %s) already inserted by a concurrent writer: %v", e.TmdbID, e.Kind, e.Cause)
}

func (e DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}

func (e DuplicateKeyError) Unwrap() error {
	return e.Cause
}

// LockConflictError is a transient failure to acquire a row or table
// lock. Callers retry it with jittered backoff and surface it only
// after the retry budget is exhausted.
type LockConflictError struct {
	Cause error
}

func (e LockConflictError) Error() string {
	return fmt.Sprintf("lock conflict: %v", e.Cause)
}

func (e LockConflictError) Is(target error) bool {
	return target == ErrLockConflict
}

func (e LockConflictError) Unwrap() error {
	return e.Cause
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource string, id interface{}) error {
	return NotFoundError{
		Resource: resource,
		ID:       id,
	}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var notFoundErr NotFoundError
	return errors.As(err, &notFoundErr) || errors.Is(err, ErrContentNotFound)
}

// IsDuplicateKey checks if an error is a concurrent duplicate-insert conflict
func IsDuplicateKey(err error) bool {
	return errors.Is(err, ErrDuplicateKey)
}

// IsLockConflict checks if an error is a transient lock conflict
func IsLockConflict(err error) bool {
	return errors.Is(err, ErrLockConflict)
}
