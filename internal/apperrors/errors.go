// Package apperrors defines the error kinds the engine surfaces to callers.
// NotFound, Forbidden, SelfFollow, Validation and ContentLocked are business
// outcomes; Conflict marks a unique-constraint race the single-retry rule
// could not resolve; Storage wraps collaborator failures and is never
// retried here.
package apperrors

import "fmt"

// NotFoundError reports that a referenced entity does not exist.
type NotFoundError struct {
	Resource string
	ID       any
}

func (e *NotFoundError) Error() string {
	if e.ID == nil {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %v not found", e.Resource, e.ID)
}

// NewNotFound builds a NotFoundError for a resource/id pair.
func NewNotFound(resource string, id any) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ForbiddenError reports a failed role or ownership check.
type ForbiddenError struct {
	Reason string
}

func (e *ForbiddenError) Error() string {
	return e.Reason
}

// SelfFollowError reports a degenerate self-targeting follow.
type SelfFollowError struct {
	UserID uint
}

func (e *SelfFollowError) Error() string {
	return fmt.Sprintf("user %d cannot follow themselves", e.UserID)
}

// ContentLockedError reports an interaction attempt on a hidden post.
type ContentLockedError struct {
	PostID uint
}

func (e *ContentLockedError) Error() string {
	return fmt.Sprintf("interaction is disabled for hidden post %d", e.PostID)
}

// ValidationError reports a request that fails a structural rule the
// struct tags cannot express.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ConflictError reports a unique-constraint race that survived the
// single documented retry.
type ConflictError struct {
	Resource string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflicting concurrent update on %s", e.Resource)
}

// StorageError wraps a failure of the underlying store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Storage wraps err as a StorageError unless it is nil.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
