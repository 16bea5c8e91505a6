package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// SyncFailureError represents a failed call to the external scheduling system.
// It is fatal to the current transaction only: local changes made in the same
// transaction are rolled back, so the caller can distinguish "nothing changed"
// from "changed but needs retry".
type SyncFailureError struct {
	Operation string
	EventRef  string
	Cause     error
}

func (e *SyncFailureError) Error() string {
	return fmt.Sprintf("external sync %s failed for event %s: %v", e.Operation, e.EventRef, e.Cause)
}

// Unwrap exposes the underlying cause
func (e *SyncFailureError) Unwrap() error {
	return e.Cause
}

// Is enables errors.Is() comparison for SyncFailureError
func (e *SyncFailureError) Is(target error) bool {
	_, ok := target.(*SyncFailureError)
	return ok
}

// ConcurrentModificationError represents a stale optimistic-lock write.
// Retryable: the caller should re-fetch and retry the operation.
type ConcurrentModificationError struct {
	Entity string
}

func (e *ConcurrentModificationError) Error() string {
	return fmt.Sprintf("%s was modified concurrently, re-fetch and retry", e.Entity)
}

// Is enables errors.Is() comparison for ConcurrentModificationError
func (e *ConcurrentModificationError) Is(target error) bool {
	_, ok := target.(*ConcurrentModificationError)
	return ok
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrEmployeeNotFound  = &NotFoundError{Entity: "employee"}
	ErrEventNotFound     = &NotFoundError{Entity: "event"}
	ErrScheduleNotFound  = &NotFoundError{Entity: "schedule"}
	ErrProposalNotFound  = &NotFoundError{Entity: "pending proposal"}
	ErrEngineRunNotFound = &NotFoundError{Entity: "engine run"}
)

// Business Logic Errors
var (
	ErrInvalidStatus             = errors.New("invalid status")
	ErrInvalidTimeRange          = errors.New("invalid time range")
	ErrEventAlreadyScheduled     = errors.New("event already has an active schedule")
	ErrEventNotScheduled         = errors.New("event has no active schedule")
	ErrScheduleConflict          = errors.New("schedule conflict detected")
	ErrIllegalProposalTransition = errors.New("illegal proposal state transition")
	ErrProposalFlagged           = errors.New("proposal has hard constraint violations and requires explicit override")
	ErrInvalidPaginationParams   = errors.New("invalid pagination parameters")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsSyncFailure checks if an error is a SyncFailureError
func IsSyncFailure(err error) bool {
	var syncErr *SyncFailureError
	return errors.As(err, &syncErr)
}

// IsConcurrentModification checks if an error is a ConcurrentModificationError
func IsConcurrentModification(err error) bool {
	var cmErr *ConcurrentModificationError
	return errors.As(err, &cmErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewSyncFailureError creates a new SyncFailureError
func NewSyncFailureError(operation, eventRef string, cause error) error {
	return &SyncFailureError{Operation: operation, EventRef: eventRef, Cause: cause}
}

// NewConcurrentModificationError creates a new ConcurrentModificationError
func NewConcurrentModificationError(entity string) error {
	return &ConcurrentModificationError{Entity: entity}
}
