package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError carries every business rule a request violated, not just
// the first one, so the caller can correct its input in one round trip.
type ValidationError struct {
	Messages []string
}

func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// NotFoundError signals that a referenced entity does not exist.
type NotFoundError struct {
	Entity string
	ID     int32
}

func NewNotFoundError(entity string, id int32) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// ConflictError signals a concurrent modification detected at commit time.
// The caller should re-fetch and retry the whole operation.
type ConflictError struct {
	Message string
}

func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

func (e *ConflictError) Error() string {
	return e.Message
}

// SystemError wraps an unexpected infrastructure failure. The wrapped cause is
// logged internally; only the generic message is shown to callers.
type SystemError struct {
	cause error
}

func NewSystemError(cause error) *SystemError {
	return &SystemError{cause: cause}
}

func (e *SystemError) Error() string {
	return "internal system error"
}

func (e *SystemError) Unwrap() error {
	return e.cause
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
