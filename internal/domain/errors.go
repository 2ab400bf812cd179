package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Loader specific errors
	ErrSetupFailed       ErrorCode = "SETUP_FAILED"
	ErrDuplicateQuestion ErrorCode = "DUPLICATE_QUESTION"
	ErrInvalidQuestion   ErrorCode = "INVALID_QUESTION"
	ErrStorage           ErrorCode = "STORAGE_ERROR"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors
func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

// NewSetupError wraps a failure to bootstrap the tenant or exam type.
// Setup errors are fatal for a load run.
func NewSetupError(message string, err error) *DomainError {
	return NewError(ErrSetupFailed, message, err)
}

// NewDuplicateQuestionError reports a natural-key collision on insert. This
// only happens when a concurrent writer raced the existence check.
func NewDuplicateQuestionError(questionID string) *DomainError {
	return NewError(ErrDuplicateQuestion, fmt.Sprintf("Question already exists: %s", questionID), nil)
}

func NewInvalidQuestionError(questionID, message string) *DomainError {
	return NewError(ErrInvalidQuestion, fmt.Sprintf("Invalid question %s: %s", questionID, message), nil)
}

func NewStorageError(message string, err error) *DomainError {
	return NewError(ErrStorage, message, err)
}

// IsCode reports whether err is a DomainError carrying the given code.
func IsCode(err error, code ErrorCode) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}
