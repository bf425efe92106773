package board

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes board errors.
type ErrorCode string

const (
	// ErrCodeNotFound indicates a lookup missed (user or question).
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// ErrCodeAlreadyExists indicates a duplicate id on create/add.
	ErrCodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// ErrCodeUnauthorized indicates the acting user may not perform the
	// operation (delete by a non-owner non-admin, bad credentials).
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// ErrCodeValidationFailed indicates a rejected creation (recipient
	// missing, anonymous question not allowed).
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// ErrCodePersistenceFailed indicates the backing file could not be
	// rewritten.
	ErrCodePersistenceFailed ErrorCode = "PERSISTENCE_FAILED"

	// ErrCodeMalformedRecord indicates an unparsable line during load.
	// Always recovered locally: the line is skipped and load continues.
	ErrCodeMalformedRecord ErrorCode = "MALFORMED_RECORD"
)

// Error is a board failure with a machine-readable code.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates an Error with the given code and message.
func NewError(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// IsNotFound reports whether err is a board Error with ErrCodeNotFound.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	return hasCode(err, ErrCodeNotFound)
}

// IsUnauthorized reports whether err carries ErrCodeUnauthorized.
func IsUnauthorized(err error) bool {
	return hasCode(err, ErrCodeUnauthorized)
}

// IsAlreadyExists reports whether err carries ErrCodeAlreadyExists.
func IsAlreadyExists(err error) bool {
	return hasCode(err, ErrCodeAlreadyExists)
}

// IsMalformedRecord reports whether err carries ErrCodeMalformedRecord.
func IsMalformedRecord(err error) bool {
	return hasCode(err, ErrCodeMalformedRecord)
}

func hasCode(err error, code ErrorCode) bool {
	var be *Error
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
