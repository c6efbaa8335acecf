// Package errors defines zr's coded errors. Tests and callers match on the
// code, never on the message.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a failure category
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrInvalidValue ErrorCode = "INVALID_VALUE"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrAborted      ErrorCode = "ABORTED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigWrite ErrorCode = "CONFIG_WRITE"

	// Schema errors
	ErrSchemaRead    ErrorCode = "SCHEMA_READ"
	ErrSchemaInvalid ErrorCode = "SCHEMA_INVALID"

	// Template errors
	ErrTemplateNotFound ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrTemplateLoad     ErrorCode = "TEMPLATE_LOAD"
	ErrRender           ErrorCode = "RENDER"

	// Project errors
	ErrProjectExists ErrorCode = "PROJECT_EXISTS"
	ErrCommandFailed ErrorCode = "COMMAND_FAILED"

	// Git errors
	ErrGitClone ErrorCode = "GIT_CLONE"
	ErrGitPull  ErrorCode = "GIT_PULL"
	ErrGitInit  ErrorCode = "GIT_INIT"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// ZrError is an error carrying a code, a message and optional details
type ZrError struct {
	Code    ErrorCode
	Message string
	Details map[string]any
	Wrapped error
}

func (e *ZrError) Error() string {
	if e.Wrapped == nil {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
}

func (e *ZrError) Unwrap() error { return e.Wrapped }

// Is matches any ZrError with the same code
func (e *ZrError) Is(target error) bool {
	t, ok := as(target)
	return ok && t.Code == e.Code
}

// WithDetail records key in the error details and returns e
func (e *ZrError) WithDetail(key string, value any) *ZrError {
	if e.Details == nil {
		e.Details = map[string]any{}
	}
	e.Details[key] = value
	return e
}

func build(code ErrorCode, message string, wrapped error) *ZrError {
	return &ZrError{Code: code, Message: message, Details: map[string]any{}, Wrapped: wrapped}
}

func New(code ErrorCode, message string) *ZrError {
	return build(code, message, nil)
}

func Newf(code ErrorCode, format string, args ...any) *ZrError {
	return build(code, fmt.Sprintf(format, args...), nil)
}

// Wrap attaches code and message to err. A nil err gives nil.
func Wrap(err error, code ErrorCode, message string) *ZrError {
	if err == nil {
		return nil
	}
	return build(code, message, err)
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...any) *ZrError {
	if err == nil {
		return nil
	}
	return build(code, fmt.Sprintf(format, args...), err)
}

func as(err error) (*ZrError, bool) {
	var zrErr *ZrError
	ok := errors.As(err, &zrErr)
	return zrErr, ok
}

// IsErrorCode reports whether err, or an error it wraps, has code
func IsErrorCode(err error, code ErrorCode) bool {
	zrErr, ok := as(err)
	return ok && zrErr.Code == code
}

// GetErrorCode returns the code of err, ErrUnknown for foreign errors
func GetErrorCode(err error) ErrorCode {
	if zrErr, ok := as(err); ok {
		return zrErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details of err, nil for foreign errors
func GetErrorDetails(err error) map[string]any {
	if zrErr, ok := as(err); ok {
		return zrErr.Details
	}
	return nil
}
