package errors

import (
	"errors"
	"fmt"
)

// Code categorizes an error so the Discord layer can map it to a single
// user-facing message.
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeMalformedLog indicates a replay log that could not be parsed
	CodeMalformedLog Code = "malformed_log"

	// CodeNotFound indicates a pokemon/generation/format/set was not present
	CodeNotFound Code = "not_found"

	// CodeUpstream indicates a transient remote failure (network, timeout, non-2xx)
	CodeUpstream Code = "upstream"

	// CodeInvalidReplayURL indicates a replay URL of the wrong origin or shape
	CodeInvalidReplayURL Code = "invalid_replay_url"

	// CodeInvalidSheetURL indicates a URL that does not resolve to a sheet, or access denied
	CodeInvalidSheetURL Code = "invalid_sheet_url"

	// CodeNoDefault indicates an implicit sheet was required but none is configured
	CodeNoDefault Code = "no_default"

	// CodeSectionFull indicates a player's section cannot accept more Pokemon
	CodeSectionFull Code = "section_full"

	// CodeNameDoesNotExist indicates a delete target that is absent
	CodeNameDoesNotExist Code = "name_does_not_exist"

	// CodeUnauthorized indicates a toggle by a non-owner of a selection session
	CodeUnauthorized Code = "unauthorized"

	// CodeBadArguments indicates a command parsed into an unsupported shape
	CodeBadArguments Code = "bad_arguments"

	// CodeInternal indicates an internal error
	CodeInternal Code = "internal"
)

// Error is the application error type carrying a code and optional metadata.
type Error struct {
	// Code is the error code
	Code Code

	// Message is the error message
	Message string

	// Cause is the wrapped error
	Cause error

	// Meta contains additional context
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context, preserving the code when the
// cause is already one of ours.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var clodErr *Error
	if errors.As(err, &clodErr) {
		return &Error{
			Code:    clodErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(clodErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// Helper constructors for the common kinds

// MalformedLog creates a malformed log error
func MalformedLog(message string) *Error {
	return New(CodeMalformedLog, message)
}

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// Upstream creates an upstream error
func Upstream(message string) *Error {
	return New(CodeUpstream, message)
}

// Upstreamf creates a formatted upstream error
func Upstreamf(format string, args ...any) *Error {
	return Newf(CodeUpstream, format, args...)
}

// InvalidReplayURL creates an invalid replay URL error
func InvalidReplayURL(message string) *Error {
	return New(CodeInvalidReplayURL, message)
}

// InvalidSheetURL creates an invalid sheet URL error
func InvalidSheetURL(message string) *Error {
	return New(CodeInvalidSheetURL, message)
}

// NoDefault creates a no default sheet error
func NoDefault(message string) *Error {
	return New(CodeNoDefault, message)
}

// SectionFull creates a section full error
func SectionFull(message string) *Error {
	return New(CodeSectionFull, message)
}

// SectionFullf creates a formatted section full error
func SectionFullf(format string, args ...any) *Error {
	return Newf(CodeSectionFull, format, args...)
}

// NameDoesNotExist creates a missing delete target error
func NameDoesNotExist(message string) *Error {
	return New(CodeNameDoesNotExist, message)
}

// NameDoesNotExistf creates a formatted missing delete target error
func NameDoesNotExistf(format string, args ...any) *Error {
	return Newf(CodeNameDoesNotExist, format, args...)
}

// Unauthorized creates an unauthorized error
func Unauthorized(message string) *Error {
	return New(CodeUnauthorized, message)
}

// BadArguments creates a bad arguments error
func BadArguments(message string) *Error {
	return New(CodeBadArguments, message)
}

// BadArgumentsf creates a formatted bad arguments error
func BadArgumentsf(format string, args ...any) *Error {
	return Newf(CodeBadArguments, format, args...)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Internalf creates a formatted internal error
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// Error checking functions

// Is checks if the error carries a specific code
func Is(err error, code Code) bool {
	var clodErr *Error
	if errors.As(err, &clodErr) {
		return clodErr.Code == code
	}
	return false
}

// IsMalformedLog checks if the error is a malformed log error
func IsMalformedLog(err error) bool {
	return Is(err, CodeMalformedLog)
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsUpstream checks if the error is an upstream error
func IsUpstream(err error) bool {
	return Is(err, CodeUpstream)
}

// IsNoDefault checks if the error is a no default error
func IsNoDefault(err error) bool {
	return Is(err, CodeNoDefault)
}

// IsSectionFull checks if the error is a section full error
func IsSectionFull(err error) bool {
	return Is(err, CodeSectionFull)
}

// IsUnauthorized checks if the error is an unauthorized error
func IsUnauthorized(err error) bool {
	return Is(err, CodeUnauthorized)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var clodErr *Error
	if errors.As(err, &clodErr) {
		return clodErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var clodErr *Error
	if errors.As(err, &clodErr) {
		return clodErr.Meta
	}
	return nil
}

// copyMeta creates a copy of the metadata map
func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
