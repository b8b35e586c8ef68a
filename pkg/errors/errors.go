// Package errors provides structured error types for kbdlayout.
//
// Every failure in the conversion is fatal: a keymap that cannot be parsed,
// a keysym that cannot be resolved or a layout tree whose siblings disagree
// aborts the whole run. The codes below let callers (the CLI and the HTTP
// API) tell these classes apart without matching on message text.
//
// # Error Codes
//
//   - UNRECOGNIZED_DIRECTIVE, INVALID_COLUMNS, TOO_MANY_KEYSYMS,
//     INVALID_KEYCODE, INCLUDE_DEPTH: keymap parse errors
//   - INVALID_META_COMBINATION: symbol resolution errors
//   - GEOMETRY_MISMATCH, INVALID_LAYOUT: layout tree errors
//   - INVALID_*: caller input validation failures
//   - INTERNAL_*, UNSUPPORTED: everything else
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnrecognizedDirective, "%s:%d: %q", file, line, text)
//	if errors.Is(err, errors.ErrCodeUnrecognizedDirective) {
//	    // Handle parse error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFileNotFound, origErr, "include %s", name)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Keymap parse errors
	ErrCodeUnrecognizedDirective Code = "UNRECOGNIZED_DIRECTIVE"
	ErrCodeInvalidColumns        Code = "INVALID_COLUMNS"
	ErrCodeTooManyKeysyms        Code = "TOO_MANY_KEYSYMS"
	ErrCodeInvalidKeycode        Code = "INVALID_KEYCODE"
	ErrCodeIncludeDepth          Code = "INCLUDE_DEPTH"

	// Symbol resolution errors
	ErrCodeInvalidMetaCombination Code = "INVALID_META_COMBINATION"

	// Layout errors
	ErrCodeGeometryMismatch Code = "GEOMETRY_MISMATCH"
	ErrCodeInvalidLayout    Code = "INVALID_LAYOUT"

	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidGeometry Code = "INVALID_GEOMETRY"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code,
// so a parse error raised inside an include is still found after the
// outer file wraps it.
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode extracts the outermost error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return e.Message + ": " + UserMessage(e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// IsParseError reports whether err was raised while interpreting a keymap.
func IsParseError(err error) bool {
	switch GetCode(err) {
	case ErrCodeUnrecognizedDirective, ErrCodeInvalidColumns, ErrCodeTooManyKeysyms,
		ErrCodeInvalidKeycode, ErrCodeIncludeDepth:
		return true
	}
	return false
}

// IsClientError reports whether err was caused by caller-supplied input
// rather than by the environment. The HTTP API maps these to 400.
func IsClientError(err error) bool {
	if IsParseError(err) {
		return true
	}
	switch GetCode(err) {
	case ErrCodeInvalidMetaCombination, ErrCodeInvalidInput, ErrCodeInvalidFormat,
		ErrCodeInvalidGeometry, ErrCodeFileNotFound:
		return true
	}
	return false
}
