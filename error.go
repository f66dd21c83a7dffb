package pressclip

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These map the failure modes of the extraction pipeline. Any error
// without a code is treated as EINTERNAL.
const (
	ENULLINPUT    = "null_input"         // nil or blank input
	EINVALIDINPUT = "invalid_input_type" // input is not decodable text
	EPARSE        = "html_parse_error"   // every parser backend failed
	EENCODING     = "encoding_error"     // text could not be normalized
	EMEMORY       = "memory_error"       // input exceeds processing limits
	EEXTRACTION   = "extraction_failed"  // all strategies produced nothing usable
	EINTERNAL     = "internal"           // unexpected error
)

// Error represents an application-specific error. Errors can be
// inspected programmatically via their Code; Message is human-readable.
type Error struct {
	// Code is a machine-readable error code.
	Code string

	// Message is a human-readable message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("pressclip error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL. A nil error returns
// an empty string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error". A nil error
// returns an empty string.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
