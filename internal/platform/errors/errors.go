// Package errors provides a structured error type with wrapping and metadata
package errors

// Always import the project errors package as perr (platform/errors)

import (
	stderrs "errors"
	"fmt"
)

// ErrorCode defines supported error codes used across the pipeline stages
// Values are stable because they double as process exit statuses; add sparingly
type ErrorCode uint16

const (
	// ErrorCodeUnknown is for unclassified errors
	ErrorCodeUnknown ErrorCode = iota

	// ErrorCodeInvalidArgument is for bad flags or configuration
	ErrorCodeInvalidArgument

	// ErrorCodeDecompression is for an archive that is unreadable or corrupt
	ErrorCodeDecompression

	// ErrorCodeLoad is for a malformed record met while loading a document
	ErrorCodeLoad

	// ErrorCodeQuery is for a malformed query or an engine failure
	ErrorCodeQuery

	// ErrorCodeDataUnavailable is for a dataset that is missing at read time
	ErrorCodeDataUnavailable

	// ErrorCodeFilesystem is for directory or file creation and write failures
	ErrorCodeFilesystem
)

// String returns the taxonomy name used in logs
func (c ErrorCode) String() string {
	switch c {
	case ErrorCodeInvalidArgument:
		return "InvalidArgument"
	case ErrorCodeDecompression:
		return "DecompressionError"
	case ErrorCodeLoad:
		return "LoadError"
	case ErrorCodeQuery:
		return "QueryError"
	case ErrorCodeDataUnavailable:
		return "DataUnavailableError"
	case ErrorCodeFilesystem:
		return "FilesystemError"
	default:
		return "Unknown"
	}
}

// ExitStatus turns an ErrorCode into a non-zero process exit status
func ExitStatus(c ErrorCode) int {
	switch c {
	case ErrorCodeInvalidArgument:
		return 2
	case ErrorCodeDecompression:
		return 3
	case ErrorCodeLoad:
		return 4
	case ErrorCodeQuery:
		return 5
	case ErrorCodeDataUnavailable:
		return 6
	case ErrorCodeFilesystem:
		return 7
	default:
		return 1
	}
}

// Error is the structured error type with wrapping and metadata
// msg is human/developer facing; code is machine facing
// field is optional (config key, record field); op is optional operation tag
// line is the 1-based input line for load errors, 0 when unknown
// orig is the wrapped cause
type Error struct {
	orig  error
	msg   string
	code  ErrorCode
	field string
	op    string
	line  int
}

// Error implements the error interface
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

// Unwrap returns the wrapped error, if any
func (e *Error) Unwrap() error { return e.orig }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Field returns the offending field, if any
func (e *Error) Field() string { return e.field }

// Op returns the operation label, if set
func (e *Error) Op() string { return e.op }

// Line returns the offending input line, 0 when not set
func (e *Error) Line() int { return e.line }

// Root returns the deepest wrapped cause
func Root(err error) error {
	for err != nil {
		u := stderrs.Unwrap(err)
		if u == nil {
			return err
		}
		err = u
	}
	return nil
}

// CodeOf extracts an ErrorCode from any error, defaulting to Unknown
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err has the given code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// ExitCode returns the process exit status for any error, 0 for nil
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return ExitStatus(CodeOf(err))
}

// As unwraps and returns (*Error, true) if err is one of ours
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Mutators (copy-on-write)

// WithField attaches a field to an *Error (copy-on-write). If err isn't *Error, returns err unchanged
func WithField(err error, field string) error {
	if e, ok := As(err); ok {
		c := *e
		c.field = field
		return &c
	}
	return err
}

// WithOp attaches an operation label to an *Error (copy-on-write). If err isn't *Error, returns err unchanged
func WithOp(err error, op string) error {
	if e, ok := As(err); ok {
		c := *e
		c.op = op
		return &c
	}
	return err
}

// WithLine attaches an input line number to an *Error (copy-on-write). If err isn't *Error, returns err unchanged
func WithLine(err error, line int) error {
	if e, ok := As(err); ok {
		c := *e
		c.line = line
		return &c
	}
	return err
}

// Constructors

// New returns a new *Error with the given code and message
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf returns a new *Error with code and formatted message
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap returns a new *Error that wraps orig with code and message
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// Wrapf returns a new *Error that wraps orig with code and formatted message
func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), orig: orig}
}

// WrapIf wraps only when err != nil (helper for 1-liners)
func WrapIf(err error, code ErrorCode, msg string) error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, msg)
}

// Sugar

// InvalidArgf returns an invalid argument error
func InvalidArgf(format string, a ...any) error { return Newf(ErrorCodeInvalidArgument, format, a...) }

// Decompressionf returns a decompression error
func Decompressionf(format string, a ...any) error { return Newf(ErrorCodeDecompression, format, a...) }

// Loadf returns a load error
func Loadf(format string, a ...any) error { return Newf(ErrorCodeLoad, format, a...) }

// Queryf returns a query error
func Queryf(format string, a ...any) error { return Newf(ErrorCodeQuery, format, a...) }

// DataUnavailablef returns a data unavailable error
func DataUnavailablef(format string, a ...any) error {
	return Newf(ErrorCodeDataUnavailable, format, a...)
}

// Filesystemf returns a filesystem error
func Filesystemf(format string, a ...any) error { return Newf(ErrorCodeFilesystem, format, a...) }

// Internalf returns a generic internal error
func Internalf(format string, a ...any) error { return Newf(ErrorCodeUnknown, format, a...) }
