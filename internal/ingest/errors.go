package ingest

import "fmt"

// ErrorCode classifies fatal import failures so callers can show a single
// human-readable message per failure class.
type ErrorCode string

const (
	// ErrBadFile means the input could not be read as CSV at all.
	ErrBadFile ErrorCode = "BAD_FILE"
	// ErrUnsupportedFormat means the header row had no recognizable date or
	// description column. The whole import aborts; there is no partial result.
	ErrUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	// ErrEmptyResult means parsing succeeded but zero valid rows remained
	// after filtering.
	ErrEmptyResult ErrorCode = "EMPTY_RESULT"
)

// ImportError is a structured error for fatal import failures.
type ImportError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func (e *ImportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *ImportError) Unwrap() error {
	return e.Cause
}
