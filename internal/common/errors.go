package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors. Extraction failures degrade to a skipped
// document; configuration errors abort the run at startup.
var (
	ErrExtraction    = errors.New("text extraction failed")
	ErrConfiguration = errors.New("invalid configuration")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInternal      = errors.New("internal error")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// ConfigError marks a configuration-load failure; always fatal at startup.
func ConfigError(message string, cause error) error {
	return NewAppError("CONFIG_ERROR", message, errors.Join(ErrConfiguration, cause))
}

// ExtractionError marks a per-document extraction failure; the batch
// continues and reports the document as skipped.
func ExtractionError(path string, cause error) error {
	return NewAppError("EXTRACTION_FAILURE", path, errors.Join(ErrExtraction, cause))
}
