package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// CRUDError is the single error kind returned by the service layer.
// Code follows HTTP status semantics so handlers can surface it directly.
type CRUDError struct {
	Code    int
	Message string
	Err     error
}

// NewCRUDError builds a CRUDError wrapping the underlying cause.
func NewCRUDError(code int, message string, err error) *CRUDError {
	return &CRUDError{Code: code, Message: message, Err: err}
}

func (e *CRUDError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *CRUDError) Unwrap() error {
	return e.Err
}

// AsCRUDError reports whether err carries a CRUDError and returns it.
func AsCRUDError(err error) (*CRUDError, bool) {
	var crudErr *CRUDError
	if errors.As(err, &crudErr) {
		return crudErr, true
	}
	return nil, false
}
