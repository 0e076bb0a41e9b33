package svcerrors

import (
	"errors"
	"fmt"
)

const (
	categoryInvalidArgument = "invalid_argument"
	categoryFetch           = "fetch"
	categoryParse           = "parse"
	categoryData            = "data"
	categoryInternal        = "internal"
)

const (
	errorCodeInternalPanic     = "SYS_9000"
	errorCodeInternalUndefined = "SYS_9001"
)

// NewInvalidArgumentError creates a new ServiceError with category invalid_argument.
func NewInvalidArgumentError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category:       categoryInvalidArgument,
		Code:           code,
		Message:        message,
		Cause:          cause,
		HttpStatusCode: 400,
	}
}

// NewFetchError creates a new ServiceError with category fetch.
// The log source was unreachable or answered with a transport-level failure.
func NewFetchError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category:       categoryFetch,
		Code:           code,
		Message:        message,
		Cause:          cause,
		HttpStatusCode: 502,
	}
}

// NewParseError creates a new ServiceError with category parse.
func NewParseError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category:       categoryParse,
		Code:           code,
		Message:        message,
		Cause:          cause,
		HttpStatusCode: 422,
	}
}

// NewDataError creates a new ServiceError with category data.
func NewDataError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category:       categoryData,
		Code:           code,
		Message:        message,
		Cause:          cause,
		HttpStatusCode: 422,
	}
}

// NewInternalError creates a new ServiceError with category internal.
func NewInternalError(code string, cause error) *ServiceError {
	return &ServiceError{
		Category:       categoryInternal,
		Code:           code,
		Message:        "internal error",
		Cause:          cause,
		HttpStatusCode: 500,
	}
}

// NewInternalErrorUndefined creates a new ServiceError with category internal and code SYS_9001.
func NewInternalErrorUndefined(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalUndefined, cause)
}

func NewInternalErrorPanic(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalPanic, cause)
}

// AsServiceError extracts a ServiceError from the error chain.
// It returns (*ServiceError, true) if err wraps a ServiceError, otherwise (nil, false).
func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// ServiceError is the tagged result of a failed run. Category tells callers which
// stage failed (fetch, parse, data) so they can react differently.
type ServiceError struct {
	Category       string // invalid_argument, fetch, parse, data or internal
	Code           string // service-owned stable code (e.g. PAR_1002)
	Message        string // human-readable, names the offending input
	Cause          error  // wrapped underlying error
	HttpStatusCode int    // HTTP status code used by serve mode
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error to support errors.Is and errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

func (e *ServiceError) IsInternalError() bool {
	return e.Category == categoryInternal
}

func (e *ServiceError) IsFetchError() bool {
	return e.Category == categoryFetch
}

func (e *ServiceError) IsParseError() bool {
	return e.Category == categoryParse
}

func (e *ServiceError) IsDataError() bool {
	return e.Category == categoryData
}
