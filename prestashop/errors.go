package prestashop

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid webservice configuration")
	// ErrMissingKey indicates an empty webservice key
	ErrMissingKey = errors.New("webservice key is required")
	// ErrUnknownResource indicates no resource kind registered under the name
	ErrUnknownResource = errors.New("unknown resource")
	// ErrUnknownLanguage indicates an ISO code absent from the language map
	ErrUnknownLanguage = errors.New("unknown language")
	// ErrMissingNode indicates an expected element absent from an XML payload
	ErrMissingNode = errors.New("node not found in response")
)

// StatusError represents a non-2xx webservice response
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
	Body       string
}

// Error implements the error interface
func (e *StatusError) Error() string {
	return fmt.Sprintf("webservice error: status %d: %s", e.StatusCode, e.URL)
}

// IsNotFound checks if the error indicates a not found response
func (e *StatusError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *StatusError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// IsServerError checks if the error indicates a shop-side failure
func (e *StatusError) IsServerError() bool {
	return e.StatusCode >= 500
}

// RequestError represents a failure to construct a request before it was
// issued. Resource.Get treats this class as recoverable and degrades to an
// empty model instead of failing the lookup.
type RequestError struct {
	URL string
	Err error
}

// Error implements the error interface
func (e *RequestError) Error() string {
	return fmt.Sprintf("failed to build request for %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying cause
func (e *RequestError) Unwrap() error {
	return e.Err
}
