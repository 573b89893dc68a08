package holidayapi

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrInvalidKeyFormat indicates the API key is not shaped like a UUID
	ErrInvalidKeyFormat = errors.New("invalid key format")
	// ErrInvalidVersion indicates an unsupported API version
	ErrInvalidVersion = errors.New("invalid version")
	// ErrInvalidOrExpiredKey indicates the API rejected the key with 401
	ErrInvalidOrExpiredKey = errors.New("invalid or expired key")
	// ErrTransport indicates a network failure or a non-2xx response other than 401
	ErrTransport = errors.New("transport error")
	// ErrNoClient indicates a request builder that was not created by a Client
	ErrNoClient = errors.New("request has no client")
	// ErrDecode indicates a response body that does not match the expected envelope
	ErrDecode = errors.New("decode error")
)

// APIError represents a non-2xx response from Holiday API
type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("holidayapi: status %d: %s", e.StatusCode, e.Message)
}

// Unwrap classifies the response: 401 maps to ErrInvalidOrExpiredKey,
// everything else to ErrTransport.
func (e *APIError) Unwrap() error {
	if e.IsUnauthorized() {
		return ErrInvalidOrExpiredKey
	}
	return ErrTransport
}

// IsUnauthorized checks if the error indicates a rejected key
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsRateLimited checks if the error indicates the request quota was exhausted
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}
