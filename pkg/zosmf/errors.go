package zosmf

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired  = errors.New("config is required")
	ErrBaseURLRequired = errors.New("base URL is required")
	ErrMissingHeader   = errors.New("missing mandatory response header")
	ErrInvalidHeader   = errors.New("invalid response header value")
	ErrInvalidUTF8     = errors.New("body is not valid UTF-8")
)

// APIError represents an error response from the z/OSMF REST API. The body
// fields follow the documented z/OSMF error schema; StatusCode carries the
// HTTP status the body arrived with.
type APIError struct {
	Category int      `json:"category"          yaml:"category"`
	RC       int      `json:"rc"                yaml:"rc"`
	Reason   int      `json:"reason"            yaml:"reason"`
	Message  string   `json:"message"           yaml:"message"`
	Details  []string `json:"details,omitempty" yaml:"details,omitempty"`
	Stack    string   `json:"stack,omitempty"   yaml:"stack,omitempty"`

	StatusCode int `json:"-" yaml:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("z/OSMF request failed with status %d", e.StatusCode)
	}

	return fmt.Sprintf("%s (status: %d, category: %d, rc: %d, reason: %d)",
		e.Message, e.StatusCode, e.Category, e.RC, e.Reason)
}

// ParseAPIError parses a z/OSMF error body. An unparseable or empty body
// still yields an APIError carrying the status code.
func ParseAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{}
	if len(body) > 0 {
		_ = json.Unmarshal(body, apiErr)
	}

	apiErr.StatusCode = statusCode

	return apiErr
}

// HeaderError reports a protocol metadata header that is absent despite
// being mandatory for the operation, or present but malformed.
type HeaderError struct {
	Header string
	Err    error
}

// Error implements the error interface.
func (e *HeaderError) Error() string {
	return fmt.Sprintf("response header %q: %v", e.Header, e.Err)
}

// Unwrap supports errors.Is against ErrMissingHeader and ErrInvalidHeader.
func (e *HeaderError) Unwrap() error {
	return e.Err
}

// DecodeError reports a response body that does not parse as the requested
// representation.
type DecodeError struct {
	Representation string
	Err            error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s response body: %v", e.Representation, e.Err)
}

// Unwrap returns the underlying parse failure.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsUnauthorized checks if the error is an authentication failure.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}

	return false
}

// IsForbidden checks if the error is an authorization failure.
func IsForbidden(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusForbidden
	}

	return false
}
