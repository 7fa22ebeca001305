package lightspeed

import (
	"errors"
	"fmt"
	"net/http"
)

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired   = errors.New("request config is required")
	ErrUnknownCluster   = errors.New("unknown cluster")
	ErrUnknownLanguage  = errors.New("unknown language")
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrInvalidHeader    = errors.New("invalid header value")
	ErrInvalidAppID     = errors.New("appId must be a string or a boolean")
)

// TransportInitError is returned when the HTTP transport cannot be built,
// for example because a default header value is invalid. It is the only
// error a client constructor returns for a non-nil config.
type TransportInitError struct {
	Err error
}

// Error implements the error interface.
func (e *TransportInitError) Error() string {
	return fmt.Sprintf("initializing transport: %v", e.Err)
}

// Unwrap returns the underlying cause.
func (e *TransportInitError) Unwrap() error {
	return e.Err
}

// RequestError is returned when a request could not be sent, failed in
// transit, or got a non-2xx response. StatusCode is zero when no response
// was received.
type RequestError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
	Err        error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: status %d: %v", e.Method, e.URL, e.StatusCode, e.Err)
	}

	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying cause.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// DecodeKind tells apart bodies that are not JSON at all from JSON bodies
// with the wrong shape.
type DecodeKind int

const (
	// DecodeKindSyntax means the body is not valid JSON.
	DecodeKindSyntax DecodeKind = iota
	// DecodeKindSchema means the body is JSON but does not match the
	// expected resource (wrong type, missing required field).
	DecodeKindSchema
)

// String implements fmt.Stringer.
func (k DecodeKind) String() string {
	if k == DecodeKindSyntax {
		return "syntax"
	}

	return "schema"
}

// DecodeError is returned when a response body cannot be decoded into the
// expected resource.
type DecodeError struct {
	Kind DecodeKind
	// Resource is the Go type name the body was decoded into.
	Resource string
	Err      error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s (%s): %v", e.Resource, e.Kind, e.Err)
}

// Unwrap returns the underlying cause.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// MissingFieldError reports a required JSON field absent from a payload.
type MissingFieldError struct {
	Field string
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// IsTransportInitError reports whether err is or wraps a TransportInitError.
func IsTransportInitError(err error) bool {
	var initErr *TransportInitError

	return errors.As(err, &initErr)
}

// IsRequestError reports whether err is or wraps a RequestError.
func IsRequestError(err error) bool {
	var reqErr *RequestError

	return errors.As(err, &reqErr)
}

// IsDecodeError reports whether err is or wraps a DecodeError.
func IsDecodeError(err error) bool {
	var decErr *DecodeError

	return errors.As(err, &decErr)
}

// IsNotFound checks if the error is a 404 response.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is a 401 response.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

func hasStatus(err error, status int) bool {
	reqErr := &RequestError{}
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode == status
	}

	return false
}
