package fcoinapi

import (
	"fmt"
)

// ConfigurationError is returned when the credentials or the base URI can not be
// used to build a request.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("fcoin: invalid configuration %s: %s", e.Field, e.Reason)
}

// SigningError wraps a failure of the HMAC writer.
type SigningError struct {
	Err error
}

func (e *SigningError) Error() string {
	return "fcoin: unable to sign request: " + e.Err.Error()
}

func (e *SigningError) Unwrap() error {
	return e.Err
}

// TransportError is returned when the http client fails before a response status is
// available, e.g. dns, connect, tls or a canceled context.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fcoin: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// HttpStatusError is returned for non-2xx responses. Body holds the raw response body
// so that the caller can inspect the exchange message.
type HttpStatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

func (e *HttpStatusError) Error() string {
	return fmt.Sprintf("fcoin: %s %s: http status %d: %s", e.Method, e.URL, e.StatusCode, string(e.Body))
}

// APIError is the exchange level error embedded in a successful http response,
// i.e. {"status": 1016, "msg": "..."}. It is only produced by APIResponse.Validate.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("fcoin: api status %d: %s", e.Status, e.Message)
}
