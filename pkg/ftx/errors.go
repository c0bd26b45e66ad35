package ftx

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrAuthRequired is matched by AuthRequiredError via errors.Is.
var ErrAuthRequired = errors.New("ftx: endpoint requires credentials")

// ConstructionError reports an endpoint or credentials value built from
// invalid input. It is always returned before any network call.
type ConstructionError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ConstructionError) Error() string {
	msg := fmt.Sprintf("ftx: invalid %s: %s", e.Field, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

func constructionErr(field, reason string, err error) error {
	return &ConstructionError{Field: field, Reason: reason, Err: err}
}

// AuthRequiredError is returned when an authenticated endpoint is executed on
// a client without credentials.
type AuthRequiredError struct {
	Method string
	Path   string
}

func (e *AuthRequiredError) Error() string {
	return fmt.Sprintf("ftx: %s %s requires credentials", e.Method, e.Path)
}

func (e *AuthRequiredError) Is(target error) bool {
	return target == ErrAuthRequired
}

// TransportError wraps a failure to send the request or read the response.
type TransportError struct {
	Method   string
	Path     string
	Err      error
	timeout  bool
	canceled bool
}

func (e *TransportError) Error() string {
	switch {
	case e.timeout:
		return fmt.Sprintf("ftx: %s %s timed out: %v", e.Method, e.Path, e.Err)
	case e.canceled:
		return fmt.Sprintf("ftx: %s %s canceled: %v", e.Method, e.Path, e.Err)
	}
	return fmt.Sprintf("ftx: %s %s failed: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the call exceeded its deadline.
func (e *TransportError) Timeout() bool {
	return e.timeout
}

// Canceled reports whether the caller canceled the call.
func (e *TransportError) Canceled() bool {
	return e.canceled
}

// ExchangeError is the envelope's {"success": false, "error": "..."} case.
// The HTTP status may still be 200.
type ExchangeError struct {
	Message    string
	StatusCode int
}

func (e *ExchangeError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("ftx: request rejected by the exchange (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("ftx: request rejected by the exchange (status %d): %s", e.StatusCode, e.Message)
}

// RateLimited reports whether the rejection came with HTTP 429.
func (e *ExchangeError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// DecodeError means the body was not the expected envelope or the result did
// not match the declared type.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ftx: failed to deserialize response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("ftx: failed to deserialize response: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
