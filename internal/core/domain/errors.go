package domain

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

var ErrNotAuthenticated = errors.New("not authenticated")
var ErrUnknownRole = errors.New("unknown role")
var ErrOperationInFlight = errors.New("another session operation is in flight")
var ErrNetwork = errors.New("network error")

// APIError is the normalized failure shape for every backend call.
// StatusCode is zero when the request never produced an HTTP response.
type APIError struct {
	StatusCode int
	Message    string
	cause      error
}

func NewAPIError(status int, message string) *APIError {
	if message == "" {
		message = strings.ToLower(http.StatusText(status))
		if message == "" {
			message = fmt.Sprintf("request failed with status %d", status)
		}
	}
	return &APIError{StatusCode: status, Message: message}
}

// NewNetworkError wraps a transport-level failure where no response arrived.
func NewNetworkError(cause error) *APIError {
	return &APIError{Message: "network error", cause: cause}
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

func (e *APIError) Unwrap() error {
	if e.cause != nil {
		return ErrNetwork
	}
	return nil
}

// Unauthorized reports whether the backend rejected the credential.
func (e *APIError) Unauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// ValidationError carries per-field messages from client-side form checks.
// It is resolved entirely inside the originating screen and never reaches
// the gateway.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return strings.Join(e.FieldMessages(), "; ")
}

// FieldMessages returns the per-field messages in a stable order.
func (e *ValidationError) FieldMessages() []string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	msgs := make([]string, 0, len(names))
	for _, f := range names {
		msgs = append(msgs, e.Fields[f])
	}
	return msgs
}
