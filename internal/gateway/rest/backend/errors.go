package backend

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNetwork         = errors.New("backend unreachable")
	ErrTimeout         = errors.New("backend request timed out")
	ErrUnauthorized    = errors.New("backend rejected credentials")
	ErrInvalidResponse = errors.New("invalid backend response")
)

// APIError is a non-2xx answer. Message is what the backend said, or the best
// fallback available.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden {
		return ErrUnauthorized
	}
	return nil
}

func (e *APIError) Temporary() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

func (e *APIError) String() string {
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// isRetryable: network failures, timeouts and 5xx. Never auth or other 4xx.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNetwork) || errors.Is(err, ErrTimeout) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Temporary()
	}
	return false
}

const (
	msgTimeout = "La solicitud tardó demasiado tiempo. Intenta de nuevo."
	msgNetwork = "Error de conexión. Verifica tu conexión a internet."
)

// UserMessage is the text shown to the operator for a failed call: the
// backend's own message when it sent one, otherwise fallback.
func UserMessage(err error, fallback string) string {
	switch {
	case err == nil:
		return fallback
	case errors.Is(err, ErrTimeout):
		return msgTimeout
	case errors.Is(err, ErrNetwork):
		return msgNetwork
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
