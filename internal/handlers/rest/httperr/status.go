package httperr

import (
	"errors"
	"net/http"

	"console/internal/gateway/rest/backend"
)

// BackendStatus maps a failed backend call to the console's response status.
// Errors that did not come from the backend are 500.
func BackendStatus(err error) int {
	var apiErr *backend.APIError

	switch {
	case errors.Is(err, backend.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, backend.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.As(err, &apiErr):
		if apiErr.StatusCode == http.StatusNotFound || apiErr.StatusCode == http.StatusConflict {
			return apiErr.StatusCode
		}
		if apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			return http.StatusUnprocessableEntity
		}
		return http.StatusBadGateway
	case errors.Is(err, backend.ErrNetwork),
		errors.Is(err, backend.ErrInvalidResponse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
