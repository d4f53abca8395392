package reporter

import "errors"

var (
	ErrMissingDeliveryID      = errors.New("delivery id is required")
	ErrGeolocationUnavailable = errors.New("geolocation unavailable")
)
