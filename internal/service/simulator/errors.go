package simulator

import "errors"

var ErrMissingEndpoints = errors.New("simulation needs a valid origin and destination")
