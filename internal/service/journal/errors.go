package journal

import "errors"

var (
	ErrInvalidDeliveryID = errors.New("invalid delivery id")
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInvalidRun        = errors.New("invalid simulation run")
	ErrDuplicateRun      = errors.New("simulation run already recorded")
)
