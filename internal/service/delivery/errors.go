package delivery

import "errors"

var (
	ErrInvalidOrderID    = errors.New("invalid order id")
	ErrInvalidRiderID    = errors.New("invalid rider id")
	ErrInvalidDeliveryID = errors.New("invalid delivery id")
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInvalidStatus     = errors.New("invalid status")

	ErrDeliveryNotFound = errors.New("delivery not found")
	ErrRiderNotFound    = errors.New("rider not found")
	ErrRiderUnavailable = errors.New("rider has an active delivery")
	ErrNotInTransit     = errors.New("delivery is not in transit")
	ErrActionInProgress = errors.New("action already in progress")
)
