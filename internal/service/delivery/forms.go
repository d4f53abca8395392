package delivery

import (
	"math"
	"strconv"
	"strings"

	"console/internal/entities"
)

// Selection is what the operator picked in the lists. OrderID is only set for
// a delivery that is ready to assign; any other delivery becomes the
// tracking candidate instead.
type Selection struct {
	DeliveryID  string
	OrderID     string
	TrackingID  string
	RiderID     string
	Destination *entities.Coordinate
}

// AssignmentForm assigns an order to a rider.
type AssignmentForm struct {
	OrderID string
	RiderID string
}

func (f AssignmentForm) Validate() error {
	if !isValidID(f.OrderID) {
		return ErrInvalidOrderID
	}
	if !isValidID(f.RiderID) {
		return ErrInvalidRiderID
	}
	return nil
}

func (f AssignmentForm) Assignment() entities.Assignment {
	return entities.Assignment{
		OrderID: strings.TrimSpace(f.OrderID),
		RiderID: strings.TrimSpace(f.RiderID),
	}
}

// LocationForm is a manual position report. Coordinates are kept as typed
// by the operator and parsed on Validate.
type LocationForm struct {
	DeliveryID string
	Lat        string
	Lng        string
}

func (f LocationForm) Validate() (entities.Coordinate, error) {
	if !isValidID(f.DeliveryID) {
		return entities.Coordinate{}, ErrInvalidDeliveryID
	}

	lat, latErr := parseFinite(f.Lat)
	lng, lngErr := parseFinite(f.Lng)
	if latErr != nil || lngErr != nil {
		return entities.Coordinate{}, ErrInvalidCoordinate
	}

	c := entities.Coordinate{Lat: lat, Lng: lng}
	if !c.Valid() {
		return entities.Coordinate{}, ErrInvalidCoordinate
	}
	return c, nil
}

func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidCoordinate
	}
	return v, nil
}
