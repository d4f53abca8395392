package entities

import "strings"

type RiderStatusType string

const (
	RiderAvailable RiderStatusType = "available"
	RiderBusy      RiderStatusType = "busy"
	RiderPaused    RiderStatusType = "paused"
	RiderOffline   RiderStatusType = "offline"
)

func (t RiderStatusType) String() string {
	return string(t)
}

type Rider struct {
	ID     string
	Name   string
	Status RiderStatusType
}

// RiderView is a rider with availability derived from the active deliveries.
type RiderView struct {
	Rider
	Available bool
}

// Matches is the rider filter used by listings: case-insensitive on id or name.
func (r Rider) Matches(filter string) bool {
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.ID), filter) ||
		strings.Contains(strings.ToLower(r.Name), filter)
}

// IsRiderAvailable is false while any non-terminal delivery is assigned to riderID.
func IsRiderAvailable(riderID string, actives []Delivery) bool {
	for _, d := range actives {
		if d.RiderID == riderID && !d.Status.IsTerminal() {
			return false
		}
	}
	return true
}

func RiderViews(riders []Rider, actives []Delivery) []RiderView {
	views := make([]RiderView, 0, len(riders))
	for _, r := range riders {
		views = append(views, RiderView{
			Rider:     r,
			Available: IsRiderAvailable(r.ID, actives),
		})
	}
	return views
}
