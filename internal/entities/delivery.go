package entities

import "strings"

// DeliveryStatus is an open vocabulary owned by the backend. Spellings are
// mixed English/Spanish, so values are compared after Normalized.
type DeliveryStatus string

const (
	StatusReadyForPickup DeliveryStatus = "listo_para_entrega"
	StatusAsignado       DeliveryStatus = "asignado"
	StatusAssigned       DeliveryStatus = "assigned"
	StatusEnCamino       DeliveryStatus = "en_camino"
	StatusOnRoute        DeliveryStatus = "onroute"
	StatusDelivered      DeliveryStatus = "delivered"
	StatusEntregado      DeliveryStatus = "entregado"
)

func (s DeliveryStatus) String() string {
	return string(s)
}

func (s DeliveryStatus) Normalized() DeliveryStatus {
	return DeliveryStatus(strings.ToLower(strings.TrimSpace(string(s))))
}

func (s DeliveryStatus) IsTerminal() bool {
	switch s.Normalized() {
	case StatusDelivered, StatusEntregado:
		return true
	default:
		return false
	}
}

// IsActive is true for known, non-terminal statuses. An empty status is not active.
func (s DeliveryStatus) IsActive() bool {
	return s.Normalized() != "" && !s.IsTerminal()
}

func (s DeliveryStatus) IsReadyToAssign() bool {
	return s.Normalized() == StatusReadyForPickup
}

// IsInTransit marks the statuses from which a delivery can be closed as delivered.
func (s DeliveryStatus) IsInTransit() bool {
	switch s.Normalized() {
	case StatusEnCamino, StatusOnRoute, StatusAsignado, StatusAssigned:
		return true
	default:
		return false
	}
}

type Delivery struct {
	ID           string
	OrderID      string
	RiderID      string
	Status       DeliveryStatus
	Destination  *Coordinate
	Location     *Coordinate
	CustomerName string
	Address      string
}

// Assignment is the payload of an assign request. Exactly one of OrderID and
// DeliveryID identifies what is being assigned.
type Assignment struct {
	OrderID    string
	DeliveryID string
	RiderID    string
}

type AssignmentResult struct {
	DeliveryID string
	OrderID    string
	RiderID    string
}

func ReadyToAssign(deliveries []Delivery) []Delivery {
	ready := make([]Delivery, 0, len(deliveries))
	for _, d := range deliveries {
		if d.Status.IsReadyToAssign() {
			ready = append(ready, d)
		}
	}
	return ready
}
