package dto

import (
	"encoding/json"
	"time"

	"console/internal/pkg/surface"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
	Backend string  `json:"backend"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	TenantID string `json:"tenant_id,omitempty"`
}

type LoginResponse struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email,omitempty"`
	Role      string     `json:"role"`
	TenantID  string     `json:"tenant_id"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Rider struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	Available bool   `json:"available"`
}

type RidersResponse struct {
	Riders    []Rider    `json:"riders"`
	Loading   bool       `json:"loading"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type Delivery struct {
	ID           string      `json:"id"`
	OrderID      string      `json:"order_id,omitempty"`
	RiderID      string      `json:"rider_id,omitempty"`
	Status       string      `json:"status"`
	Destination  *Coordinate `json:"destination,omitempty"`
	Location     *Coordinate `json:"location,omitempty"`
	CustomerName string      `json:"customer_name,omitempty"`
	Address      string      `json:"address,omitempty"`
}

type DeliveriesResponse struct {
	Deliveries []Delivery `json:"deliveries"`
	Loading    bool       `json:"loading"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

type SelectionRequest struct {
	DeliveryID string `json:"delivery_id,omitempty"`
	RiderID    string `json:"rider_id,omitempty"`
}

type Selection struct {
	DeliveryID  string      `json:"delivery_id,omitempty"`
	OrderID     string      `json:"order_id,omitempty"`
	TrackingID  string      `json:"tracking_id,omitempty"`
	RiderID     string      `json:"rider_id,omitempty"`
	Destination *Coordinate `json:"destination,omitempty"`
}

// AssignRequest mirrors the backend payload: id_order for the ready-to-assign
// form, id_delivery for a delivery card.
type AssignRequest struct {
	OrderID    string `json:"id_order,omitempty"`
	DeliveryID string `json:"id_delivery,omitempty"`
	RiderID    string `json:"id_staff"`
}

type AssignResponse struct {
	DeliveryID string `json:"id_delivery,omitempty"`
	OrderID    string `json:"id_order,omitempty"`
	RiderID    string `json:"id_staff"`
}

type StatusRequest struct {
	Status string `json:"status"`
}

// LocationRequest accepts lat/lng as JSON numbers or numeric strings.
type LocationRequest struct {
	DeliveryID string      `json:"id_delivery"`
	Lat        json.Number `json:"lat"`
	Lng        json.Number `json:"lng"`
}

type TrackPoint struct {
	Lat float64    `json:"lat"`
	Lng float64    `json:"lng"`
	At  *time.Time `json:"at,omitempty"`
}

type Track struct {
	DeliveryID string       `json:"delivery_id"`
	Points     []TrackPoint `json:"points"`
}

type SimulationRequest struct {
	DeliveryID string `json:"delivery_id,omitempty"`
}

type SimulationStatus struct {
	Simulating bool `json:"simulating"`
	Progress   int  `json:"progress"`
}

type GPSRequest struct {
	DeliveryID string `json:"delivery_id"`
}

type GPSFields struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

type GPSStatus struct {
	Active     bool       `json:"active"`
	DeliveryID string     `json:"delivery_id,omitempty"`
	Fields     GPSFields  `json:"fields"`
	Accuracy   float64    `json:"accuracy,omitempty"`
	FixAt      *time.Time `json:"fix_at,omitempty"`
}

type ETA struct {
	DistanceMeters float64 `json:"distance_meters"`
	Seconds        float64 `json:"seconds"`
	Text           string  `json:"text"`
}

type Tracking struct {
	DeliveryID  string      `json:"delivery_id,omitempty"`
	Position    *Coordinate `json:"position,omitempty"`
	Destination *Coordinate `json:"destination,omitempty"`
	Origin      *Coordinate `json:"origin,omitempty"`
	TrackPoints int         `json:"track_points"`
	ETA         *ETA        `json:"eta,omitempty"`
	RenderedAt  *time.Time  `json:"rendered_at,omitempty"`
}

type MapResponse struct {
	Map        surface.FeatureCollection `json:"map"`
	Tracking   Tracking                  `json:"tracking"`
	Simulation SimulationStatus          `json:"simulation"`
}

type JournalLocation struct {
	ID        int64     `json:"id"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Accuracy  float64   `json:"accuracy,omitempty"`
	Source    string    `json:"source"`
	Delivered bool      `json:"delivered"`
	At        time.Time `json:"at"`
}

type JournalSimulation struct {
	ID          string     `json:"id"`
	Origin      Coordinate `json:"origin"`
	Destination Coordinate `json:"destination"`
	Points      int        `json:"points"`
	Outcome     string     `json:"outcome"`
	StartedAt   time.Time  `json:"started_at"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`
}

type JournalResponse struct {
	DeliveryID  string              `json:"delivery_id"`
	Locations   []JournalLocation   `json:"locations"`
	Simulations []JournalSimulation `json:"simulations"`
}
