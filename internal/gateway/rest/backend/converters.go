package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"console/internal/entities"
)

// decodeList accepts either a bare JSON array or an object wrapping it under key.
func decodeList[T any](body []byte, key string) ([]T, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return []T{}, nil
	}

	if body[0] == '[' {
		var items []T
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
		}
		return items, nil
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	raw, ok := wrapped[key]
	if !ok || string(raw) == "null" {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidResponse, key, err)
	}
	return items, nil
}

func firstNonEmpty[T ~string](values ...T) T {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func toRiders(dtos []riderDTO) []entities.Rider {
	riders := make([]entities.Rider, 0, len(dtos))
	for _, d := range dtos {
		riders = append(riders, toRider(d))
	}
	return riders
}

func toRider(d riderDTO) entities.Rider {
	return entities.Rider{
		ID:     string(firstNonEmpty(d.IDStaff, d.ID)),
		Name:   firstNonEmpty(d.Nombre, d.Name),
		Status: entities.RiderStatusType(d.Status),
	}
}

func toDeliveries(dtos []deliveryDTO) []entities.Delivery {
	deliveries := make([]entities.Delivery, 0, len(dtos))
	for _, d := range dtos {
		deliveries = append(deliveries, toDelivery(d))
	}
	return deliveries
}

func toDelivery(d deliveryDTO) entities.Delivery {
	delivery := entities.Delivery{
		ID:           string(firstNonEmpty(d.IDDelivery, d.ID)),
		OrderID:      string(firstNonEmpty(d.IDOrder, d.OrderID)),
		RiderID:      string(firstNonEmpty(d.IDStaff, d.RiderID)),
		Status:       entities.DeliveryStatus(firstNonEmpty(d.Status, d.Estado)),
		CustomerName: firstNonEmpty(d.CustomerName, d.NombreCliente),
		Address:      firstNonEmpty(d.Direccion, d.DeliveryAddress),
	}

	lat := pickFloat(d.DestLat, d.DestLatCamel)
	lng := pickFloat(d.DestLng, d.DestLngCamel)
	if lat.Set && lng.Set {
		dest := entities.Coordinate{Lat: lat.Value, Lng: lng.Value}
		if dest.Valid() {
			delivery.Destination = &dest
		}
	}

	if d.Location != nil && d.Location.Lat.Set && d.Location.Lng.Set {
		loc := entities.Coordinate{Lat: d.Location.Lat.Value, Lng: d.Location.Lng.Value}
		if loc.Valid() {
			delivery.Location = &loc
		}
	}

	return delivery
}

func pickFloat(values ...flexFloat) flexFloat {
	for _, v := range values {
		if v.Set {
			return v
		}
	}
	return flexFloat{}
}

// toTrack keeps points with numeric lat/lng, ordered by timestamp ascending.
// Points without a parseable timestamp keep their relative position at the front.
func toTrack(deliveryID string, dtos []trackPointDTO) entities.Track {
	points := make([]entities.TrackPoint, 0, len(dtos))
	for _, p := range dtos {
		if !p.Lat.Set || !p.Lng.Set {
			continue
		}
		points = append(points, entities.TrackPoint{
			Coordinate: entities.Coordinate{Lat: p.Lat.Value, Lng: p.Lng.Value},
			At:         parseTimestamp(string(firstNonEmpty(p.TS, p.Timestamp, p.CreatedAt))),
		})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].At.Before(points[j].At)
	})

	return entities.Track{DeliveryID: deliveryID, Points: points}
}

// parseTimestamp understands RFC 3339 strings and unix epoch seconds or milliseconds.
func parseTimestamp(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		// anything past year 2286 in seconds is really milliseconds
		if n > 1e10 {
			return time.UnixMilli(int64(n)).UTC()
		}
		return time.Unix(int64(n), 0).UTC()
	}
	return time.Time{}
}

func toAssignmentResult(resp assignResponse, a entities.Assignment) entities.AssignmentResult {
	return entities.AssignmentResult{
		DeliveryID: string(firstNonEmpty(resp.IDDelivery, resp.DeliveryID, resp.ID, flexString(a.DeliveryID))),
		OrderID:    string(firstNonEmpty(resp.IDOrder, flexString(a.OrderID))),
		RiderID:    string(firstNonEmpty(resp.IDStaff, flexString(a.RiderID))),
	}
}

func toStaffUser(resp loginResponse) entities.StaffUser {
	return entities.StaffUser{
		ID:       string(firstNonEmpty(resp.IDStaff, flexString(resp.HeadersRequired["X-User-Id"]))),
		Email:    resp.HeadersRequired["X-User-Email"],
		Username: resp.User,
		Role:     entities.Role(resp.Role),
		TenantID: resp.TenantID,
		Token:    firstNonEmpty(resp.Token, resp.AccessToken),
	}
}
