package backend

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// flexString accepts a JSON string or number. The backend sends ids both ways.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(strings.TrimSpace(v))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		// objects, arrays, booleans: not an id
		return nil
	}
	*s = flexString(n.String())
	return nil
}

// flexFloat accepts a number or a numeric string; anything else leaves it unset.
type flexFloat struct {
	Value float64
	Set   bool
}

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return nil
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil
		}
		f.Value, f.Set = parsed, true
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return nil
	}
	f.Value, f.Set = v, true
	return nil
}

// strictFloat accepts only JSON numbers.
type strictFloat struct {
	Value float64
	Set   bool
}

func (f *strictFloat) UnmarshalJSON(b []byte) error {
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return nil
	}
	f.Value, f.Set = v, true
	return nil
}

type riderDTO struct {
	IDStaff flexString `json:"id_staff"`
	ID      flexString `json:"id"`
	Nombre  string     `json:"nombre"`
	Name    string     `json:"name"`
	Status  string     `json:"status"`
}

type locationDTO struct {
	Lat flexFloat `json:"lat"`
	Lng flexFloat `json:"lng"`
}

type deliveryDTO struct {
	IDDelivery      flexString   `json:"id_delivery"`
	ID              flexString   `json:"id"`
	IDOrder         flexString   `json:"id_order"`
	OrderID         flexString   `json:"order_id"`
	IDStaff         flexString   `json:"id_staff"`
	RiderID         flexString   `json:"rider_id"`
	Status          string       `json:"status"`
	Estado          string       `json:"estado"`
	DestLat         flexFloat    `json:"dest_lat"`
	DestLatCamel    flexFloat    `json:"destLat"`
	DestLng         flexFloat    `json:"dest_lng"`
	DestLngCamel    flexFloat    `json:"destLng"`
	CustomerName    string       `json:"customer_name"`
	NombreCliente   string       `json:"nombre_cliente"`
	Direccion       string       `json:"direccion"`
	DeliveryAddress string       `json:"delivery_address"`
	Location        *locationDTO `json:"location"`
}

type trackPointDTO struct {
	Lat       strictFloat `json:"lat"`
	Lng       strictFloat `json:"lng"`
	TS        flexString  `json:"ts"`
	Timestamp flexString  `json:"timestamp"`
	CreatedAt flexString  `json:"created_at"`
}

type assignRequest struct {
	OrderID    string `json:"id_order,omitempty"`
	DeliveryID string `json:"id_delivery,omitempty"`
	RiderID    string `json:"id_staff"`
}

type assignResponse struct {
	IDDelivery flexString `json:"id_delivery"`
	DeliveryID flexString `json:"delivery_id"`
	ID         flexString `json:"id"`
	IDOrder    flexString `json:"id_order"`
	IDStaff    flexString `json:"id_staff"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type locationRequest struct {
	DeliveryID string  `json:"id_delivery"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	TenantID string `json:"tenant_id,omitempty"`
}

type loginResponse struct {
	Token           string            `json:"token"`
	AccessToken     string            `json:"access_token"`
	Role            string            `json:"role"`
	TenantID        string            `json:"tenant_id"`
	IDStaff         flexString        `json:"id_staff"`
	User            string            `json:"user"`
	HeadersRequired map[string]string `json:"headers_required"`
}

// errorBody is what the backend sends with a non-2xx status, when it sends JSON.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Detail  string `json:"detail"`
}
