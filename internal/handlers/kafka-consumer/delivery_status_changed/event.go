package delivery_status_changed

type statusChangedEvent struct {
	DeliveryID string `json:"delivery_id"`
	OrderID    string `json:"order_id"`
	Status     string `json:"status"`
	TenantID   string `json:"tenant_id"`
}
