package models

// Alert is one detected leakage event. Rows in the leakage_alerts table are
// append-only; the same shape arrives over the ingress webhook, where every
// field is optional (the detector sends whatever it has).
type Alert struct {
	ID             int64   `json:"id,omitempty"`
	TripID         int64   `json:"trip_id,omitempty"`
	TruckID        string  `json:"truck_id,omitempty"`
	DriverID       string  `json:"driver_id,omitempty"`
	LeakageCostINR float64 `json:"leakage_cost_inr,omitempty"`
	AlertMessage   string  `json:"alert_message,omitempty"`
}

// AlertDigest summarizes the recent alert feed for the banner line.
type AlertDigest struct {
	ActiveAlerts int     `json:"active_alerts"`
	TotalLossINR float64 `json:"total_loss_inr"`
}

// IngressAck is returned by POST /new_alert.
type IngressAck struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ReceiptID string `json:"receipt_id,omitempty"`
}
