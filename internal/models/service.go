package models

import "time"

// ServiceRecord is a read-only copy of one service ticket as the central
// API emits it. `local_id` is the join key used by ServiceItemRecord.
type ServiceRecord struct {
	LocalID    int       `json:"local_id"`
	IDService  string    `json:"id_service"`
	CustomerID int       `json:"customer_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	TotalCost  float64   `json:"total_cost"`
	Notes      string    `json:"notes"`
}
