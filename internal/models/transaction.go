package models

import (
	"strings"
	"time"
)

// TransactionRecord is one settled transaction from a branch POS. The id
// prefix tells cash sales ("SLS-") apart from service settlements ("SVC-").
type TransactionRecord struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customerName"`
	Date         time.Time `json:"date"`
	TotalAmount  float64   `json:"totalAmount"`
	TotalProfit  float64   `json:"totalProfit"`
}

func (t TransactionRecord) IsSale() bool {
	return strings.HasPrefix(t.ID, "SLS-")
}

func (t TransactionRecord) IsService() bool {
	return strings.HasPrefix(t.ID, "SVC-")
}
