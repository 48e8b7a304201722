package models

// ServiceItemRecord is one line item of a service ticket. ServiceID refers
// to the owning ServiceRecord's local_id.
type ServiceItemRecord struct {
	LocalID     int     `json:"local_id"`
	ServiceID   int     `json:"service_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

func (it ServiceItemRecord) Subtotal() float64 {
	return it.Price * float64(it.Quantity)
}
