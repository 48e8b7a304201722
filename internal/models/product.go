package models

type ProductRecord struct {
	ID       int     `json:"id"`
	SKU      string  `json:"sku"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	MinStock int     `json:"minStock"`
}

// LowStock reports whether the product is at or below its minimum
// stock threshold.
func (p ProductRecord) LowStock() bool {
	return p.Stock <= p.MinStock
}
