package dto

import (
	"github.com/ailabs-id/kasir-dashboard/internal/format"
	"github.com/ailabs-id/kasir-dashboard/internal/models"
)

type ProductRowDTO struct {
	Name     string `json:"name"`
	SKU      string `json:"sku"`
	Price    string `json:"price"`
	Stock    int    `json:"stock"`
	MinStock int    `json:"min_stock"`
	LowStock bool   `json:"low_stock"`
}

func NewProductRows(products []models.ProductRecord) []ProductRowDTO {
	out := make([]ProductRowDTO, 0, len(products))
	for _, p := range products {
		sku := p.SKU
		if sku == "" {
			sku = "-"
		}
		out = append(out, ProductRowDTO{
			Name:     p.Name,
			SKU:      sku,
			Price:    format.Currency(p.Price),
			Stock:    p.Stock,
			MinStock: p.MinStock,
			LowStock: p.LowStock(),
		})
	}
	return out
}
