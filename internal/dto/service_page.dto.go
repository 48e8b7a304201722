package dto

import (
	"github.com/ailabs-id/kasir-dashboard/internal/domain/service"
	"github.com/ailabs-id/kasir-dashboard/internal/format"
)

// ServiceRowDTO is one table row of the services page, with money and
// dates already rendered for display.
type ServiceRowDTO struct {
	IDService    string           `json:"id_service"`
	CustomerName string           `json:"customer_name"`
	Status       string           `json:"status"`
	StatusLabel  string           `json:"status_label"`
	CreatedAt    string           `json:"created_at"`
	TotalCost    string           `json:"total_cost"`
	Detail       ServiceDetailDTO `json:"detail"`
}

// ServiceDetailDTO backs the detail modal.
type ServiceDetailDTO struct {
	Items []ServiceItemDTO `json:"items"`
	Notes string           `json:"notes,omitempty"`
}

type ServiceItemDTO struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Subtotal    string `json:"subtotal"`
}

func NewServiceRow(e service.Enriched) ServiceRowDTO {
	name := e.CustomerName()
	if name == "" {
		name = "N/A"
	}

	items := make([]ServiceItemDTO, 0, len(e.Items))
	for _, it := range e.Items {
		items = append(items, ServiceItemDTO{
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   format.Currency(it.Price),
			Subtotal:    format.Currency(it.Subtotal()),
		})
	}

	st := service.Status(e.Status)
	return ServiceRowDTO{
		IDService:    e.IDService,
		CustomerName: name,
		Status:       e.Status,
		StatusLabel:  st.Display(),
		CreatedAt:    format.DateTime(e.CreatedAt),
		TotalCost:    format.Currency(e.TotalCost()),
		Detail: ServiceDetailDTO{
			Items: items,
			Notes: e.Notes,
		},
	}
}

func NewServiceRows(list []service.Enriched) []ServiceRowDTO {
	out := make([]ServiceRowDTO, 0, len(list))
	for _, e := range list {
		out = append(out, NewServiceRow(e))
	}
	return out
}
