package dto

import "github.com/ailabs-id/kasir-dashboard/internal/models"

type CustomerRowDTO struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func NewCustomerRows(customers []models.CustomerRecord) []CustomerRowDTO {
	out := make([]CustomerRowDTO, 0, len(customers))
	for _, c := range customers {
		out = append(out, CustomerRowDTO{
			Name:    c.Name,
			Phone:   orDash(c.Phone),
			Address: orDash(c.Address),
		})
	}
	return out
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
