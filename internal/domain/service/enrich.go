package service

import "github.com/ailabs-id/kasir-dashboard/internal/models"

// Enriched is a service ticket denormalized for display: the raw record
// plus its owner (nil when no customer matched) and its line items in
// fetch order. It is derived on every load and never persisted.
type Enriched struct {
	models.ServiceRecord
	Customer *models.CustomerRecord
	Items    []models.ServiceItemRecord
}

// TotalCost sums the line items; a ticket without items falls back to the
// flat total_cost field from the central API.
func (e Enriched) TotalCost() float64 {
	if len(e.Items) == 0 {
		return e.ServiceRecord.TotalCost
	}
	var total float64
	for _, it := range e.Items {
		total += it.Subtotal()
	}
	return total
}

// CustomerName returns the owner's name or the empty string.
func (e Enriched) CustomerName() string {
	if e.Customer == nil {
		return ""
	}
	return e.Customer.Name
}

// Enrich joins services to their customers and line items. It is total:
// one Enriched per input service, in input order, and missing relations
// degrade to a nil customer or an empty item list, never an error.
// Duplicate customer join keys resolve last-write-wins.
func Enrich(
	services []models.ServiceRecord,
	customers []models.CustomerRecord,
	items []models.ServiceItemRecord,
) []Enriched {

	customerByID := make(map[int]models.CustomerRecord, len(customers))
	for _, c := range customers {
		customerByID[c.LocalID] = c
	}

	itemsByService := make(map[int][]models.ServiceItemRecord)
	for _, it := range items {
		itemsByService[it.ServiceID] = append(itemsByService[it.ServiceID], it)
	}

	out := make([]Enriched, 0, len(services))
	for _, s := range services {
		e := Enriched{ServiceRecord: s}

		if c, ok := customerByID[s.CustomerID]; ok {
			e.Customer = &c
		}
		if its, ok := itemsByService[s.LocalID]; ok {
			e.Items = its
		} else {
			e.Items = []models.ServiceItemRecord{}
		}

		out = append(out, e)
	}
	return out
}
