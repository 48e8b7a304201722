package dto

import (
	"github.com/ailabs-id/kasir-dashboard/internal/format"
	"github.com/ailabs-id/kasir-dashboard/internal/models"
	"github.com/ailabs-id/kasir-dashboard/internal/usecase/pages"
)

type ReportsPageDTO struct {
	Summary        SummaryDTO       `json:"summary"`
	SalesHistory   []TransactionDTO `json:"sales_history"`
	ServiceHistory []TransactionDTO `json:"service_history"`
}

type SummaryDTO struct {
	TotalRevenue      string `json:"total_revenue"`
	TotalProfit       string `json:"total_profit"`
	TotalTransactions int    `json:"total_transactions"`
}

type TransactionDTO struct {
	ID           string `json:"id"`
	CustomerName string `json:"customer_name"`
	Date         string `json:"date"`
	TotalAmount  string `json:"total_amount"`
	TotalProfit  string `json:"total_profit"`
}

func NewReportsPage(snap *pages.ReportsSnapshot) ReportsPageDTO {
	return ReportsPageDTO{
		Summary: SummaryDTO{
			TotalRevenue:      format.Currency(snap.Summary.TotalRevenue),
			TotalProfit:       format.Currency(snap.Summary.TotalProfit),
			TotalTransactions: snap.Summary.TotalTransactions,
		},
		SalesHistory:   newTransactions(snap.SalesHistory),
		ServiceHistory: newTransactions(snap.ServiceHist),
	}
}

func newTransactions(list []models.TransactionRecord) []TransactionDTO {
	out := make([]TransactionDTO, 0, len(list))
	for _, t := range list {
		name := t.CustomerName
		if name == "" {
			name = "Pelanggan"
		}
		out = append(out, TransactionDTO{
			ID:           t.ID,
			CustomerName: name,
			Date:         format.DateTime(t.Date),
			TotalAmount:  format.Currency(t.TotalAmount),
			TotalProfit:  format.Currency(t.TotalProfit),
		})
	}
	return out
}
