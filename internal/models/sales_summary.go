package models

type SalesSummary struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalProfit       float64 `json:"totalProfit"`
	TotalTransactions int     `json:"totalTransactions"`
}
