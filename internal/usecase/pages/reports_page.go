package pages

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ailabs-id/kasir-dashboard/internal/branches"
	"github.com/ailabs-id/kasir-dashboard/internal/central"
	"github.com/ailabs-id/kasir-dashboard/internal/models"
)

const transactionLimit = 1000

// ReportsSnapshot holds the sales summary plus the period's transactions
// split into cash sales and service settlements by id prefix.
type ReportsSnapshot struct {
	Branch       branches.Branch
	Summary      models.SalesSummary
	SalesHistory []models.TransactionRecord
	ServiceHist  []models.TransactionRecord
}

type LoadReportsPage struct {
	client *central.Client
}

func NewLoadReportsPage(client *central.Client) *LoadReportsPage {
	return &LoadReportsPage{client: client}
}

func (uc *LoadReportsPage) Execute(ctx context.Context, branch branches.Branch, rng central.DateRange) (*ReportsSnapshot, error) {
	var (
		summary      models.SalesSummary
		transactions []models.TransactionRecord
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		summary, err = uc.client.SalesSummary(ctx, branch.ID(), rng)
		return err
	})
	g.Go(func() error {
		var err error
		transactions, err = uc.client.Transactions(ctx, branch.ID(), rng, transactionLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load reports page for %s: %w", branch.Name, err)
	}

	snap := &ReportsSnapshot{Branch: branch, Summary: summary}
	for _, t := range transactions {
		switch {
		case t.IsSale():
			snap.SalesHistory = append(snap.SalesHistory, t)
		case t.IsService():
			snap.ServiceHist = append(snap.ServiceHist, t)
		}
	}
	return snap, nil
}
