package pages

import (
	"context"
	"fmt"

	"github.com/ailabs-id/kasir-dashboard/internal/branches"
	"github.com/ailabs-id/kasir-dashboard/internal/central"
	"github.com/ailabs-id/kasir-dashboard/internal/models"
)

const customerPageLimit = 1000

type CustomersSnapshot struct {
	Branch    branches.Branch
	Customers []models.CustomerRecord
}

type LoadCustomersPage struct {
	client *central.Client
}

func NewLoadCustomersPage(client *central.Client) *LoadCustomersPage {
	return &LoadCustomersPage{client: client}
}

func (uc *LoadCustomersPage) Execute(ctx context.Context, branch branches.Branch) (*CustomersSnapshot, error) {
	customers, err := uc.client.Customers(ctx, branch.ID(), customerPageLimit)
	if err != nil {
		return nil, fmt.Errorf("load customers page for %s: %w", branch.Name, err)
	}

	return &CustomersSnapshot{Branch: branch, Customers: customers}, nil
}
