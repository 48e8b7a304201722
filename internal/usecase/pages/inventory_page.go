package pages

import (
	"context"
	"fmt"

	"github.com/ailabs-id/kasir-dashboard/internal/branches"
	"github.com/ailabs-id/kasir-dashboard/internal/central"
	"github.com/ailabs-id/kasir-dashboard/internal/models"
)

const productLimit = 1000

type InventorySnapshot struct {
	Branch   branches.Branch
	Products []models.ProductRecord
}

type LoadInventoryPage struct {
	client *central.Client
}

func NewLoadInventoryPage(client *central.Client) *LoadInventoryPage {
	return &LoadInventoryPage{client: client}
}

func (uc *LoadInventoryPage) Execute(ctx context.Context, branch branches.Branch) (*InventorySnapshot, error) {
	products, err := uc.client.Products(ctx, branch.ID(), productLimit)
	if err != nil {
		return nil, fmt.Errorf("load inventory page for %s: %w", branch.Name, err)
	}

	return &InventorySnapshot{Branch: branch, Products: products}, nil
}
