package pages

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ailabs-id/kasir-dashboard/internal/branches"
	"github.com/ailabs-id/kasir-dashboard/internal/central"
	"github.com/ailabs-id/kasir-dashboard/internal/domain/service"
	"github.com/ailabs-id/kasir-dashboard/internal/models"
)

// Fetch ceilings carried over from the POS sync endpoints: a branch never
// holds more than a few hundred open tickets, so these are generous.
const (
	serviceLimit  = 1000
	customerLimit = 5000
	itemLimit     = 10000
)

// ServicesSnapshot is one whole-page view of a branch's service tickets,
// already joined. A new snapshot wholly replaces the previous one.
type ServicesSnapshot struct {
	Branch   branches.Branch
	Services []service.Enriched
}

type LoadServicesPage struct {
	client *central.Client
}

func NewLoadServicesPage(client *central.Client) *LoadServicesPage {
	return &LoadServicesPage{client: client}
}

// Execute fans out the three resource fetches, waits for all of them, and
// joins the results. The first failure cancels the remaining fetches and
// becomes the single page error; partial data is never returned.
func (uc *LoadServicesPage) Execute(ctx context.Context, branch branches.Branch) (*ServicesSnapshot, error) {
	var (
		services  []models.ServiceRecord
		customers []models.CustomerRecord
		items     []models.ServiceItemRecord
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		services, err = uc.client.Services(ctx, branch.ID(), serviceLimit)
		return err
	})
	g.Go(func() error {
		var err error
		customers, err = uc.client.Customers(ctx, branch.ID(), customerLimit)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = uc.client.ServiceItems(ctx, branch.ID(), itemLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load services page for %s: %w", branch.Name, err)
	}

	return &ServicesSnapshot{
		Branch:   branch,
		Services: service.Enrich(services, customers, items),
	}, nil
}
