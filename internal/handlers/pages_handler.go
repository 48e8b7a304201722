package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ailabs-id/kasir-dashboard/internal/branches"
	"github.com/ailabs-id/kasir-dashboard/internal/central"
	"github.com/ailabs-id/kasir-dashboard/internal/domain/service"
	"github.com/ailabs-id/kasir-dashboard/internal/dto"
	"github.com/ailabs-id/kasir-dashboard/internal/httperr"
	"github.com/ailabs-id/kasir-dashboard/internal/httpresp"
	"github.com/ailabs-id/kasir-dashboard/internal/usecase/pages"
	"github.com/ailabs-id/kasir-dashboard/internal/viewstate"
)

// reloaderMap hands out one Reloader per page view, keyed by the view
// token the client sends, so reloads of one view supersede each other
// without touching other viewers of the same branch.
type reloaderMap[T any] struct {
	mu sync.Mutex
	m  map[string]*pages.Reloader[T]
}

func (rm *reloaderMap[T]) get(viewID string) *pages.Reloader[T] {
	rm.mu.Lock()
	defer rm.mu.Unlock()
	if rm.m == nil {
		rm.m = make(map[string]*pages.Reloader[T])
	}
	r, ok := rm.m[viewID]
	if !ok {
		r = pages.NewReloader[T]()
		rm.m[viewID] = r
	}
	return r
}

// runView executes a page load for one client view. When the client
// identifies its view with the `view` query param, a newer reload of
// that view cancels and supersedes an older in-flight one. Requests
// without a token load independently; their context already dies with
// the request, which abandons the fetch on unmount.
func runView[T any](c *gin.Context, rm *reloaderMap[T], load func(context.Context) (T, error)) (T, bool, error) {
	viewID := c.Query("view")
	if viewID == "" {
		out, err := load(c.Request.Context())
		return out, true, err
	}
	return rm.get(viewID).Run(c.Request.Context(), load)
}

type PagesHandler struct {
	registry *branches.Registry

	loadServices  *pages.LoadServicesPage
	loadInventory *pages.LoadInventoryPage
	loadCustomers *pages.LoadCustomersPage
	loadReports   *pages.LoadReportsPage

	servicesReloads  reloaderMap[*pages.ServicesSnapshot]
	inventoryReloads reloaderMap[*pages.InventorySnapshot]
	customersReloads reloaderMap[*pages.CustomersSnapshot]
	reportsReloads   reloaderMap[*pages.ReportsSnapshot]
}

func NewPagesHandler(
	registry *branches.Registry,
	loadServices *pages.LoadServicesPage,
	loadInventory *pages.LoadInventoryPage,
	loadCustomers *pages.LoadCustomersPage,
	loadReports *pages.LoadReportsPage,
) *PagesHandler {
	return &PagesHandler{
		registry:      registry,
		loadServices:  loadServices,
		loadInventory: loadInventory,
		loadCustomers: loadCustomers,
		loadReports:   loadReports,
	}
}

func (h *PagesHandler) resolveBranch(c *gin.Context) (branches.Branch, bool) {
	name := c.Param("branch")
	b, ok := h.registry.Resolve(name)
	if !ok {
		httperr.NotFound(c, "branch_not_found", "no branch is configured under that name")
		return branches.Branch{}, false
	}
	return b, true
}

// unavailable converts a failed page load into the single aggregate error
// the page renders. No partial data ever goes out with it.
func unavailable(c *gin.Context, branch branches.Branch, err error) {
	log.Printf("pages: %v", err)
	httperr.Unavailable(
		c,
		"central_unreachable",
		"failed to reach the central server for branch "+branch.Name,
	)
}

// ======================================================
// SERVICES
// ======================================================

func (h *PagesHandler) Services(c *gin.Context) {
	branch, ok := h.resolveBranch(c)
	if !ok {
		return
	}

	state := serviceViewState(c)

	snap, applied, err := runView(c, &h.servicesReloads, func(ctx context.Context) (*pages.ServicesSnapshot, error) {
		return h.loadServices.Execute(ctx, branch)
	})
	if !applied {
		c.Status(http.StatusNoContent)
		return
	}
	if err != nil {
		unavailable(c, branch, err)
		return
	}

	rows := dto.NewServiceRows(service.Select(snap.Services, state.Criteria()))
	httpresp.List(c, rows)
}

// serviceViewState rebuilds the page's view state from the query string
// through the same reducers the UI drives. An absent tab means no tab
// filter; the UI always sends the tab it is on.
func serviceViewState(c *gin.Context) viewstate.State {
	var state viewstate.State

	if tab := c.Query("tab"); tab != "" {
		state = state.WithTab(service.Tab(tab))
	}
	state = state.WithSearch(c.Query("search"))

	if raw := c.Query("statuses"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				state = state.ToggleStatus(service.Status(s))
			}
		}
	}
	return state
}

// ======================================================
// INVENTORY
// ======================================================

func (h *PagesHandler) Inventory(c *gin.Context) {
	branch, ok := h.resolveBranch(c)
	if !ok {
		return
	}

	snap, applied, err := runView(c, &h.inventoryReloads, func(ctx context.Context) (*pages.InventorySnapshot, error) {
		return h.loadInventory.Execute(ctx, branch)
	})
	if !applied {
		c.Status(http.StatusNoContent)
		return
	}
	if err != nil {
		unavailable(c, branch, err)
		return
	}

	httpresp.List(c, dto.NewProductRows(snap.Products))
}

// ======================================================
// CUSTOMERS
// ======================================================

func (h *PagesHandler) Customers(c *gin.Context) {
	branch, ok := h.resolveBranch(c)
	if !ok {
		return
	}

	snap, applied, err := runView(c, &h.customersReloads, func(ctx context.Context) (*pages.CustomersSnapshot, error) {
		return h.loadCustomers.Execute(ctx, branch)
	})
	if !applied {
		c.Status(http.StatusNoContent)
		return
	}
	if err != nil {
		unavailable(c, branch, err)
		return
	}

	httpresp.List(c, dto.NewCustomerRows(snap.Customers))
}

// ======================================================
// REPORTS
// ======================================================

func (h *PagesHandler) Reports(c *gin.Context) {
	branch, ok := h.resolveBranch(c)
	if !ok {
		return
	}

	rng, err := reportRange(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_range", err.Error())
		return
	}

	snap, applied, err := runView(c, &h.reportsReloads, func(ctx context.Context) (*pages.ReportsSnapshot, error) {
		return h.loadReports.Execute(ctx, branch, rng)
	})
	if !applied {
		c.Status(http.StatusNoContent)
		return
	}
	if err != nil {
		unavailable(c, branch, err)
		return
	}

	httpresp.OK(c, dto.NewReportsPage(snap))
}

// reportRange parses startDate/endDate query params; both default to
// today, matching the POS daily report.
func reportRange(c *gin.Context) (central.DateRange, error) {
	today := time.Now()
	rng := central.DateRange{Start: today, End: today}

	if raw := c.Query("startDate"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return central.DateRange{}, fmt.Errorf("startDate: %w", err)
		}
		rng.Start = t
	}
	if raw := c.Query("endDate"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return central.DateRange{}, fmt.Errorf("endDate: %w", err)
		}
		rng.End = t
	}
	return rng, nil
}
