package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ailabs-id/kasir-dashboard/internal/branches"
	"github.com/ailabs-id/kasir-dashboard/internal/central"
	"github.com/ailabs-id/kasir-dashboard/internal/config"
	"github.com/ailabs-id/kasir-dashboard/internal/handlers"
	"github.com/ailabs-id/kasir-dashboard/internal/hub"
	"github.com/ailabs-id/kasir-dashboard/internal/middleware"
	"github.com/ailabs-id/kasir-dashboard/internal/usecase/pages"
)

func RegisterRoutes(r *gin.Engine, cfg *config.Config, eventHub *hub.Hub) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	registry := branches.NewRegistry(cfg.Branches)
	client := central.NewClient(cfg.CentralAPIURL, cfg.CentralAPIKey, cfg.FetchTimeout)

	// ======================================================
	// 🧠 USE CASES — PAGE LOADERS
	// ======================================================
	loadServices := pages.NewLoadServicesPage(client)
	loadInventory := pages.NewLoadInventoryPage(client)
	loadCustomers := pages.NewLoadCustomersPage(client)
	loadReports := pages.NewLoadReportsPage(client)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	branchesHandler := handlers.NewBranchesHandler(registry)
	pagesHandler := handlers.NewPagesHandler(
		registry,
		loadServices,
		loadInventory,
		loadCustomers,
		loadReports,
	)
	liveHandler := handlers.NewLiveHandler(registry, eventHub)
	proxyHandler := handlers.NewProxyHandler(cfg.TunnelDomain, cfg.FetchTimeout)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/branches", branchesHandler.List)

		pagesAPI := api.Group("/pages/:branch")
		{
			pagesAPI.GET("/services", pagesHandler.Services)
			pagesAPI.GET("/inventory", pagesHandler.Inventory)
			pagesAPI.GET("/customers", pagesHandler.Customers)
			pagesAPI.GET("/reports", pagesHandler.Reports)
		}

		// ------------------------------
		// LIVE UPDATES
		// ------------------------------
		api.GET("/live/status", liveHandler.Status)
		api.GET("/events", liveHandler.Events)

		// ------------------------------
		// LEGACY TUNNEL PROXY
		// ------------------------------
		api.GET("/branch/:subdomain/*path", proxyHandler.Forward)
	}
}
