package main

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"

	"github.com/ailabs-id/kasir-dashboard/internal/config"
	"github.com/ailabs-id/kasir-dashboard/internal/hub"
	"github.com/ailabs-id/kasir-dashboard/internal/live"
	"github.com/ailabs-id/kasir-dashboard/internal/routes"
)

func main() {

	cfg := config.Load()

	watcher := live.NewWatcher(wsURL(cfg), cfg.ReconnectInterval)
	watcher.Start()
	defer watcher.Stop()

	eventHub := hub.New(watcher)
	go eventHub.Run()

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, cfg, eventHub)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// wsURL derives the live channel address from the central base URL.
func wsURL(cfg *config.Config) string {
	base := cfg.CentralAPIURL
	switch {
	case strings.HasPrefix(base, "https://"):
		base = "wss://" + strings.TrimPrefix(base, "https://")
	case strings.HasPrefix(base, "http://"):
		base = "ws://" + strings.TrimPrefix(base, "http://")
	}
	return base + cfg.CentralWSPath
}
