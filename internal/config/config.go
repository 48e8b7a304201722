package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ailabs-id/kasir-dashboard/internal/branches"
)

type Config struct {
	CentralAPIURL     string
	CentralAPIKey     string
	CentralWSPath     string
	TunnelDomain      string
	ServerPort        string
	FetchTimeout      time.Duration
	ReconnectInterval time.Duration
	Branches          []branches.Branch
}

func Load() *Config {
	return &Config{
		CentralAPIURL:     getEnv("CENTRAL_API_URL", "http://localhost:4000"),
		CentralAPIKey:     getEnv("CENTRAL_API_KEY", ""),
		CentralWSPath:     getEnv("CENTRAL_WS_PATH", "/ws"),
		TunnelDomain:      getEnv("TUNNEL_DOMAIN", "loca.lt"),
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		FetchTimeout:      getDuration("FETCH_TIMEOUT", 10*time.Second),
		ReconnectInterval: getDuration("RECONNECT_INTERVAL", 3*time.Second),
		Branches:          getBranches("BRANCHES"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("config: invalid %s %q, using %s", key, v, def)
		return def
	}
	return d
}

// getBranches parses the BRANCHES env var, a JSON array of
// {"name": ..., "subdomain": ...} objects. An empty or broken value
// yields an empty registry, not a startup failure.
func getBranches(key string) []branches.Branch {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}

	var out []branches.Branch
	if err := json.Unmarshal([]byte(v), &out); err != nil {
		log.Printf("config: invalid %s: %v", key, err)
		return nil
	}
	return out
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
