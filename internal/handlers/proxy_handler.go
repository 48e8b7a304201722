package handlers

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// ProxyHandler is the older per-branch tunnel variant: instead of the
// central API, each branch POS exposes its own API through a tunnel at
// https://<subdomain>.<domain>. The dashboard forwards the request and
// streams the JSON back; any failure collapses to one 503.
type ProxyHandler struct {
	domain string
	client *http.Client
}

func NewProxyHandler(domain string, timeout time.Duration) *ProxyHandler {
	return &ProxyHandler{
		domain: domain,
		client: &http.Client{Timeout: timeout},
	}
}

func tunnelURL(subdomain, domain, path, rawQuery string) string {
	u := fmt.Sprintf("https://%s.%s/api/%s", subdomain, domain, path)
	if rawQuery != "" {
		u += "?" + rawQuery
	}
	return u
}

func (h *ProxyHandler) Forward(c *gin.Context) {
	subdomain := c.Param("subdomain")
	path := strings.TrimPrefix(c.Param("path"), "/")

	if subdomain == "" || path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "branch subdomain and resource path are required"})
		return
	}

	target := tunnelURL(subdomain, h.domain, path, c.Request.URL.RawQuery)

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, target, nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resource path"})
		return
	}
	req.Header.Set("Bypass-Tunnel-Reminder", "true")

	resp, err := h.client.Do(req)
	if err != nil {
		log.Printf("proxy: %s/%s: %v", subdomain, path, err)
		h.unreachable(c)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("proxy: %s/%s: upstream status %d", subdomain, path, resp.StatusCode)
		h.unreachable(c)
		return
	}

	c.Header("Content-Type", "application/json")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, resp.Body); err != nil {
		log.Printf("proxy: %s/%s: copy: %v", subdomain, path, err)
	}
}

func (h *ProxyHandler) unreachable(c *gin.Context) {
	c.JSON(http.StatusServiceUnavailable, gin.H{
		"error": "failed to reach the branch server, or the branch is offline",
	})
}
