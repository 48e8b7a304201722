package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/ailabs-id/kasir-dashboard/internal/branches"
	"github.com/ailabs-id/kasir-dashboard/internal/httperr"
	"github.com/ailabs-id/kasir-dashboard/internal/hub"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The dashboard UI is served from another origin in development.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type LiveHandler struct {
	registry *branches.Registry
	hub      *hub.Hub
}

func NewLiveHandler(registry *branches.Registry, h *hub.Hub) *LiveHandler {
	return &LiveHandler{registry: registry, hub: h}
}

// Status reports the upstream channel state for the UI indicator dot.
func (h *LiveHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": h.hub.Status().String()})
}

// Events upgrades the request to a websocket and streams data_updated
// events for the branch the session is viewing. Events for other
// branches never reach this session.
func (h *LiveHandler) Events(c *gin.Context) {
	branch, ok := h.registry.Resolve(c.Query("branch"))
	if !ok {
		httperr.NotFound(c, "branch_not_found", "no branch is configured under that name")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("live: upgrade: %v", err)
		return
	}
	defer conn.Close()

	id, events := h.hub.Subscribe(branch.ID())
	defer h.hub.Unsubscribe(id)

	// Reader loop only to notice the client going away.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case u, ok := <-events:
			if !ok {
				return
			}
			if err := conn.WriteJSON(u); err != nil {
				return
			}
		case <-closed:
			return
		}
	}
}
