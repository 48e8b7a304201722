package hub

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/ailabs-id/kasir-dashboard/internal/live"
)

// Hub fans central data_updated events out to the browser sessions
// currently viewing the matching branch. Sessions for other branches
// receive nothing. A session that cannot keep up is skipped rather than
// blocking the broadcast.
type Hub struct {
	watcher *live.Watcher

	mu       sync.Mutex
	sessions map[uuid.UUID]*session
}

type session struct {
	branchID string
	events   chan live.Update
}

const sessionBuffer = 8

func New(watcher *live.Watcher) *Hub {
	return &Hub{
		watcher:  watcher,
		sessions: make(map[uuid.UUID]*session),
	}
}

// Run consumes watcher updates until the watcher stops. Call in a
// goroutine.
func (h *Hub) Run() {
	for u := range h.watcher.Updates() {
		h.Broadcast(u)
	}
}

// Subscribe registers a session pinned to one branch id and returns its
// event stream. The channel is closed on Unsubscribe.
func (h *Hub) Subscribe(branchID string) (uuid.UUID, <-chan live.Update) {
	s := &session{
		branchID: branchID,
		events:   make(chan live.Update, sessionBuffer),
	}

	id := uuid.New()
	h.mu.Lock()
	h.sessions[id] = s
	h.mu.Unlock()

	return id, s.events
}

func (h *Hub) Unsubscribe(id uuid.UUID) {
	h.mu.Lock()
	s, ok := h.sessions[id]
	if ok {
		delete(h.sessions, id)
	}
	h.mu.Unlock()

	if ok {
		close(s.events)
	}
}

// Broadcast delivers an update to every session viewing its branch.
func (h *Hub) Broadcast(u live.Update) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, s := range h.sessions {
		if s.branchID != u.BranchID {
			continue
		}
		select {
		case s.events <- u:
		default:
			log.Printf("hub: session for %s is behind, skipping event", s.branchID)
		}
	}
}

// Status reports the upstream channel state for the UI indicator.
func (h *Hub) Status() live.Status {
	return h.watcher.Status()
}
