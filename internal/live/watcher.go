package live

import (
	"encoding/json"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// ===============================
// Connection Status
// ===============================

type Status int32

const (
	StatusUninstantiated Status = iota
	StatusConnecting
	StatusOpen
	StatusClosed
)

func (s Status) String() string {
	switch s {
	case StatusConnecting:
		return "connecting"
	case StatusOpen:
		return "open"
	case StatusClosed:
		return "closed"
	default:
		return "uninstantiated"
	}
}

// Update is the only inbound message the central server sends: data for
// some branch changed and viewers of it should reload.
type Update struct {
	Event    string `json:"event"`
	BranchID string `json:"branch_id"`
}

const eventDataUpdated = "data_updated"

// Watcher keeps one long-lived websocket connection to the central
// server. On dial failure or mid-session drop it retries at a fixed
// interval, forever, one attempt at a time — the dashboard must come
// back whenever the server does. Valid updates go out on Updates();
// malformed frames are logged and dropped, never fatal.
type Watcher struct {
	url      string
	interval time.Duration

	status  atomic.Int32
	updates chan Update

	mu   sync.Mutex
	conn *websocket.Conn

	done     chan struct{}
	stopOnce sync.Once
}

func NewWatcher(url string, interval time.Duration) *Watcher {
	return &Watcher{
		url:      url,
		interval: interval,
		updates:  make(chan Update, 100),
		done:     make(chan struct{}),
	}
}

func (w *Watcher) Status() Status {
	return Status(w.status.Load())
}

func (w *Watcher) Updates() <-chan Update {
	return w.updates
}

func (w *Watcher) Start() {
	go w.run()
}

// Stop ends the reconnect loop and closes any open connection.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		w.mu.Lock()
		if w.conn != nil {
			w.conn.Close()
		}
		w.mu.Unlock()
	})
}

// run owns the updates channel: it closes it on exit so consumers
// ranging over Updates() terminate with the watcher.
func (w *Watcher) run() {
	defer close(w.updates)

	for {
		select {
		case <-w.done:
			w.status.Store(int32(StatusClosed))
			return
		default:
		}

		w.status.Store(int32(StatusConnecting))

		conn, _, err := websocket.DefaultDialer.Dial(w.url, nil)
		if err != nil {
			log.Printf("live: connect %s: %v", w.url, err)
			if !w.sleep() {
				w.status.Store(int32(StatusClosed))
				return
			}
			continue
		}

		w.mu.Lock()
		w.conn = conn
		w.mu.Unlock()

		w.status.Store(int32(StatusOpen))
		w.readLoop(conn)

		w.mu.Lock()
		w.conn = nil
		w.mu.Unlock()
		conn.Close()

		select {
		case <-w.done:
			w.status.Store(int32(StatusClosed))
			return
		default:
			w.status.Store(int32(StatusClosed))
		}

		if !w.sleep() {
			return
		}
	}
}

// sleep waits one reconnect interval; false means Stop was called.
func (w *Watcher) sleep() bool {
	select {
	case <-w.done:
		return false
	case <-time.After(w.interval):
		return true
	}
}

func (w *Watcher) readLoop(conn *websocket.Conn) {
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			select {
			case <-w.done:
			default:
				log.Printf("live: connection dropped: %v", err)
			}
			return
		}

		var u Update
		if err := json.Unmarshal(raw, &u); err != nil {
			log.Printf("live: dropping malformed message: %v", err)
			continue
		}
		if u.Event != eventDataUpdated || u.BranchID == "" {
			log.Printf("live: dropping message with event %q", u.Event)
			continue
		}

		select {
		case w.updates <- u:
		default:
			// Consumer is behind; dropping an update only delays the next
			// reload until the following notification.
			log.Println("live: update queue full, dropping event")
		}
	}
}
