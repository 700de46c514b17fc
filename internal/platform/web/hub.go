package web

import (
	"encoding/json"
	"sync"

	"github.com/vovakirdan/waitroom/internal/lifecycle"
)

// SessionView is the JSON shape of a session.
type SessionView struct {
	Game      string `json:"game"`
	Status    string `json:"status"`
	Countdown *int   `json:"countdown"`
	Score     int    `json:"score"`
}

// ViewOf converts a lifecycle session for the wire.
func ViewOf(s lifecycle.Session) SessionView {
	s = s.Clone()
	return SessionView{
		Game:      s.Game.String(),
		Status:    s.Status.String(),
		Countdown: s.Countdown,
		Score:     s.Score,
	}
}

type message struct {
	Type    string      `json:"type"`
	Session SessionView `json:"session"`
}

// clientBuffer bounds how many updates a slow client may lag behind before
// updates to it are dropped.
const clientBuffer = 16

type client struct {
	send chan []byte
}

// Hub keeps the latest snapshot published by the lifecycle controller and
// fans session changes out to websocket clients. Publish runs on the Bubble
// Tea goroutine; everything else on HTTP goroutines.
type Hub struct {
	mu      sync.RWMutex
	snap    lifecycle.Snapshot
	clients map[*client]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*client]struct{})}
}

// Publish stores a snapshot. Clients are only notified when the session
// itself changed, not on every frame.
func (h *Hub) Publish(s lifecycle.Snapshot) {
	s.Session = s.Session.Clone()

	h.mu.Lock()
	defer h.mu.Unlock()
	changed := !h.snap.Session.Equal(s.Session)
	h.snap = s
	if !changed || len(h.clients) == 0 {
		return
	}

	data, err := json.Marshal(message{Type: "session", Session: ViewOf(s.Session)})
	if err != nil {
		return
	}
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
		}
	}
}

// Snapshot returns the latest snapshot.
func (h *Hub) Snapshot() lifecycle.Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	s := h.snap
	s.Session = s.Session.Clone()
	return s
}

// Clients returns the number of connected websocket clients.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// subscribe registers a client and returns it with the current session
// encoded, so no change can slip between the two.
func (h *Hub) subscribe() (*client, []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c := &client{send: make(chan []byte, clientBuffer)}
	h.clients[c] = struct{}{}
	data, _ := json.Marshal(message{Type: "session", Session: ViewOf(h.snap.Session)})
	return c, data
}

func (h *Hub) unsubscribe(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
}
