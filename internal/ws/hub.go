package ws

import (
	"context"
	"sync"
	"time"

	"github.com/HerbHall/authdeck/internal/theme/transition"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"go.uber.org/zap"
)

// Client represents a connected WebSocket client.
type Client struct {
	id      string
	conn    *websocket.Conn
	profile string
	// transitions is set when the client can render the circular reveal.
	transitions bool
	send        chan Message
	logger      *zap.Logger
}

// Hub manages active WebSocket connections and fans messages out by profile.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	logger  *zap.Logger
}

// NewHub creates a new WebSocket hub.
func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		clients: make(map[*Client]struct{}),
		logger:  logger,
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()
	connectedClients.Set(float64(n))
	h.logger.Debug("websocket client connected",
		zap.String("client_id", c.id),
		zap.String("profile", c.profile),
		zap.Bool("transitions", c.transitions),
	)
}

// Unregister removes a client from the hub and closes its send channel.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	n := len(h.clients)
	h.mu.Unlock()
	connectedClients.Set(float64(n))
	h.logger.Debug("websocket client disconnected",
		zap.String("client_id", c.id),
		zap.String("profile", c.profile),
	)
}

// Broadcast sends a message to all connected clients.
func (h *Hub) Broadcast(msg Message) {
	h.send(msg, func(*Client) bool { return true })
}

// BroadcastTo sends a message to every client of one profile and returns how
// many clients accepted it.
func (h *Hub) BroadcastTo(profile string, msg Message) int {
	return h.send(msg, func(c *Client) bool { return c.profile == profile })
}

func (h *Hub) send(msg Message, match func(*Client) bool) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for c := range h.clients {
		if !match(c) {
			continue
		}
		select {
		case c.send <- msg:
			delivered++
		default:
			droppedMessages.Inc()
			h.logger.Warn("client send buffer full, dropping message",
				zap.String("client_id", c.id),
				zap.String("type", string(msg.Type)))
		}
	}
	return delivered
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ProfileClientCount returns the number of clients connected for a profile.
func (h *Hub) ProfileClientCount(profile string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for c := range h.clients {
		if c.profile == profile {
			n++
		}
	}
	return n
}

// Animator returns the reveal renderer of a profile: the profile's clients
// that announced transition support.
func (h *Hub) Animator(profile string) transition.Animator {
	return &profileAnimator{hub: h, profile: profile}
}

type profileAnimator struct {
	hub     *Hub
	profile string
}

func (a *profileAnimator) Supported() bool {
	a.hub.mu.RLock()
	defer a.hub.mu.RUnlock()
	for c := range a.hub.clients {
		if c.profile == a.profile && c.transitions {
			return true
		}
	}
	return false
}

// Reveal reports transition.ErrUnsupported when no capable client took the
// message, so the caller falls back to an instant switch.
func (a *profileAnimator) Reveal(_ context.Context, r transition.Reveal) error {
	msg := Message{
		Type:      MessageReveal,
		Profile:   a.profile,
		Timestamp: time.Now().UTC(),
		Data:      revealData(r),
	}
	n := a.hub.send(msg, func(c *Client) bool { return c.profile == a.profile && c.transitions })
	if n == 0 {
		return transition.ErrUnsupported
	}
	return nil
}

// writePump sends messages from the client's send channel to the WebSocket.
func (c *Client) writePump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-c.send:
			if !ok {
				// Channel closed by hub (unregister).
				return
			}
			writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			if err := wsjson.Write(writeCtx, c.conn, msg); err != nil {
				cancel()
				c.logger.Debug("websocket write error", zap.Error(err))
				return
			}
			cancel()
		}
	}
}

// readPump reads from the WebSocket to detect client disconnect.
// Clients never send anything we act on, so we just drain.
func (c *Client) readPump(ctx context.Context) {
	for {
		_, _, err := c.conn.Read(ctx)
		if err != nil {
			return
		}
	}
}
