package ws

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/HerbHall/authdeck/internal/appearance"
	"github.com/HerbHall/authdeck/internal/auth"
	"github.com/HerbHall/authdeck/internal/event"
	"github.com/HerbHall/authdeck/internal/layout"
	"github.com/HerbHall/authdeck/internal/theme"
	"github.com/coder/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler provides the WebSocket endpoint that pushes appearance changes
// and reveal commands to connected clients.
type Handler struct {
	hub      *Hub
	registry *appearance.Registry
	tokens   *auth.TokenService
	logger   *zap.Logger
}

// Compile-time check that Handler implements the server interface.
var _ interface {
	RegisterRoutes(mux *http.ServeMux)
} = (*Handler)(nil)

// NewHandler creates a WebSocket handler and subscribes to the registry's
// change events. A nil token service disables authentication; the profile
// then comes from the profile query parameter.
func NewHandler(hub *Hub, registry *appearance.Registry, tokens *auth.TokenService, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Handler{
		hub:      hub,
		registry: registry,
		tokens:   tokens,
		logger:   logger,
	}
	h.subscribeToEvents(registry.Bus())
	return h
}

// RegisterRoutes registers WebSocket routes on the server mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/ws/appearance", h.handleAppearanceStream)
}

// handleAppearanceStream upgrades the connection to WebSocket, sends the
// current snapshot and then streams changes for the caller's profile.
// Clients that can render the circular reveal connect with transitions=1.
func (h *Handler) handleAppearanceStream(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.authenticate(w, r)
	if !ok {
		return
	}
	transitions, _ := strconv.ParseBool(r.URL.Query().Get("transitions"))

	// Accept WebSocket upgrade.
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		// Allow any origin since we validate via JWT token.
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.logger.Error("websocket accept failed", zap.Error(err))
		return
	}

	client := &Client{
		id:          uuid.NewString(),
		conn:        conn,
		profile:     profile,
		transitions: transitions,
		send:        make(chan Message, 256),
		logger:      h.logger,
	}

	ctx := r.Context()
	h.hub.Register(client)
	client.send <- Message{
		Type:      MessageSnapshot,
		Profile:   profile,
		Timestamp: time.Now().UTC(),
		Data:      h.registry.Session(ctx, profile).Snapshot(),
	}

	// Run read and write pumps. When either exits, clean up.
	done := make(chan struct{})
	go func() {
		client.writePump(ctx)
		close(done)
	}()

	// readPump blocks until client disconnects.
	client.readPump(ctx)

	// Client disconnected -- stop write pump and unregister.
	h.hub.Unregister(client)
	conn.Close(websocket.StatusNormalClosure, "")
	<-done
}

// authenticate resolves the profile from the token query parameter, which
// browsers must use, or from a bearer header sent by other clients.
func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) (string, bool) {
	q := r.URL.Query()
	if h.tokens == nil {
		if p := q.Get("profile"); p != "" {
			return p, true
		}
		return appearance.DefaultProfile, true
	}

	token := q.Get("token")
	if token == "" {
		token, _ = auth.BearerToken(r)
	}
	if token == "" {
		http.Error(w, "missing token parameter", http.StatusUnauthorized)
		return "", false
	}
	claims, err := h.tokens.ValidateAccessToken(token)
	if err != nil {
		http.Error(w, "invalid or expired token", http.StatusUnauthorized)
		return "", false
	}
	return claims.Profile(), true
}

// subscribeToEvents forwards committed theme and layout snapshots to the
// clients of the profile that changed.
func (h *Handler) subscribeToEvents(bus *event.Bus) {
	if bus == nil {
		return
	}

	bus.Subscribe(theme.TopicChanged, func(_ context.Context, e event.Event) {
		snap, ok := e.Payload.(theme.Snapshot)
		if !ok {
			return
		}
		h.hub.BroadcastTo(e.Source, Message{
			Type:      MessageTheme,
			Profile:   e.Source,
			Timestamp: e.Timestamp,
			Data:      snap,
		})
	})

	bus.Subscribe(layout.TopicChanged, func(_ context.Context, e event.Event) {
		snap, ok := e.Payload.(layout.Snapshot)
		if !ok {
			return
		}
		h.hub.BroadcastTo(e.Source, Message{
			Type:      MessageLayout,
			Profile:   e.Source,
			Timestamp: e.Timestamp,
			Data:      snap,
		})
	})

	h.logger.Info("subscribed to appearance events for WebSocket broadcasting")
}
