package ws

import (
	"net/http"
	"sync"

	"atelier_prints/internal/domain/entities"
	"atelier_prints/internal/infrastructure/events"
	"atelier_prints/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// client wraps a connection with a write lock. Events for one cart can be
// published from concurrent request goroutines, and gorilla/websocket allows
// at most one concurrent writer per connection.
type client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *client) writeJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

// Hub pushes cart-changed events to connected UI surfaces (navigation badge,
// cart drawer) so they can re-read without polling. Connections register per
// cart ID; an event for cart X fans out to cart X's connections only.
//
// Delivery is best-effort: a slow or broken connection is dropped, never
// retried. Surfaces that miss an event are merely stale until the next one.

type Hub struct {
	mu    sync.RWMutex
	conns map[string]map[*client]struct{}
}

func NewHub(bus *events.Bus) *Hub {
	h := &Hub{conns: make(map[string]map[*client]struct{})}
	bus.Subscribe(h.broadcast)
	return h
}

// Handle upgrades a GET /ws/carts/:cart_id request and keeps the connection
// registered until the client goes away.
func (h *Hub) Handle(c *gin.Context) {
	cartID := c.Param("cart_id")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Log.Errorw("websocket upgrade failed", "error", err, "remote_addr", c.Request.RemoteAddr)
		return
	}
	defer conn.Close()

	cl := &client{conn: conn}
	h.register(cartID, cl)
	defer h.unregister(cartID, cl)
	logger.Log.Infow("cart feed connected", "cart_id", cartID, "remote_addr", conn.RemoteAddr().String())

	// Clients only listen; the read loop exists to notice the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Warnw("cart feed read error", "cart_id", cartID, "error", err)
			}
			break
		}
	}

	logger.Log.Infow("cart feed disconnected", "cart_id", cartID)
}

func (h *Hub) register(cartID string, cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[cartID] == nil {
		h.conns[cartID] = make(map[*client]struct{})
	}
	h.conns[cartID][cl] = struct{}{}
}

func (h *Hub) unregister(cartID string, cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns[cartID], cl)
	if len(h.conns[cartID]) == 0 {
		delete(h.conns, cartID)
	}
}

func (h *Hub) broadcast(event entities.CartEvent) {
	h.mu.RLock()
	targets := make([]*client, 0, len(h.conns[event.CartID]))
	for cl := range h.conns[event.CartID] {
		targets = append(targets, cl)
	}
	h.mu.RUnlock()

	for _, cl := range targets {
		if err := cl.writeJSON(event); err != nil {
			logger.Log.Warnw("cart feed write failed, dropping connection", "cart_id", event.CartID, "error", err)
			cl.conn.Close()
			h.unregister(event.CartID, cl)
		}
	}
}
