package ws

import (
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"atelier_prints/internal/domain/entities"
	"atelier_prints/internal/infrastructure/events"
	"atelier_prints/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

func newFeedServer(t *testing.T) (*events.Bus, *Hub, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.InitLoggerDev()

	bus := events.NewBus()
	hub := NewHub(bus)

	r := gin.New()
	r.GET("/v1/ws/carts/:cart_id", hub.Handle)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return bus, hub, srv
}

func dialFeed(t *testing.T, srv *httptest.Server, cartID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/ws/carts/" + cartID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// waitRegistered blocks until the hub has n connections for the cart; the
// server goroutine registers after the handshake the dialer returns on.
func waitRegistered(t *testing.T, hub *Hub, cartID string, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		hub.mu.RLock()
		got := len(hub.conns[cartID])
		hub.mu.RUnlock()
		if got == n {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("cart %s feed never reached %d connections", cartID, n)
}

func feedEvent(cartID string, count int) entities.CartEvent {
	return entities.CartEvent{
		CartID:     cartID,
		Action:     entities.CartEventItemAdded,
		ItemCount:  count,
		Total:      float64(count) * 3200,
		OccurredAt: time.Now().UTC(),
	}
}

func TestHub_EventFansOutToMatchingCartOnly(t *testing.T) {
	bus, hub, srv := newFeedServer(t)

	conn1 := dialFeed(t, srv, "cart-1")
	conn2 := dialFeed(t, srv, "cart-2")
	waitRegistered(t, hub, "cart-1", 1)
	waitRegistered(t, hub, "cart-2", 1)

	bus.Publish(feedEvent("cart-1", 1))

	_ = conn1.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got entities.CartEvent
	if err := conn1.ReadJSON(&got); err != nil {
		t.Fatalf("expected event on cart-1 feed: %v", err)
	}
	if got.CartID != "cart-1" || got.ItemCount != 1 {
		t.Fatalf("unexpected event: %+v", got)
	}

	_ = conn2.SetReadDeadline(time.Now().Add(150 * time.Millisecond))
	var stray entities.CartEvent
	if err := conn2.ReadJSON(&stray); err == nil {
		t.Fatalf("cart-2 feed received a cart-1 event: %+v", stray)
	}
}

func TestHub_ConcurrentPublishersShareOneConnection(t *testing.T) {
	bus, hub, srv := newFeedServer(t)

	conn := dialFeed(t, srv, "cart-1")
	waitRegistered(t, hub, "cart-1", 1)

	// Mutations on one cart publish from separate request goroutines; every
	// frame must still arrive intact on the single connection.
	const publishers = 8
	const perPublisher = 5

	var wg sync.WaitGroup
	for p := 0; p < publishers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perPublisher; i++ {
				bus.Publish(feedEvent("cart-1", i+1))
			}
		}()
	}
	wg.Wait()

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	for i := 0; i < publishers*perPublisher; i++ {
		var got entities.CartEvent
		if err := conn.ReadJSON(&got); err != nil {
			t.Fatalf("read %d failed: %v", i, err)
		}
		if got.CartID != "cart-1" || got.Action != entities.CartEventItemAdded {
			t.Fatalf("corrupted event at read %d: %+v", i, got)
		}
	}
}

func TestHub_DisconnectUnregisters(t *testing.T) {
	_, hub, srv := newFeedServer(t)

	conn := dialFeed(t, srv, "cart-1")
	waitRegistered(t, hub, "cart-1", 1)

	conn.Close()
	waitRegistered(t, hub, "cart-1", 0)
}
