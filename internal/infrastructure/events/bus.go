package events

import (
	"sync"

	"atelier_prints/internal/domain/entities"
	"atelier_prints/internal/logger"
	"atelier_prints/internal/usecase/interfaces"
)

// Bus is the in-process cart event channel. The cart store publishes after
// every mutation; surfaces like the WebSocket hub subscribe with a callback.
//
// Publish never blocks on a subscriber and never fails the mutation: a
// panicking subscriber is logged and dropped from that delivery only.
// Subscribers must re-read state they care about; the event itself carries
// just the snapshot counters.

type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]func(entities.CartEvent)
}

var _ interfaces.ICartEventPublisher = (*Bus)(nil)

func NewBus() *Bus {
	return &Bus{subs: make(map[int]func(entities.CartEvent))}
}

// Subscribe registers a callback for every published cart event and returns
// an unsubscribe function. Callbacks run synchronously on the publisher's
// goroutine and should hand off anything slow.
func (b *Bus) Subscribe(fn func(entities.CartEvent)) (unsubscribe func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

func (b *Bus) Publish(event entities.CartEvent) {
	b.mu.RLock()
	fns := make([]func(entities.CartEvent), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.RUnlock()

	for _, fn := range fns {
		b.deliver(fn, event)
	}
}

func (b *Bus) deliver(fn func(entities.CartEvent), event entities.CartEvent) {
	defer func() {
		if r := recover(); r != nil && logger.Log != nil {
			logger.Log.Errorw("cart event subscriber panicked", "cart_id", event.CartID, "action", event.Action, "panic", r)
		}
	}()
	fn(event)
}
