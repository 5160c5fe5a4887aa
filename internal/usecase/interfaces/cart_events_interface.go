package interfaces

import "atelier_prints/internal/domain/entities"

// ICartEventPublisher is the notification side of the cart store. Every
// mutation publishes exactly one event; delivery to subscribers is
// best-effort and must never block or fail the mutation itself.

type ICartEventPublisher interface {
	Publish(event entities.CartEvent)
}
