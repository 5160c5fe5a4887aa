package interfaces

import (
	"context"

	"atelier_prints/internal/domain/entities"
)

// IOrderRepository abstracts order persistence.
//
// Create must be conditional on the order ID not existing yet: the ID is the
// submission's idempotency key. A lost condition is reported as a zero-value
// Order with nil error so the use case can return the original order instead
// of a second one.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByReference(ctx context.Context, reference string) (entities.Order, error)
}
