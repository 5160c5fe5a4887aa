package interfaces

import (
	"context"

	"atelier_prints/internal/domain/entities"
)

// ICartRepository abstracts durable cart storage.
//
// The contract mirrors string-valued key-value storage: one document per cart
// ID, written whole on every mutation, read back whole, removed only by an
// explicit delete. There is exactly one writer per cart from the service's
// point of view; concurrent writers from elsewhere are an accepted risk.

type ICartRepository interface {
	Get(ctx context.Context, cartID string) (entities.Cart, error)
	Save(ctx context.Context, cart entities.Cart) (entities.Cart, error)
	Delete(ctx context.Context, cartID string) error
}
