package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"atelier_prints/internal/domain/entities"
	"atelier_prints/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidCartID   = errors.New("invalid cart id")
	ErrInvalidLineItem = errors.New("invalid line item")
)

// ICartUseCase exposes the cart store operations.
//
// Mutations persist immediately and publish a cart-changed event. Reads
// return the persisted state; a cart that was never written is an empty cart,
// not an error.

type ICartUseCase interface {
	GetCart(ctx context.Context, cartID string) (entities.Cart, error)
	AddItem(ctx context.Context, cartID string, item entities.LineItem) (entities.Cart, error)
	RemoveItem(ctx context.Context, cartID string, index int) (entities.Cart, error)
	Clear(ctx context.Context, cartID string) (entities.Cart, error)
	Total(ctx context.Context, cartID string) (float64, error)
}

type CartUseCase struct {
	repo   interfaces.ICartRepository
	events interfaces.ICartEventPublisher
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(repo interfaces.ICartRepository, events interfaces.ICartEventPublisher) *CartUseCase {
	return &CartUseCase{repo: repo, events: events}
}

func (u *CartUseCase) GetCart(ctx context.Context, cartID string) (entities.Cart, error) {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return entities.Cart{}, ErrInvalidCartID
	}

	cart, err := u.repo.Get(ctx, cartID)
	if err != nil {
		return entities.Cart{}, err
	}
	if cart.ID == "" {
		// First access creates the cart lazily; nothing is persisted until
		// the first mutation.
		now := time.Now().UTC()
		return entities.Cart{ID: cartID, CreatedAt: now, UpdatedAt: now}, nil
	}
	return cart, nil
}

func (u *CartUseCase) AddItem(ctx context.Context, cartID string, item entities.LineItem) (entities.Cart, error) {
	if item.ProductID == "" || item.Price < 0 {
		return entities.Cart{}, ErrInvalidLineItem
	}
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	cart, err := u.GetCart(ctx, cartID)
	if err != nil {
		return entities.Cart{}, err
	}

	// Append only: no dedup, adding the same configuration twice yields two
	// entries.
	cart.Items = append(cart.Items, item)
	cart.UpdatedAt = time.Now().UTC()

	saved, err := u.repo.Save(ctx, cart)
	if err != nil {
		return entities.Cart{}, err
	}
	u.publish(saved, entities.CartEventItemAdded)
	return saved, nil
}

func (u *CartUseCase) RemoveItem(ctx context.Context, cartID string, index int) (entities.Cart, error) {
	cart, err := u.GetCart(ctx, cartID)
	if err != nil {
		return entities.Cart{}, err
	}

	// Out-of-range removal is a silent no-op: nothing persisted, no event.
	if index < 0 || index >= len(cart.Items) {
		return cart, nil
	}

	cart.Items = append(cart.Items[:index], cart.Items[index+1:]...)
	cart.UpdatedAt = time.Now().UTC()

	saved, err := u.repo.Save(ctx, cart)
	if err != nil {
		return entities.Cart{}, err
	}
	u.publish(saved, entities.CartEventItemRemoved)
	return saved, nil
}

func (u *CartUseCase) Clear(ctx context.Context, cartID string) (entities.Cart, error) {
	cart, err := u.GetCart(ctx, cartID)
	if err != nil {
		return entities.Cart{}, err
	}

	cart.Items = nil
	cart.UpdatedAt = time.Now().UTC()

	saved, err := u.repo.Save(ctx, cart)
	if err != nil {
		return entities.Cart{}, err
	}
	u.publish(saved, entities.CartEventCleared)
	return saved, nil
}

func (u *CartUseCase) Total(ctx context.Context, cartID string) (float64, error) {
	cart, err := u.GetCart(ctx, cartID)
	if err != nil {
		return 0, err
	}
	return cart.Total(), nil
}

func (u *CartUseCase) publish(cart entities.Cart, action entities.CartEventAction) {
	if u.events == nil {
		return
	}
	u.events.Publish(entities.CartEvent{
		CartID:     cart.ID,
		Action:     action,
		ItemCount:  cart.Count(),
		Total:      cart.Total(),
		OccurredAt: time.Now().UTC(),
	})
}
