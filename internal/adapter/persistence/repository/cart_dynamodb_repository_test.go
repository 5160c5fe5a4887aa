package repository

import (
	"testing"
	"time"

	"atelier_prints/internal/domain/entities"
)

func storedCart() entities.Cart {
	return entities.Cart{
		ID: "cart-1",
		Items: []entities.LineItem{
			{
				ID:           "li-1",
				ProductID:    "prod-1",
				ProductTitle: "Dune at Dusk",
				PhotoURL:     "https://images.example.com/dune.jpg",
				Style:        entities.PrintStyleMatted,
				Size:         entities.SizeOption{ID: "size-50x70", Name: "Medium", Dimensions: "50 x 70 cm", Price: 3200},
				Frame:        entities.FrameOption{ID: "frame-oak", Name: "Oak", ColorToken: "oak", Price: 450},
				Price:        3650,
				Quantity:     2,
			},
			{
				ID:        "li-2",
				ProductID: "prod-2",
				Style:     entities.PrintStyleFullBleed,
				Price:     1800,
				Quantity:  1,
			},
		},
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 123456789, time.UTC),
		UpdatedAt: time.Date(2026, 3, 1, 12, 30, 0, 987654321, time.UTC),
	}
}

func TestCartItemRoundTrip(t *testing.T) {
	t.Run("line items are field-equal after a round trip", func(t *testing.T) {
		cart := storedCart()

		it, err := toCartItem(cart)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		restored, err := fromCartItem(it)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if restored.ID != cart.ID {
			t.Fatalf("expected id %q, got %q", cart.ID, restored.ID)
		}
		if len(restored.Items) != len(cart.Items) {
			t.Fatalf("expected %d items, got %d", len(cart.Items), len(restored.Items))
		}
		for i := range cart.Items {
			if restored.Items[i] != cart.Items[i] {
				t.Fatalf("item %d changed in round trip:\nbefore %+v\nafter  %+v", i, cart.Items[i], restored.Items[i])
			}
		}
	})

	t.Run("timestamps survive with nanosecond precision", func(t *testing.T) {
		cart := storedCart()

		it, err := toCartItem(cart)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		restored, err := fromCartItem(it)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !restored.CreatedAt.Equal(cart.CreatedAt) {
			t.Fatalf("created_at changed: %s -> %s", cart.CreatedAt, restored.CreatedAt)
		}
		if !restored.UpdatedAt.Equal(cart.UpdatedAt) {
			t.Fatalf("updated_at changed: %s -> %s", cart.UpdatedAt, restored.UpdatedAt)
		}
	})

	t.Run("empty cart serializes to an empty items document", func(t *testing.T) {
		cart := entities.Cart{ID: "cart-1", CreatedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC()}

		it, err := toCartItem(cart)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if it.Items != "[]" {
			t.Fatalf("expected empty JSON array, got %q", it.Items)
		}

		restored, err := fromCartItem(it)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !restored.IsEmpty() {
			t.Fatalf("expected empty cart, got %+v", restored.Items)
		}
	})

	t.Run("missing items attribute yields an empty cart", func(t *testing.T) {
		restored, err := fromCartItem(cartItem{ID: "cart-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !restored.IsEmpty() {
			t.Fatalf("expected empty cart, got %+v", restored.Items)
		}
	})
}

func TestOrderItemRoundTrip(t *testing.T) {
	order := entities.Order{
		ID:            "order-1",
		Reference:     "PH-MBA3K2QJ-7F",
		CartID:        "cart-1",
		Items:         storedCart().Items,
		Totals:        entities.CheckoutTotals{Subtotal: 9100, ShippingCost: 0, GrandTotal: 9100},
		PaymentMethod: entities.PaymentMethodCreditCard,
		CardLast4:     "4242",
		Contact:       entities.Contact{Email: "ana@example.com", Phone: "030123"},
		Shipping:      entities.ShippingAddress{FullName: "Ana", Street: "Main St 1", City: "Berlin", PostalCode: "10115", Country: "DE"},
		Status:        entities.OrderStatusConfirmed,
		CreatedAt:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	it, err := toOrderItem(order)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.ID != "order-1" || it.Reference != "PH-MBA3K2QJ-7F" || it.Status != "confirmed" {
		t.Fatalf("unexpected key attributes: %+v", it)
	}

	restored, err := fromOrderItem(it)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if restored.ID != order.ID || restored.Reference != order.Reference || restored.CardLast4 != "4242" {
		t.Fatalf("order changed in round trip: %+v", restored)
	}
	if len(restored.Items) != 2 || restored.Items[0] != order.Items[0] {
		t.Fatalf("items changed in round trip: %+v", restored.Items)
	}
	if restored.Totals != order.Totals || restored.Shipping != order.Shipping {
		t.Fatalf("snapshots changed in round trip: %+v", restored)
	}
	if !restored.CreatedAt.Equal(order.CreatedAt) {
		t.Fatalf("created_at changed: %s -> %s", order.CreatedAt, restored.CreatedAt)
	}
}
