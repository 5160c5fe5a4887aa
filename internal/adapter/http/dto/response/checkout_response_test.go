package response

import (
	"testing"

	"atelier_prints/internal/domain/entities"
	"atelier_prints/internal/usecase"
)

func TestFromCheckoutQuote(t *testing.T) {
	totals := entities.CheckoutTotals{Subtotal: 4300, ShippingCost: 150, GrandTotal: 4450}

	t.Run("without address hides shipping and grand total", func(t *testing.T) {
		resp := FromCheckoutQuote("cart-1", usecase.CheckoutQuote{Totals: totals})
		if resp.Subtotal != 4300 {
			t.Fatalf("expected subtotal 4300, got %v", resp.Subtotal)
		}
		if resp.ShippingCost != nil || resp.GrandTotal != nil {
			t.Fatalf("expected nil shipping and grand total, got %+v", resp)
		}
	})

	t.Run("with address reports full totals", func(t *testing.T) {
		resp := FromCheckoutQuote("cart-1", usecase.CheckoutQuote{Totals: totals, AddressEntered: true})
		if resp.ShippingCost == nil || *resp.ShippingCost != 150 {
			t.Fatalf("expected shipping 150, got %+v", resp.ShippingCost)
		}
		if resp.GrandTotal == nil || *resp.GrandTotal != 4450 {
			t.Fatalf("expected grand total 4450, got %+v", resp.GrandTotal)
		}
	})
}

func TestFromOrder(t *testing.T) {
	base := entities.Order{
		ID:        "order-1",
		Reference: "PH-MBA3K2QJ-7F",
		Status:    entities.OrderStatusConfirmed,
		Items:     []entities.LineItem{{ID: "li-1", Price: 3200, Quantity: 1}},
		Totals:    entities.CheckoutTotals{Subtotal: 3200, ShippingCost: 150, GrandTotal: 3350},
	}

	t.Run("card order has no bank details", func(t *testing.T) {
		o := base
		o.PaymentMethod = entities.PaymentMethodCreditCard
		o.CardLast4 = "4242"

		resp := FromOrder(o)
		if resp.BankDetails != nil {
			t.Fatalf("expected no bank details, got %+v", resp.BankDetails)
		}
		if resp.CardLast4 != "4242" || len(resp.Items) != 1 {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("bank transfer order carries transfer instructions", func(t *testing.T) {
		o := base
		o.PaymentMethod = entities.PaymentMethodBankTransfer

		resp := FromOrder(o)
		if resp.BankDetails == nil {
			t.Fatalf("expected bank details")
		}
		if resp.BankDetails.AccountHolder != "Atelier Prints Studio" || resp.BankDetails.IBAN == "" {
			t.Fatalf("unexpected bank details: %+v", resp.BankDetails)
		}
	})
}
