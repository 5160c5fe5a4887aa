package response

import (
	"time"

	"atelier_prints/internal/domain/entities"
	"atelier_prints/internal/usecase"
)

// CheckoutQuoteResponse renders the totals block. ShippingCost and GrandTotal
// are pointers: until an address has been entered they are omitted so the
// client shows "enter address" instead of a number that implies a false
// total.
type CheckoutQuoteResponse struct {
	CartID         string   `json:"cart_id"`
	CartEmpty      bool     `json:"cart_empty"`
	Subtotal       float64  `json:"subtotal"`
	AddressEntered bool     `json:"address_entered"`
	ShippingCost   *float64 `json:"shipping_cost,omitempty"`
	GrandTotal     *float64 `json:"grand_total,omitempty"`
}

func FromCheckoutQuote(cartID string, q usecase.CheckoutQuote) CheckoutQuoteResponse {
	resp := CheckoutQuoteResponse{
		CartID:         cartID,
		CartEmpty:      q.CartEmpty,
		Subtotal:       q.Totals.Subtotal,
		AddressEntered: q.AddressEntered,
	}
	if q.AddressEntered {
		shipping := q.Totals.ShippingCost
		grand := q.Totals.GrandTotal
		resp.ShippingCost = &shipping
		resp.GrandTotal = &grand
	}
	return resp
}

type OrderResponse struct {
	OrderID       string                  `json:"order_id"`
	Reference     string                  `json:"reference"`
	Status        string                  `json:"status"`
	PaymentMethod string                  `json:"payment_method"`
	CardLast4     string                  `json:"card_last4,omitempty"`
	Items         []LineItemResponse      `json:"items"`
	Totals        entities.CheckoutTotals `json:"totals"`
	Contact       entities.Contact        `json:"contact"`
	Shipping      entities.ShippingAddress `json:"shipping"`
	BankDetails   *entities.BankDetails   `json:"bank_details,omitempty"`
	CreatedAt     time.Time               `json:"created_at"`
}

// FromOrder renders a confirmation. Bank-transfer orders carry the static
// transfer instructions the confirmation page displays.
func FromOrder(o entities.Order) OrderResponse {
	items := make([]LineItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, LineItemResponse{
			ID:           it.ID,
			ProductID:    it.ProductID,
			ProductTitle: it.ProductTitle,
			PhotoURL:     it.PhotoURL,
			Style:        string(it.Style),
			Size:         it.Size,
			Frame:        it.Frame,
			Price:        it.Price,
			Quantity:     it.Quantity,
		})
	}

	resp := OrderResponse{
		OrderID:       o.ID,
		Reference:     o.Reference,
		Status:        string(o.Status),
		PaymentMethod: string(o.PaymentMethod),
		CardLast4:     o.CardLast4,
		Items:         items,
		Totals:        o.Totals,
		Contact:       o.Contact,
		Shipping:      o.Shipping,
		CreatedAt:     o.CreatedAt,
	}
	if o.PaymentMethod == entities.PaymentMethodBankTransfer {
		details := entities.StaticBankDetails()
		resp.BankDetails = &details
	}
	return resp
}
