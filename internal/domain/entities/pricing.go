package entities

// Shipping policy: orders at or above the threshold ship free, everything
// below pays the flat fee.
const (
	FreeShippingThreshold = 5000.0
	FlatShippingFee       = 150.0
)

// ComputePrice derives the absolute price of one configured print.
//
// A size option with its own absolute price replaces the product base price;
// sizes are priced absolutely, not as a delta. Frame surcharges are always
// additive. A configuration that would go negative is clamped to zero.
func ComputePrice(basePrice float64, size SizeOption, frame FrameOption) float64 {
	price := basePrice
	if size.Price > 0 {
		price = size.Price
	}
	price += frame.Price
	if price < 0 {
		return 0
	}
	return price
}

// ShippingCost applies the flat-fee/free-threshold policy to a subtotal.
func ShippingCost(subtotal float64) float64 {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return FlatShippingFee
}

// CheckoutTotals is derived from a cart on demand and persisted only as a
// snapshot inside a submitted order.
type CheckoutTotals struct {
	Subtotal     float64 `json:"subtotal"`
	ShippingCost float64 `json:"shipping_cost"`
	GrandTotal   float64 `json:"grand_total"`
}

// TotalsFor computes checkout totals from the cart's frozen line item prices.
func TotalsFor(cart Cart) CheckoutTotals {
	subtotal := cart.Total()
	shipping := ShippingCost(subtotal)
	if cart.IsEmpty() {
		shipping = 0
	}
	return CheckoutTotals{
		Subtotal:     subtotal,
		ShippingCost: shipping,
		GrandTotal:   subtotal + shipping,
	}
}
