package request

import "strings"

// AddItemRequest configures one product and appends it to a cart. Size and
// frame are sent by ID; the server snapshots the full option from the catalog
// so clients cannot forge prices. Omitted fields fall back to the
// configurator defaults.
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Style     string `json:"style"`
	SizeID    string `json:"size_id"`
	FrameID   string `json:"frame_id"`
	Quantity  int    `json:"quantity"`
}

func (r AddItemRequest) ResolveProductID() string {
	return strings.TrimSpace(r.ProductID)
}

// QuoteRequest asks for the price of a selection without touching the cart.
// It backs every configurator transition's synchronous price recompute.
type QuoteRequest struct {
	Style   string `json:"style"`
	SizeID  string `json:"size_id"`
	FrameID string `json:"frame_id"`
}
