package entities

import "time"

// LineItem is one priced, configured print in a cart.
//
// Size and Frame are value snapshots of the options chosen at add time, not
// references into the live catalog. Price is frozen the same way: it is
// computed once when the item is created and never re-derived from catalog
// data, so later catalog price changes do not retro-edit carts.

type LineItem struct {
	ID           string      `json:"id"`
	ProductID    string      `json:"product_id"`
	ProductTitle string      `json:"product_title"`
	PhotoURL     string      `json:"photo_url"`
	Style        PrintStyle  `json:"style"`
	Size         SizeOption  `json:"size"`
	Frame        FrameOption `json:"frame"`
	Price        float64     `json:"price"`
	Quantity     int         `json:"quantity"`
}

// Cart is an ordered sequence of line items. Order is insertion order and the
// same configuration may appear twice; there is no dedup and no size cap.
//
// Storage model (DynamoDB):
//   - PK: id
//   - items serialized as a single JSON string attribute

type Cart struct {
	ID        string     `json:"id"`
	Items     []LineItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Total sums price times quantity across items. Empty carts total 0.
func (c Cart) Total() float64 {
	total := 0.0
	for _, it := range c.Items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// Count is the badge count: total units across all line items.
func (c Cart) Count() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
