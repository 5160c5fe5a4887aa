package entities

import "time"

// CartEventAction names the mutation that produced a cart event.

type CartEventAction string

const (
	CartEventItemAdded   CartEventAction = "item_added"
	CartEventItemRemoved CartEventAction = "item_removed"
	CartEventCleared     CartEventAction = "cleared"
)

// CartEvent is the notification published after every cart mutation so
// passive surfaces (navigation badge, cart drawer) can re-read without
// polling. Delivery is best-effort: a missed event means staleness, not
// corruption, because every mutator also returns the fresh cart to its own
// caller.
type CartEvent struct {
	CartID     string          `json:"cart_id"`
	Action     CartEventAction `json:"action"`
	ItemCount  int             `json:"item_count"`
	Total      float64         `json:"total"`
	OccurredAt time.Time       `json:"occurred_at"`
}
