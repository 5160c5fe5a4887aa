package response

import (
	"time"

	"atelier_prints/internal/domain/entities"
)

type LineItemResponse struct {
	ID           string               `json:"id"`
	ProductID    string               `json:"product_id"`
	ProductTitle string               `json:"product_title"`
	PhotoURL     string               `json:"photo_url"`
	Style        string               `json:"style"`
	Size         entities.SizeOption  `json:"size"`
	Frame        entities.FrameOption `json:"frame"`
	Price        float64              `json:"price"`
	Quantity     int                  `json:"quantity"`
}

type CartResponse struct {
	CartID    string             `json:"cart_id"`
	Items     []LineItemResponse `json:"items"`
	ItemCount int                `json:"item_count"`
	Total     float64            `json:"total"`
	UpdatedAt time.Time          `json:"updated_at"`
}

func FromCart(c entities.Cart) CartResponse {
	items := make([]LineItemResponse, 0, len(c.Items))
	for _, it := range c.Items {
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
	return CartResponse{
		CartID:    c.ID,
		Items:     items,
		ItemCount: c.Count(),
		Total:     c.Total(),
		UpdatedAt: c.UpdatedAt,
	}
}

type CartTotalResponse struct {
	CartID    string  `json:"cart_id"`
	ItemCount int     `json:"item_count"`
	Total     float64 `json:"total"`
}

func FromCartTotal(c entities.Cart) CartTotalResponse {
	return CartTotalResponse{CartID: c.ID, ItemCount: c.Count(), Total: c.Total()}
}
