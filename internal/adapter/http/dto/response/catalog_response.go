package response

import "atelier_prints/internal/domain/entities"

type ProductResponse struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	BasePrice    float64        `json:"base_price"`
	EditionType  string         `json:"edition_type"`
	EditionTotal int            `json:"edition_total,omitempty"`
	Photo        entities.Photo `json:"photo"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Title:        p.Title,
		BasePrice:    p.BasePrice,
		EditionType:  string(p.EditionType),
		EditionTotal: p.EditionTotal,
		Photo:        p.Photo,
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}

type OptionsResponse struct {
	Sizes  []entities.SizeOption  `json:"sizes"`
	Frames []entities.FrameOption `json:"frames"`
}

func FromOptions(opts entities.CatalogOptions) OptionsResponse {
	return OptionsResponse{Sizes: opts.Sizes, Frames: opts.Frames}
}

// QuoteResponse is the configurator's reactive price for one selection.
type QuoteResponse struct {
	ProductID string               `json:"product_id"`
	Style     string               `json:"style"`
	Size      entities.SizeOption  `json:"size"`
	Frame     entities.FrameOption `json:"frame"`
	Price     float64              `json:"price"`
}

func FromQuote(productID string, sel entities.Selection, price float64) QuoteResponse {
	return QuoteResponse{
		ProductID: productID,
		Style:     string(sel.Style),
		Size:      sel.Size,
		Frame:     sel.Frame,
		Price:     price,
	}
}
