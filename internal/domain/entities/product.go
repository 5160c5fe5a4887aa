package entities

// EditionType distinguishes how a print run is bounded.

type EditionType string

const (
	EditionTypeLimited EditionType = "limited"
	EditionTypeOpen    EditionType = "open"
)

// PrintStyle is the presentation variant a print is produced in.

type PrintStyle string

const (
	PrintStyleMatted    PrintStyle = "matted"
	PrintStyleFullBleed PrintStyle = "full-bleed"
)

func (s PrintStyle) Valid() bool {
	return s == PrintStyleMatted || s == PrintStyleFullBleed
}

// Photo is the hosted image a product is printed from. The URL points at the
// external image CDN; the service never stores image bytes.
type Photo struct {
	URL         string `json:"url"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Orientation string `json:"orientation"`
}

// Product is a catalog record for one purchasable photograph.
//
// Storage model (DynamoDB):
//   - PK: id
//
// BasePrice applies when the chosen size carries no absolute price of its own.

type Product struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	BasePrice    float64     `json:"base_price"`
	EditionType  EditionType `json:"edition_type"`
	EditionTotal int         `json:"edition_total"`
	Photo        Photo       `json:"photo"`
}

// SizeOption is one offered print size. Price is absolute: when non-zero it
// replaces the product base price instead of being added on top of it.
type SizeOption struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Dimensions string  `json:"dimensions"`
	Price      float64 `json:"price"`
}

// FrameOption is one offered frame. Price is an additive surcharge.
type FrameOption struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	ColorToken string  `json:"color_token"`
	Price      float64 `json:"price"`
}

// CatalogOptions bundles the size and frame lists offered to the configurator.
// Ordering matters: the first entry of each list is the default selection.
type CatalogOptions struct {
	Sizes  []SizeOption  `json:"sizes"`
	Frames []FrameOption `json:"frames"`
}
