package entities

// Selection is the configurator state: the {style, size, frame} tuple a user
// has picked for one product. There is no hidden state beyond the tuple, and
// every transition is a pure replacement, so the zero-lag price recompute is
// just PriceFor on the new value.

type Selection struct {
	Style PrintStyle  `json:"style"`
	Size  SizeOption  `json:"size"`
	Frame FrameOption `json:"frame"`
}

// DefaultSelection is the initial configurator state: matted style, first
// size, first frame. It exists so a price is always computable before the
// user touches anything.
func DefaultSelection(options CatalogOptions) Selection {
	sel := Selection{Style: PrintStyleMatted}
	if len(options.Sizes) > 0 {
		sel.Size = options.Sizes[0]
	}
	if len(options.Frames) > 0 {
		sel.Frame = options.Frames[0]
	}
	return sel
}

func (s Selection) WithStyle(style PrintStyle) Selection {
	s.Style = style
	return s
}

func (s Selection) WithSize(size SizeOption) Selection {
	s.Size = size
	return s
}

func (s Selection) WithFrame(frame FrameOption) Selection {
	s.Frame = frame
	return s
}

// PriceFor derives the current price of this selection for a product.
func (s Selection) PriceFor(p Product) float64 {
	return ComputePrice(p.BasePrice, s.Size, s.Frame)
}
