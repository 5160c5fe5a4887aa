package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"atelier_prints/internal/domain/entities"

	"github.com/google/uuid"
)

var (
	ErrUnknownSizeOption  = errors.New("unknown size option")
	ErrUnknownFrameOption = errors.New("unknown frame option")
	ErrInvalidPrintStyle  = errors.New("invalid print style")
	ErrInvalidQuantity    = errors.New("invalid quantity")
)

// IConfiguratorUseCase drives the product configurator: resolving a
// {style, size, frame} selection against the catalog, quoting its price, and
// turning it into a cart line item.
//
// Every offered style/size/frame is a legal choice at any time; there are no
// sequencing constraints. Omitted fields fall back to the defaults (matted,
// first size, first frame) so a price is always computable.

type IConfiguratorUseCase interface {
	DefaultSelection(ctx context.Context) (entities.Selection, error)
	Quote(ctx context.Context, productID string, style entities.PrintStyle, sizeID, frameID string) (entities.Selection, float64, error)
	AddToCart(ctx context.Context, cartID, productID string, style entities.PrintStyle, sizeID, frameID string, quantity int) (entities.Cart, error)
}

type ConfiguratorUseCase struct {
	catalog ICatalogUseCase
	cart    ICartUseCase
}

var _ IConfiguratorUseCase = (*ConfiguratorUseCase)(nil)

func NewConfiguratorUseCase(catalog ICatalogUseCase, cart ICartUseCase) *ConfiguratorUseCase {
	return &ConfiguratorUseCase{catalog: catalog, cart: cart}
}

func (u *ConfiguratorUseCase) DefaultSelection(ctx context.Context) (entities.Selection, error) {
	opts, err := u.catalog.GetOptions(ctx)
	if err != nil {
		return entities.Selection{}, err
	}
	return entities.DefaultSelection(opts), nil
}

// Quote resolves a selection and derives its price for the given product.
// It is the synchronous price recompute behind every configurator transition.
func (u *ConfiguratorUseCase) Quote(ctx context.Context, productID string, style entities.PrintStyle, sizeID, frameID string) (entities.Selection, float64, error) {
	product, err := u.catalog.GetProduct(ctx, productID)
	if err != nil {
		return entities.Selection{}, 0, err
	}

	sel, err := u.resolveSelection(ctx, style, sizeID, frameID)
	if err != nil {
		return entities.Selection{}, 0, err
	}
	return sel, sel.PriceFor(product), nil
}

// AddToCart is the configurator's terminal action: it snapshots the product
// title, photo and the chosen options into a line item with a frozen price
// and appends it to the cart. Not idempotent; calling it twice adds two items.
func (u *ConfiguratorUseCase) AddToCart(ctx context.Context, cartID, productID string, style entities.PrintStyle, sizeID, frameID string, quantity int) (entities.Cart, error) {
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return entities.Cart{}, ErrInvalidQuantity
	}

	product, err := u.catalog.GetProduct(ctx, productID)
	if err != nil {
		return entities.Cart{}, err
	}

	sel, err := u.resolveSelection(ctx, style, sizeID, frameID)
	if err != nil {
		return entities.Cart{}, err
	}

	item := entities.LineItem{
		ID:           uuid.NewString(),
		ProductID:    product.ID,
		ProductTitle: product.Title,
		PhotoURL:     product.Photo.URL,
		Style:        sel.Style,
		Size:         sel.Size,
		Frame:        sel.Frame,
		Price:        sel.PriceFor(product),
		Quantity:     quantity,
	}

	log.Printf("[configurator][usecase] add-to-cart cart_id=%s product_id=%s size=%s frame=%s price=%.2f qty=%d",
		cartID, product.ID, sel.Size.ID, sel.Frame.ID, item.Price, quantity)

	return u.cart.AddItem(ctx, cartID, item)
}

func (u *ConfiguratorUseCase) resolveSelection(ctx context.Context, style entities.PrintStyle, sizeID, frameID string) (entities.Selection, error) {
	opts, err := u.catalog.GetOptions(ctx)
	if err != nil {
		return entities.Selection{}, err
	}

	sel := entities.DefaultSelection(opts)

	if style != "" {
		if !style.Valid() {
			return entities.Selection{}, ErrInvalidPrintStyle
		}
		sel = sel.WithStyle(style)
	}

	if sizeID = strings.TrimSpace(sizeID); sizeID != "" {
		found := false
		for _, s := range opts.Sizes {
			if s.ID == sizeID {
				sel = sel.WithSize(s)
				found = true
				break
			}
		}
		if !found {
			return entities.Selection{}, ErrUnknownSizeOption
		}
	}

	if frameID = strings.TrimSpace(frameID); frameID != "" {
		found := false
		for _, f := range opts.Frames {
			if f.ID == frameID {
				sel = sel.WithFrame(f)
				found = true
				break
			}
		}
		if !found {
			return entities.Selection{}, ErrUnknownFrameOption
		}
	}

	return sel, nil
}
