package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"atelier_prints/internal/domain/entities"
	"atelier_prints/internal/usecase/interfaces"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidProductID = errors.New("invalid product id")
)

// ICatalogUseCase exposes read access to products and print options.

type ICatalogUseCase interface {
	GetProduct(ctx context.Context, id string) (entities.Product, error)
	ListProducts(ctx context.Context) ([]entities.Product, error)
	GetOptions(ctx context.Context) (entities.CatalogOptions, error)
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) GetProduct(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}

	p, err := u.repo.GetProduct(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *CatalogUseCase) ListProducts(ctx context.Context) ([]entities.Product, error) {
	return u.repo.ListProducts(ctx)
}

// GetOptions returns the offered size/frame lists. A failing or empty option
// store degrades to the built-in defaults so the configurator always has a
// valid first size and frame to start from.
func (u *CatalogUseCase) GetOptions(ctx context.Context) (entities.CatalogOptions, error) {
	opts, err := u.repo.GetOptions(ctx)
	if err != nil {
		log.Printf("[catalog][usecase] options fetch failed, serving defaults err=%v", err)
		return defaultCatalogOptions(), nil
	}
	if len(opts.Sizes) == 0 || len(opts.Frames) == 0 {
		return defaultCatalogOptions(), nil
	}
	return opts, nil
}

func defaultCatalogOptions() entities.CatalogOptions {
	return entities.CatalogOptions{
		Sizes: []entities.SizeOption{
			{ID: "size-30x40", Name: "Small", Dimensions: "30 x 40 cm"},
			{ID: "size-50x70", Name: "Medium", Dimensions: "50 x 70 cm", Price: 3200},
			{ID: "size-70x100", Name: "Large", Dimensions: "70 x 100 cm", Price: 4800},
		},
		Frames: []entities.FrameOption{
			{ID: "frame-none", Name: "No frame", ColorToken: "none"},
			{ID: "frame-oak", Name: "Oak", ColorToken: "oak", Price: 450},
			{ID: "frame-black", Name: "Black", ColorToken: "black", Price: 400},
			{ID: "frame-white", Name: "White", ColorToken: "white", Price: 400},
		},
	}
}
