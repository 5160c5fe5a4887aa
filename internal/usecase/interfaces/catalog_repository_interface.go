package interfaces

import (
	"context"

	"atelier_prints/internal/domain/entities"
)

// ICatalogRepository abstracts read access to the product catalog and the
// size/frame option lists. A missing product is reported as a zero-value
// Product with nil error; the use case translates that into NotFound.

type ICatalogRepository interface {
	GetProduct(ctx context.Context, id string) (entities.Product, error)
	ListProducts(ctx context.Context) ([]entities.Product, error)
	GetOptions(ctx context.Context) (entities.CatalogOptions, error)
}
