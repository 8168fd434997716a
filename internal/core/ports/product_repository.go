package ports

import (
	"context"

	"github.com/storefront/catalog-api/internal/core/domain"
)

// ProductRepository defines storage operations for products.
// Filtering and sorting are service concerns; List always returns the whole
// collection in insertion order.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	// FindByID returns the product with the given id or domain.ErrProductNotFound.
	FindByID(ctx context.Context, id int) (*domain.Product, error)
	// Insert assigns a new id to p and appends it to the collection.
	// Assigned ids are strictly increasing for the lifetime of the store.
	Insert(ctx context.Context, p *domain.Product) error
	// Update replaces the stored record with the same id, keeping its position.
	Update(ctx context.Context, p *domain.Product) error
	// Delete removes the product with the given id and returns the removed record.
	Delete(ctx context.Context, id int) (*domain.Product, error)
}
