package ports

import (
	"context"

	"github.com/storefront/catalog-api/internal/core/domain"
)

// ListProductsInput carries the query parameters of the product list endpoint.
type ListProductsInput struct {
	Category string // optional: case-insensitive substring match
	InStock  *bool  // optional: exact match when set
	SortBy   string // field name, empty = "name"
	Order    string // "asc" (default) or "desc"
}

// ListProductsResult is returned by ListProducts. Total is the unfiltered
// store size, Count the size of the filtered result.
type ListProductsResult struct {
	Items []domain.Product
	Count int
	Total int
}

// CreateProductInput carries the fields accepted when creating a product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	InStock     *bool // nil defaults to true
}

// UpdateProductInput is a patch: nil fields are left untouched, non-nil
// fields are applied even when they hold a zero value (InStock=false is a
// real update, not an omission).
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	InStock     *bool
}

// CategoryResult is returned by ProductsByCategory.
type CategoryResult struct {
	Items []domain.Product
	Count int
}

// ProductService defines use-case operations for products.
type ProductService interface {
	ListProducts(ctx context.Context, input ListProductsInput) (*ListProductsResult, error)
	GetProduct(ctx context.Context, id int) (*domain.Product, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int, input UpdateProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int) (*domain.Product, error)
	// ProductsByCategory returns products whose category equals the given one,
	// compared case-insensitively. An empty result is not an error.
	ProductsByCategory(ctx context.Context, category string) (*CategoryResult, error)
}
