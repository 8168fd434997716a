package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/storefront/catalog-api/internal/core/domain"
	"github.com/storefront/catalog-api/internal/core/ports"
)

const defaultSortField = "name"

type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

// ListProducts filters and sorts the whole collection in memory.
// Category filters by case-insensitive substring; InStock by exact match when
// set. Sorting defaults to name ascending; an unknown SortBy field falls back
// to name. Total always reports the unfiltered store size.
func (s *ProductService) ListProducts(ctx context.Context, input ports.ListProductsInput) (*ports.ListProductsResult, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, err
	}
	total := len(products)

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if input.Category != "" &&
			!strings.Contains(strings.ToLower(p.Category), strings.ToLower(input.Category)) {
			continue
		}
		if input.InStock != nil && p.InStock != *input.InStock {
			continue
		}
		filtered = append(filtered, p)
	}

	sortProducts(filtered, input.SortBy, input.Order)

	return &ports.ListProductsResult{
		Items: filtered,
		Count: len(filtered),
		Total: total,
	}, nil
}

// GetProduct returns the product with the given id or domain.ErrProductNotFound.
func (s *ProductService) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateProduct validates the payload and appends the new product to the
// store. InStock defaults to true when absent from the payload.
func (s *ProductService) CreateProduct(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	if input.Name == "" || input.Description == "" || input.Price == 0 || input.Category == "" {
		return nil, domain.NewValidationError("Name, description, price, and category are required")
	}
	if input.Price <= 0 {
		return nil, domain.NewValidationError("Price must be a positive number")
	}

	inStock := true
	if input.InStock != nil {
		inStock = *input.InStock
	}

	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		InStock:     inStock,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, product); err != nil {
		s.logger.Error().Err(err).Msg("failed to create product")
		return nil, err
	}

	s.logger.Info().Int("product_id", product.ID).Str("category", product.Category).Msg("product created")
	return product, nil
}

// UpdateProduct applies the non-nil fields of input to the stored record and
// stamps UpdatedAt. A present price is validated before anything is written.
func (s *ProductService) UpdateProduct(ctx context.Context, id int, input ports.UpdateProductInput) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Price != nil {
		if *input.Price <= 0 {
			return nil, domain.NewValidationError("Price must be a positive number")
		}
		product.Price = *input.Price
	}
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.InStock != nil {
		product.InStock = *input.InStock
	}

	now := time.Now().UTC()
	product.UpdatedAt = &now

	if err := s.repo.Update(ctx, product); err != nil {
		s.logger.Error().Err(err).Int("product_id", id).Msg("failed to update product")
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes the product with the given id and returns the removed record.
func (s *ProductService) DeleteProduct(ctx context.Context, id int) (*domain.Product, error) {
	product, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int("product_id", id).Msg("product deleted")
	return product, nil
}

// ProductsByCategory returns products whose category matches exactly,
// ignoring case. An empty result is returned as-is, never as an error.
func (s *ProductService) ProductsByCategory(ctx context.Context, category string) (*ports.CategoryResult, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products by category")
		return nil, err
	}

	matched := make([]domain.Product, 0)
	for _, p := range products {
		if strings.EqualFold(p.Category, category) {
			matched = append(matched, p)
		}
	}
	return &ports.CategoryResult{Items: matched, Count: len(matched)}, nil
}

// sortProducts orders items by the given field, falling back to name for
// unknown fields. The sort is stable so equal keys keep insertion order.
func sortProducts(items []domain.Product, sortBy, order string) {
	field := strings.TrimSpace(sortBy)
	switch field {
	case "name", "description", "price", "category", "id", "createdAt":
	default:
		field = defaultSortField
	}

	less := func(a, b domain.Product) bool {
		switch field {
		case "price":
			return a.Price < b.Price
		case "id":
			return a.ID < b.ID
		case "createdAt":
			return a.CreatedAt.Before(b.CreatedAt)
		case "description":
			return a.Description < b.Description
		case "category":
			return a.Category < b.Category
		default:
			return a.Name < b.Name
		}
	}

	if order == "desc" {
		sort.SliceStable(items, func(i, j int) bool { return less(items[j], items[i]) })
		return
	}
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
}
