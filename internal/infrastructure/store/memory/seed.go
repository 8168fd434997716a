package memory

import (
	"time"

	"github.com/storefront/catalog-api/internal/core/domain"
)

// DefaultUsers returns the startup fixture for the user store.
func DefaultUsers() []domain.User {
	now := time.Now().UTC()
	return []domain.User{
		{ID: 1, Name: "John Doe", Email: "john@example.com", Role: "user", CreatedAt: now},
		{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Role: "admin", CreatedAt: now},
	}
}

// DefaultProducts returns the startup fixture for the product store.
func DefaultProducts() []domain.Product {
	now := time.Now().UTC()
	return []domain.Product{
		{ID: 1, Name: "Laptop", Description: "High-performance laptop", Price: 999.99, Category: "Electronics", InStock: true, CreatedAt: now},
		{ID: 2, Name: "Smartphone", Description: "Latest smartphone model", Price: 699.99, Category: "Electronics", InStock: true, CreatedAt: now},
		{ID: 3, Name: "Coffee Mug", Description: "Ceramic coffee mug", Price: 12.99, Category: "Kitchen", InStock: false, CreatedAt: now},
	}
}
