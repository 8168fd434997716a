package memory

import (
	"context"
	"sync"

	"github.com/storefront/catalog-api/internal/core/domain"
)

type ProductRepository struct {
	mu       sync.RWMutex
	products []domain.Product
	nextID   int
}

// NewProductRepository creates an empty product store.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{nextID: 1}
}

// Seed appends records as-is and advances the id counter past the highest
// seeded id. Intended for startup fixtures, before the store is shared.
func (r *ProductRepository) Seed(products []domain.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range products {
		r.products = append(r.products, p)
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
	}
}

func (r *ProductRepository) List(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *ProductRepository) FindByID(_ context.Context, id int) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.products {
		if r.products[i].ID == id {
			clone := r.products[i]
			return &clone, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *ProductRepository) Insert(_ context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID
	r.nextID++
	r.products = append(r.products, *p)
	return nil
}

func (r *ProductRepository) Update(_ context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == p.ID {
			r.products[i] = *p
			return nil
		}
	}
	return domain.ErrProductNotFound
}

func (r *ProductRepository) Delete(_ context.Context, id int) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			removed := r.products[i]
			r.products = append(r.products[:i], r.products[i+1:]...)
			return &removed, nil
		}
	}
	return nil, domain.ErrProductNotFound
}
