// Package memory provides the default in-process store implementations.
// Each repository owns an ordered slice guarded by a sync.RWMutex and an id
// counter that only ever increases, so ids are never reused after a deletion.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/storefront/catalog-api/internal/core/domain"
)

type UserRepository struct {
	mu     sync.RWMutex
	users  []domain.User
	nextID int
}

// NewUserRepository creates an empty user store.
func NewUserRepository() *UserRepository {
	return &UserRepository{nextID: 1}
}

// Seed appends records as-is and advances the id counter past the highest
// seeded id. Intended for startup fixtures, before the store is shared.
func (r *UserRepository) Seed(users []domain.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range users {
		r.users = append(r.users, u)
		if u.ID >= r.nextID {
			r.nextID = u.ID + 1
		}
	}
}

func (r *UserRepository) List(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *UserRepository) FindByID(_ context.Context, id int) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].ID == id {
			clone := r.users[i]
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if strings.EqualFold(r.users[i].Email, email) {
			clone := r.users[i]
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) Insert(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u.ID = r.nextID
	r.nextID++
	r.users = append(r.users, *u)
	return nil
}

func (r *UserRepository) Update(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == u.ID {
			r.users[i] = *u
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *UserRepository) Delete(_ context.Context, id int) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == id {
			removed := r.users[i]
			r.users = append(r.users[:i], r.users[i+1:]...)
			return &removed, nil
		}
	}
	return nil, domain.ErrUserNotFound
}
