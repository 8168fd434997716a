package ports

import (
	"context"

	"github.com/storefront/catalog-api/internal/core/domain"
)

// UserRepository defines storage operations for users.
// Implementations must never hand out references into their own collection:
// returned records are copies the caller may mutate freely.
type UserRepository interface {
	// List returns every user in insertion order.
	List(ctx context.Context) ([]domain.User, error)
	// FindByID returns the user with the given id or domain.ErrUserNotFound.
	FindByID(ctx context.Context, id int) (*domain.User, error)
	// FindByEmail matches email case-insensitively and returns
	// domain.ErrUserNotFound when no user has it.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Insert assigns a new id to u and appends it to the collection.
	// Assigned ids are strictly increasing for the lifetime of the store,
	// even across deletions.
	Insert(ctx context.Context, u *domain.User) error
	// Update replaces the stored record with the same id, keeping its position.
	Update(ctx context.Context, u *domain.User) error
	// Delete removes the user with the given id and returns the removed record.
	Delete(ctx context.Context, id int) (*domain.User, error)
}
