package ports

import (
	"context"

	"github.com/storefront/catalog-api/internal/core/domain"
)

// CreateUserInput carries the fields accepted when creating a user.
type CreateUserInput struct {
	Name  string
	Email string
	Role  string // empty = domain.RoleUser
}

// UpdateUserInput is a patch: nil fields are left untouched on the stored
// record, non-nil fields are applied even when they hold a zero value.
type UpdateUserInput struct {
	Name  *string
	Email *string
	Role  *string
}

// ListUsersResult is returned by ListUsers.
type ListUsersResult struct {
	Items []domain.User
	Count int
}

// UserService defines use-case operations for users.
type UserService interface {
	ListUsers(ctx context.Context) (*ListUsersResult, error)
	GetUser(ctx context.Context, id int) (*domain.User, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, id int, input UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id int) (*domain.User, error)
}
