package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/storefront/catalog-api/internal/core/domain"
	"github.com/storefront/catalog-api/internal/core/ports"
)

type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// ListUsers returns all users in insertion order.
func (s *UserService) ListUsers(ctx context.Context) (*ports.ListUsersResult, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list users")
		return nil, err
	}
	return &ports.ListUsersResult{Items: users, Count: len(users)}, nil
}

// GetUser returns the user with the given id or domain.ErrUserNotFound.
func (s *UserService) GetUser(ctx context.Context, id int) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateUser validates the payload, assigns the default role when none is
// given, and appends the new user to the store. Email uniqueness is enforced
// case-insensitively.
func (s *UserService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" {
		return nil, domain.NewValidationError("Name and email are required")
	}

	if err := s.ensureEmailFree(ctx, input.Email, 0); err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}

	user := &domain.User{
		Name:      input.Name,
		Email:     input.Email,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, user); err != nil {
		s.logger.Error().Err(err).Msg("failed to create user")
		return nil, err
	}

	s.logger.Info().Int("user_id", user.ID).Str("role", user.Role).Msg("user created")
	return user, nil
}

// UpdateUser applies the non-nil fields of input to the stored record and
// stamps UpdatedAt. A changed email is checked for uniqueness excluding the
// user itself. Validation failures leave the store untouched.
func (s *UserService) UpdateUser(ctx context.Context, id int, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		if err := s.ensureEmailFree(ctx, *input.Email, id); err != nil {
			return nil, err
		}
		user.Email = *input.Email
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Role != nil {
		user.Role = *input.Role
	}

	now := time.Now().UTC()
	user.UpdatedAt = &now

	if err := s.repo.Update(ctx, user); err != nil {
		s.logger.Error().Err(err).Int("user_id", id).Msg("failed to update user")
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the user with the given id and returns the removed record.
func (s *UserService) DeleteUser(ctx context.Context, id int) (*domain.User, error) {
	user, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int("user_id", id).Msg("user deleted")
	return user, nil
}

// ensureEmailFree rejects email when another user (id != selfID) already has
// it. The comparison is case-insensitive inside FindByEmail.
func (s *UserService) ensureEmailFree(ctx context.Context, email string, selfID int) error {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return domain.NewValidationError("Email already exists")
	}
	return nil
}
