package services

import (
	"context"

	"github.com/finbook/voucher_backend/internal/core/domain"
	"github.com/finbook/voucher_backend/internal/dto"
)

// UserSvcFacade defines operations on application users.
type UserSvcFacade interface {
	// CreateUser registers a new user with a hashed password.
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)

	// GetUserByID retrieves a user by their unique identifier.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsername retrieves a user by their login username.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// ResolveDisplayName returns the display name for a user ID, or the given
	// fallback when the user cannot be resolved.
	ResolveDisplayName(ctx context.Context, userID string, fallback string) string

	// ListUsers retrieves all users.
	ListUsers(ctx context.Context) ([]domain.User, error)
}
