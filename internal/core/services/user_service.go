package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finbook/voucher_backend/internal/core/domain"
	portsrepo "github.com/finbook/voucher_backend/internal/core/ports/repositories"
	portssvc "github.com/finbook/voucher_backend/internal/core/ports/services"
	"github.com/finbook/voucher_backend/internal/dto"
	"github.com/finbook/voucher_backend/internal/middleware"
	"github.com/finbook/voucher_backend/internal/utils"
)

// userService implements user registration and lookup.
type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

// Ensure userService implements the portssvc.UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser registers a new user with a hashed password.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("failed to hash password", "error", err)
		return nil, err
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		Name:         req.Name,
		Role:         req.Role,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("created user", "userID", user.UserID, "username", user.Username, "role", user.Role)
	return &user, nil
}

// GetUserByID retrieves a user by their unique identifier.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// GetUserByUsername retrieves a user by their login username.
func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.userRepo.FindUserByUsername(ctx, username)
}

// ResolveDisplayName returns the display name for a user ID, or the given
// fallback when the user cannot be resolved.
func (s *userService) ResolveDisplayName(ctx context.Context, userID string, fallback string) string {
	if userID == "" {
		return fallback
	}
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil || user.Name == "" {
		return fallback
	}
	return user.Name
}

// ListUsers retrieves all users.
func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.ListUsers(ctx)
}
