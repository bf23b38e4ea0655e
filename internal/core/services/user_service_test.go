package services_test

import (
	"context"
	"testing"

	"github.com/finbook/voucher_backend/internal/apperrors"
	"github.com/finbook/voucher_backend/internal/core/domain"
	portsrepo "github.com/finbook/voucher_backend/internal/core/ports/repositories"
	"github.com/finbook/voucher_backend/internal/core/services"
	"github.com/finbook/voucher_backend/internal/dto"
	"github.com/finbook/voucher_backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

// Ensure MockUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func TestCreateUser_HashesPassword(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	svc := services.NewUserService(mockRepo)

	req := dto.CreateUserRequest{
		Username: "akumar",
		Password: "s3cret-pass",
		Name:     "A. Kumar",
		Role:     domain.RoleFinance,
	}

	mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "akumar" &&
			u.Role == domain.RoleFinance &&
			u.PasswordHash != req.Password &&
			utils.CheckPasswordHash(req.Password, u.PasswordHash)
	})).Return(nil).Once()

	user, err := svc.CreateUser(ctx, req, "creator-1")

	require.NoError(t, err)
	assert.NotEmpty(t, user.UserID)
	mockRepo.AssertExpectations(t)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	svc := services.NewUserService(mockRepo)

	dupErr := apperrors.NewAppError(409, "username akumar already taken", apperrors.ErrDuplicate)
	mockRepo.On("SaveUser", ctx, mock.Anything).Return(dupErr).Once()

	_, err := svc.CreateUser(ctx, dto.CreateUserRequest{
		Username: "akumar",
		Password: "s3cret-pass",
		Name:     "A. Kumar",
		Role:     domain.RoleAdmin,
	}, "creator-1")

	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestResolveDisplayName(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	svc := services.NewUserService(mockRepo)

	mockRepo.On("FindUserByID", ctx, "u1").Return(&domain.User{UserID: "u1", Name: "A. Kumar"}, nil).Once()
	mockRepo.On("FindUserByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	assert.Equal(t, "A. Kumar", svc.ResolveDisplayName(ctx, "u1", "Finance Officer"))
	assert.Equal(t, "Finance Officer", svc.ResolveDisplayName(ctx, "missing", "Finance Officer"))
	assert.Equal(t, "Finance Officer", svc.ResolveDisplayName(ctx, "", "Finance Officer"))
}
