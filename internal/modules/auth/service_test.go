package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"portfolio/internal/domain"
	"portfolio/internal/repository"
)

type mockAdminRepo struct {
	mock.Mock
}

func (m *mockAdminRepo) GetByUsername(ctx context.Context, username string) (*domain.AdminPrincipal, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminPrincipal), args.Error(1)
}

type mockTokenIssuer struct {
	mock.Mock
}

func (m *mockTokenIssuer) GenerateToken(adminID int64, username string) (string, error) {
	args := m.Called(adminID, username)
	return args.String(0), args.Error(1)
}

func TestService_Login_Success(t *testing.T) {
	adminRepo := new(mockAdminRepo)
	issuer := new(mockTokenIssuer)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	adminRepo.On("GetByUsername", mock.Anything, "admin").Return(&domain.AdminPrincipal{
		ID:           1,
		Username:     "admin",
		PasswordHash: string(hashed),
		CreatedAt:    time.Now(),
	}, nil)
	issuer.On("GenerateToken", int64(1), "admin").Return("signed-token", nil)

	service := NewService(adminRepo, issuer)

	token, err := service.Login(context.Background(), LoginRequest{
		Username: "admin",
		Password: "admin123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	adminRepo.AssertExpectations(t)
	issuer.AssertExpectations(t)
}

func TestService_Login_UnknownUser(t *testing.T) {
	adminRepo := new(mockAdminRepo)
	issuer := new(mockTokenIssuer)

	adminRepo.On("GetByUsername", mock.Anything, "nobody").Return(nil, repository.ErrNotFound)

	service := NewService(adminRepo, issuer)

	_, err := service.Login(context.Background(), LoginRequest{
		Username: "nobody",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	issuer.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything)
}

func TestService_Login_WrongPassword(t *testing.T) {
	adminRepo := new(mockAdminRepo)
	issuer := new(mockTokenIssuer)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.DefaultCost)
	adminRepo.On("GetByUsername", mock.Anything, "admin").Return(&domain.AdminPrincipal{
		ID:           1,
		Username:     "admin",
		PasswordHash: string(hashed),
	}, nil)

	service := NewService(adminRepo, issuer)

	_, err := service.Login(context.Background(), LoginRequest{
		Username: "admin",
		Password: "wrong",
	})

	// identical error kind as the unknown-user case
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	issuer.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything)
}

func TestService_Login_StoreError(t *testing.T) {
	adminRepo := new(mockAdminRepo)
	issuer := new(mockTokenIssuer)

	storeErr := errors.New("connection refused")
	adminRepo.On("GetByUsername", mock.Anything, "admin").Return(nil, storeErr)

	service := NewService(adminRepo, issuer)

	_, err := service.Login(context.Background(), LoginRequest{
		Username: "admin",
		Password: "admin123",
	})

	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
