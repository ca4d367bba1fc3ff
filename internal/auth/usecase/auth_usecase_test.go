package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pokedeck/domain"
	"pokedeck/internal/auth/mocks"
	"pokedeck/internal/service/logger"
	"pokedeck/internal/service/middleware"
)

func TestRegisterUser(t *testing.T) {
	logger.AccessLogger = zap.NewNop()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.MockAuthRepository)
		uc := NewAuthUsecase(mockRepo)

		mockRepo.On("GetUserByEmail", ctx, "red@example.com").Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("CreateUser", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "red@example.com" && u.Username == "red" &&
				middleware.CheckPassword(u.Password, "password123")
		})).Return(nil)

		user, err := uc.RegisterUser(ctx, "red@example.com", "red", "password123")
		assert.NoError(t, err)
		assert.Equal(t, "red", user.Username)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Missing Fields", func(t *testing.T) {
		mockRepo := new(mocks.MockAuthRepository)
		uc := NewAuthUsecase(mockRepo)

		_, err := uc.RegisterUser(ctx, "", "red", "password123")
		assert.ErrorIs(t, err, domain.ErrMissingFields)
		mockRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("Invalid Email", func(t *testing.T) {
		mockRepo := new(mocks.MockAuthRepository)
		uc := NewAuthUsecase(mockRepo)

		_, err := uc.RegisterUser(ctx, "not-an-email", "red", "password123")
		assert.ErrorIs(t, err, domain.ErrInvalidEmail)
	})

	t.Run("Invalid Password", func(t *testing.T) {
		mockRepo := new(mocks.MockAuthRepository)
		uc := NewAuthUsecase(mockRepo)

		_, err := uc.RegisterUser(ctx, "red@example.com", "red", "short")
		assert.ErrorIs(t, err, domain.ErrInvalidPassword)
	})

	t.Run("Email Already In Use", func(t *testing.T) {
		mockRepo := new(mocks.MockAuthRepository)
		uc := NewAuthUsecase(mockRepo)

		existing := &domain.User{ID: 1, Email: "red@example.com", Username: "red"}
		mockRepo.On("GetUserByEmail", ctx, "red@example.com").Return(existing, nil)

		_, err := uc.RegisterUser(ctx, "red@example.com", "red", "password123")
		assert.ErrorIs(t, err, domain.ErrEmailTaken)
		mockRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})
}

func TestLoginUser(t *testing.T) {
	logger.AccessLogger = zap.NewNop()
	ctx := context.Background()

	hashed, err := middleware.HashPassword("password123")
	assert.NoError(t, err)
	stored := &domain.User{ID: 1, Email: "red@example.com", Username: "red", Password: hashed}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.MockAuthRepository)
		uc := NewAuthUsecase(mockRepo)

		mockRepo.On("GetUserByEmail", ctx, "red@example.com").Return(stored, nil)

		user, err := uc.LoginUser(ctx, "red@example.com", "password123")
		assert.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
	})

	t.Run("Missing Fields", func(t *testing.T) {
		mockRepo := new(mocks.MockAuthRepository)
		uc := NewAuthUsecase(mockRepo)

		_, err := uc.LoginUser(ctx, "red@example.com", "")
		assert.ErrorIs(t, err, domain.ErrMissingFields)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		mockRepo := new(mocks.MockAuthRepository)
		uc := NewAuthUsecase(mockRepo)

		mockRepo.On("GetUserByEmail", ctx, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

		_, err := uc.LoginUser(ctx, "ghost@example.com", "password123")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		mockRepo := new(mocks.MockAuthRepository)
		uc := NewAuthUsecase(mockRepo)

		mockRepo.On("GetUserByEmail", ctx, "red@example.com").Return(stored, nil)

		_, err := uc.LoginUser(ctx, "red@example.com", "wrong-password")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
