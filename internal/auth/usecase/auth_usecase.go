package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"pokedeck/domain"
	"pokedeck/internal/service/logger"
	"pokedeck/internal/service/middleware"
	"pokedeck/internal/service/validation"
)

type AuthUsecase interface {
	RegisterUser(ctx context.Context, email string, username string, password string) (*domain.User, error)
	LoginUser(ctx context.Context, email string, password string) (*domain.User, error)
}

type authUsecase struct {
	authRepository domain.AuthRepository
}

func NewAuthUsecase(authRepository domain.AuthRepository) AuthUsecase {
	return &authUsecase{
		authRepository: authRepository,
	}
}

func (uc *authUsecase) RegisterUser(ctx context.Context, email string, username string, password string) (*domain.User, error) {
	requestID := middleware.GetRequestID(ctx)

	if email == "" || username == "" || password == "" {
		logger.AccessLogger.Warn("missing required fields", zap.String("request_id", requestID))
		return nil, domain.ErrMissingFields
	}
	if !validation.ValidateEmail(email) {
		logger.AccessLogger.Warn("not correct email", zap.String("request_id", requestID))
		return nil, domain.ErrInvalidEmail
	}
	if !validation.ValidateUsername(username) {
		logger.AccessLogger.Warn("not correct username", zap.String("request_id", requestID))
		return nil, domain.ErrInvalidUsername
	}
	if !validation.ValidatePassword(password) {
		logger.AccessLogger.Warn("not correct password", zap.String("request_id", requestID))
		return nil, domain.ErrInvalidPassword
	}

	_, err := uc.authRepository.GetUserByEmail(ctx, email)
	if err == nil {
		logger.AccessLogger.Warn("email already in use", zap.String("request_id", requestID))
		return nil, domain.ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := middleware.HashPassword(password)
	if err != nil {
		logger.AccessLogger.Error("failed to hash password", zap.String("request_id", requestID), zap.Error(err))
		return nil, errors.New("failed to hash password")
	}

	user := &domain.User{
		Email:    email,
		Username: username,
		Password: hashedPassword,
	}
	if err := uc.authRepository.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *authUsecase) LoginUser(ctx context.Context, email string, password string) (*domain.User, error) {
	requestID := middleware.GetRequestID(ctx)

	if email == "" || password == "" {
		logger.AccessLogger.Warn("missing required fields", zap.String("request_id", requestID))
		return nil, domain.ErrMissingFields
	}

	user, err := uc.authRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.AccessLogger.Warn("invalid credentials", zap.String("request_id", requestID))
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !middleware.CheckPassword(user.Password, password) {
		logger.AccessLogger.Warn("invalid credentials", zap.String("request_id", requestID))
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}
