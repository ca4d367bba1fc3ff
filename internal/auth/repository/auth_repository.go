package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"pokedeck/domain"
	"pokedeck/internal/service/logger"
	"pokedeck/internal/service/middleware"
)

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) domain.AuthRepository {
	return &authRepository{
		db: db,
	}
}

func (r *authRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("GetUserByEmail called", zap.String("request_id", requestID), zap.String("email", email))

	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		logger.DBLogger.Error("Error getting user", zap.String("request_id", requestID), zap.String("email", email), zap.Error(err))
		return nil, errors.New("failed to fetch user")
	}
	return &user, nil
}

func (r *authRepository) CreateUser(ctx context.Context, user *domain.User) error {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("CreateUser called", zap.String("request_id", requestID), zap.String("email", user.Email))

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		logger.DBLogger.Error("Error creating user", zap.String("request_id", requestID), zap.String("email", user.Email), zap.Error(err))
		return errors.New("failed to create user")
	}
	logger.DBLogger.Info("Successfully created user", zap.String("request_id", requestID), zap.String("email", user.Email))
	return nil
}
