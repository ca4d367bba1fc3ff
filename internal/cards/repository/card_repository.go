package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pokedeck/domain"
	"pokedeck/internal/service/logger"
	"pokedeck/internal/service/middleware"
)

const (
	catalogCacheKey = "cards:catalog"
	catalogCacheTTL = 10 * time.Minute
)

type cardRepository struct {
	db    *gorm.DB
	cache *redis.Client
}

// NewCardRepository accepts a nil cache client; reads then go straight to
// the database.
func NewCardRepository(db *gorm.DB, cache *redis.Client) domain.CardRepository {
	return &cardRepository{
		db:    db,
		cache: cache,
	}
}

func (r *cardRepository) ListCards(ctx context.Context) ([]domain.Card, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("ListCards called", zap.String("request_id", requestID))

	if cards, ok := r.fromCache(ctx, requestID); ok {
		return cards, nil
	}

	var cards []domain.Card
	if err := r.db.WithContext(ctx).Order("pokedex_number asc").Find(&cards).Error; err != nil {
		logger.DBLogger.Error("Failed to fetch cards", zap.String("request_id", requestID), zap.Error(err))
		return nil, errors.New("failed to fetch cards")
	}

	r.toCache(ctx, requestID, cards)
	return cards, nil
}

func (r *cardRepository) ResolveMany(ctx context.Context, ids []uint) (map[uint]bool, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("ResolveMany called", zap.String("request_id", requestID), zap.Int("count", len(ids)))

	var existing []uint
	if err := r.db.WithContext(ctx).Model(&domain.Card{}).Where("id IN ?", ids).Pluck("id", &existing).Error; err != nil {
		logger.DBLogger.Error("Failed to resolve cards", zap.String("request_id", requestID), zap.Error(err))
		return nil, errors.New("failed to resolve cards")
	}

	resolved := make(map[uint]bool, len(existing))
	for _, id := range existing {
		resolved[id] = true
	}
	return resolved, nil
}

func (r *cardRepository) fromCache(ctx context.Context, requestID string) ([]domain.Card, bool) {
	if r.cache == nil {
		return nil, false
	}
	payload, err := r.cache.Get(ctx, catalogCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.DBLogger.Warn("Catalog cache read failed", zap.String("request_id", requestID), zap.Error(err))
		}
		return nil, false
	}
	var cards []domain.Card
	if err := json.Unmarshal(payload, &cards); err != nil {
		logger.DBLogger.Warn("Catalog cache payload corrupt", zap.String("request_id", requestID), zap.Error(err))
		return nil, false
	}
	return cards, true
}

func (r *cardRepository) toCache(ctx context.Context, requestID string, cards []domain.Card) {
	if r.cache == nil {
		return
	}
	payload, err := json.Marshal(cards)
	if err != nil {
		return
	}
	if err := r.cache.Set(ctx, catalogCacheKey, payload, catalogCacheTTL).Err(); err != nil {
		logger.DBLogger.Warn("Catalog cache write failed", zap.String("request_id", requestID), zap.Error(err))
	}
}
