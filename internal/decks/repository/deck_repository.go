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

type deckRepository struct {
	db *gorm.DB
}

func NewDeckRepository(db *gorm.DB) domain.DeckRepository {
	return &deckRepository{
		db: db,
	}
}

func withComposition(db *gorm.DB) *gorm.DB {
	return db.
		Preload("DeckCards", func(db *gorm.DB) *gorm.DB {
			return db.Order("deck_cards.position ASC")
		}).
		Preload("DeckCards.Card")
}

func buildDeckCards(deckID uint, cardIDs []uint) []domain.DeckCard {
	deckCards := make([]domain.DeckCard, len(cardIDs))
	for i, cardID := range cardIDs {
		deckCards[i] = domain.DeckCard{
			DeckID:   deckID,
			CardID:   cardID,
			Position: i + 1,
		}
	}
	return deckCards
}

// CreateDeck persists the deck row and its ten positioned cards as one
// transaction; a failure on any row leaves nothing behind.
func (r *deckRepository) CreateDeck(ctx context.Context, ownerID uint, name string, cardIDs []uint) (*domain.Deck, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("CreateDeck called", zap.String("request_id", requestID), zap.Uint("owner_id", ownerID))

	var created domain.Deck

	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		deck := domain.Deck{Name: name, OwnerID: ownerID}
		if err := tx.Create(&deck).Error; err != nil {
			logger.DBLogger.Error("Failed to create deck", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to create deck")
		}

		deckCards := buildDeckCards(deck.ID, cardIDs)
		if err := tx.Create(&deckCards).Error; err != nil {
			logger.DBLogger.Error("Failed to create deck cards", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to create deck cards")
		}

		if err := withComposition(tx).First(&created, deck.ID).Error; err != nil {
			logger.DBLogger.Error("Failed to load created deck", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to load deck")
		}
		return nil
	}); err != nil {
		return nil, err
	}

	logger.DBLogger.Info("Successfully created deck", zap.String("request_id", requestID), zap.Uint("deck_id", created.ID))
	return &created, nil
}

func (r *deckRepository) GetDeckByID(ctx context.Context, deckID uint) (*domain.Deck, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("GetDeckByID called", zap.String("request_id", requestID), zap.Uint("deck_id", deckID))

	var deck domain.Deck
	if err := withComposition(r.db.WithContext(ctx)).First(&deck, deckID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.DBLogger.Warn("Deck not found", zap.String("request_id", requestID), zap.Uint("deck_id", deckID))
			return nil, domain.ErrDeckNotFound
		}
		logger.DBLogger.Error("Failed to fetch deck", zap.String("request_id", requestID), zap.Error(err))
		return nil, errors.New("failed to fetch deck")
	}
	return &deck, nil
}

func (r *deckRepository) GetDecksByOwner(ctx context.Context, ownerID uint) ([]domain.Deck, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("GetDecksByOwner called", zap.String("request_id", requestID), zap.Uint("owner_id", ownerID))

	var decks []domain.Deck
	if err := withComposition(r.db.WithContext(ctx)).Where("owner_id = ?", ownerID).Find(&decks).Error; err != nil {
		logger.DBLogger.Error("Failed to fetch decks", zap.String("request_id", requestID), zap.Error(err))
		return nil, errors.New("failed to fetch decks")
	}
	return decks, nil
}

// ReplaceDeck applies a wholesale card replacement and/or a rename. The
// delete of the old composition and the insert of the new one share a
// transaction, so a concurrent reader never observes a deck with fewer
// than ten cards.
func (r *deckRepository) ReplaceDeck(ctx context.Context, deckID uint, name *string, cardIDs []uint) (*domain.Deck, error) {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("ReplaceDeck called", zap.String("request_id", requestID), zap.Uint("deck_id", deckID))

	var updated domain.Deck
	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var deck domain.Deck
		if err := tx.First(&deck, deckID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.DBLogger.Warn("Deck not found", zap.String("request_id", requestID), zap.Uint("deck_id", deckID))
				return domain.ErrDeckNotFound
			}
			logger.DBLogger.Error("Failed to fetch deck", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to fetch deck")
		}

		if name != nil {
			if err := tx.Model(&domain.Deck{}).Where("id = ?", deckID).Update("name", *name).Error; err != nil {
				logger.DBLogger.Error("Failed to update deck name", zap.String("request_id", requestID), zap.Error(err))
				return errors.New("failed to update deck name")
			}
		}

		if cardIDs != nil {
			if err := tx.Where("deck_id = ?", deckID).Delete(&domain.DeckCard{}).Error; err != nil {
				logger.DBLogger.Error("Failed to delete deck cards", zap.String("request_id", requestID), zap.Error(err))
				return errors.New("failed to delete deck cards")
			}

			deckCards := buildDeckCards(deckID, cardIDs)
			if err := tx.Create(&deckCards).Error; err != nil {
				logger.DBLogger.Error("Failed to create deck cards", zap.String("request_id", requestID), zap.Error(err))
				return errors.New("failed to create deck cards")
			}
		}

		if err := withComposition(tx).First(&updated, deckID).Error; err != nil {
			logger.DBLogger.Error("Failed to load updated deck", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to load deck")
		}
		return nil
	}); err != nil {
		return nil, err
	}

	logger.DBLogger.Info("Successfully replaced deck", zap.String("request_id", requestID), zap.Uint("deck_id", deckID))
	return &updated, nil
}

func (r *deckRepository) DeleteDeck(ctx context.Context, deckID uint) error {
	requestID := middleware.GetRequestID(ctx)
	logger.DBLogger.Info("DeleteDeck called", zap.String("request_id", requestID), zap.Uint("deck_id", deckID))

	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("deck_id = ?", deckID).Delete(&domain.DeckCard{}).Error; err != nil {
			logger.DBLogger.Error("Failed to delete deck cards", zap.String("request_id", requestID), zap.Error(err))
			return errors.New("failed to delete deck cards")
		}

		res := tx.Delete(&domain.Deck{}, deckID)
		if res.Error != nil {
			logger.DBLogger.Error("Failed to delete deck", zap.String("request_id", requestID), zap.Error(res.Error))
			return errors.New("failed to delete deck")
		}
		if res.RowsAffected == 0 {
			logger.DBLogger.Warn("Deck not found", zap.String("request_id", requestID), zap.Uint("deck_id", deckID))
			return domain.ErrDeckNotFound
		}
		return nil
	}); err != nil {
		return err
	}

	logger.DBLogger.Info("Successfully deleted deck", zap.String("request_id", requestID), zap.Uint("deck_id", deckID))
	return nil
}
