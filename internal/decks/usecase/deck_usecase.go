package usecase

import (
	"context"

	"go.uber.org/zap"

	"pokedeck/domain"
	"pokedeck/internal/service/logger"
	"pokedeck/internal/service/middleware"
	"pokedeck/internal/service/validation"
)

// DeckUsecase owns the deck aggregate: every operation takes the
// requester's id explicitly and enforces that only the owner can read or
// mutate a deck.
type DeckUsecase interface {
	CreateDeck(ctx context.Context, ownerID uint, name string, cardIDs []uint) (*domain.Deck, error)
	GetDeck(ctx context.Context, deckID uint, requesterID uint) (*domain.Deck, error)
	ListMyDecks(ctx context.Context, requesterID uint) ([]domain.Deck, error)
	UpdateDeck(ctx context.Context, deckID uint, requesterID uint, name *string, cardIDs []uint) (*domain.Deck, error)
	DeleteDeck(ctx context.Context, deckID uint, requesterID uint) error
}

type deckUsecase struct {
	deckRepository domain.DeckRepository
	cardRepository domain.CardRepository
}

func NewDeckUsecase(deckRepository domain.DeckRepository, cardRepository domain.CardRepository) DeckUsecase {
	return &deckUsecase{
		deckRepository: deckRepository,
		cardRepository: cardRepository,
	}
}

// validateCards checks the count and that every id exists in the catalog.
// Duplicates are allowed: a deck may hold two copies of the same card.
func (uc *deckUsecase) validateCards(ctx context.Context, cardIDs []uint) error {
	requestID := middleware.GetRequestID(ctx)

	if len(cardIDs) != domain.DeckSize {
		logger.AccessLogger.Warn("deck must contain exactly 10 cards",
			zap.String("request_id", requestID), zap.Int("count", len(cardIDs)))
		return domain.ErrDeckSize
	}

	resolved, err := uc.cardRepository.ResolveMany(ctx, cardIDs)
	if err != nil {
		return err
	}
	for _, id := range cardIDs {
		if !resolved[id] {
			logger.AccessLogger.Warn("some card ids are invalid",
				zap.String("request_id", requestID), zap.Uint("card_id", id))
			return domain.ErrUnknownCard
		}
	}
	return nil
}

func (uc *deckUsecase) CreateDeck(ctx context.Context, ownerID uint, name string, cardIDs []uint) (*domain.Deck, error) {
	requestID := middleware.GetRequestID(ctx)

	if !validation.ValidateDeckName(name) {
		logger.AccessLogger.Warn("name is required", zap.String("request_id", requestID))
		return nil, domain.ErrDeckNameRequired
	}
	if err := uc.validateCards(ctx, cardIDs); err != nil {
		return nil, err
	}

	return uc.deckRepository.CreateDeck(ctx, ownerID, name, cardIDs)
}

func (uc *deckUsecase) GetDeck(ctx context.Context, deckID uint, requesterID uint) (*domain.Deck, error) {
	requestID := middleware.GetRequestID(ctx)

	deck, err := uc.deckRepository.GetDeckByID(ctx, deckID)
	if err != nil {
		return nil, err
	}
	if deck.OwnerID != requesterID {
		logger.AccessLogger.Warn("forbidden deck access",
			zap.String("request_id", requestID),
			zap.Uint("deck_id", deckID),
			zap.Uint("requester_id", requesterID))
		return nil, domain.ErrForbidden
	}
	return deck, nil
}

func (uc *deckUsecase) ListMyDecks(ctx context.Context, requesterID uint) ([]domain.Deck, error) {
	return uc.deckRepository.GetDecksByOwner(ctx, requesterID)
}

func (uc *deckUsecase) UpdateDeck(ctx context.Context, deckID uint, requesterID uint, name *string, cardIDs []uint) (*domain.Deck, error) {
	requestID := middleware.GetRequestID(ctx)

	deck, err := uc.deckRepository.GetDeckByID(ctx, deckID)
	if err != nil {
		return nil, err
	}
	if deck.OwnerID != requesterID {
		logger.AccessLogger.Warn("forbidden deck access",
			zap.String("request_id", requestID),
			zap.Uint("deck_id", deckID),
			zap.Uint("requester_id", requesterID))
		return nil, domain.ErrForbidden
	}

	if name != nil && !validation.ValidateDeckName(*name) {
		logger.AccessLogger.Warn("name is required", zap.String("request_id", requestID))
		return nil, domain.ErrDeckNameRequired
	}
	if cardIDs != nil {
		if err := uc.validateCards(ctx, cardIDs); err != nil {
			return nil, err
		}
	}

	return uc.deckRepository.ReplaceDeck(ctx, deckID, name, cardIDs)
}

func (uc *deckUsecase) DeleteDeck(ctx context.Context, deckID uint, requesterID uint) error {
	requestID := middleware.GetRequestID(ctx)

	deck, err := uc.deckRepository.GetDeckByID(ctx, deckID)
	if err != nil {
		return err
	}
	if deck.OwnerID != requesterID {
		logger.AccessLogger.Warn("forbidden deck access",
			zap.String("request_id", requestID),
			zap.Uint("deck_id", deckID),
			zap.Uint("requester_id", requesterID))
		return domain.ErrForbidden
	}

	return uc.deckRepository.DeleteDeck(ctx, deckID)
}
