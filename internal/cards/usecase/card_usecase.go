package usecase

import (
	"context"

	"pokedeck/domain"
)

type CardUsecase interface {
	ListCards(ctx context.Context) ([]domain.Card, error)
}

type cardUsecase struct {
	cardRepository domain.CardRepository
}

func NewCardUsecase(cardRepository domain.CardRepository) CardUsecase {
	return &cardUsecase{
		cardRepository: cardRepository,
	}
}

func (uc *cardUsecase) ListCards(ctx context.Context) ([]domain.Card, error) {
	return uc.cardRepository.ListCards(ctx)
}
