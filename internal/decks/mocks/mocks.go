package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pokedeck/domain"
)

type MockDeckUsecase struct {
	mock.Mock
}

func (m *MockDeckUsecase) CreateDeck(ctx context.Context, ownerID uint, name string, cardIDs []uint) (*domain.Deck, error) {
	args := m.Called(ctx, ownerID, name, cardIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deck), args.Error(1)
}

func (m *MockDeckUsecase) GetDeck(ctx context.Context, deckID uint, requesterID uint) (*domain.Deck, error) {
	args := m.Called(ctx, deckID, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deck), args.Error(1)
}

func (m *MockDeckUsecase) ListMyDecks(ctx context.Context, requesterID uint) ([]domain.Deck, error) {
	args := m.Called(ctx, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Deck), args.Error(1)
}

func (m *MockDeckUsecase) UpdateDeck(ctx context.Context, deckID uint, requesterID uint, name *string, cardIDs []uint) (*domain.Deck, error) {
	args := m.Called(ctx, deckID, requesterID, name, cardIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deck), args.Error(1)
}

func (m *MockDeckUsecase) DeleteDeck(ctx context.Context, deckID uint, requesterID uint) error {
	args := m.Called(ctx, deckID, requesterID)
	return args.Error(0)
}

type MockDeckRepository struct {
	mock.Mock
}

func (m *MockDeckRepository) CreateDeck(ctx context.Context, ownerID uint, name string, cardIDs []uint) (*domain.Deck, error) {
	args := m.Called(ctx, ownerID, name, cardIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deck), args.Error(1)
}

func (m *MockDeckRepository) GetDeckByID(ctx context.Context, deckID uint) (*domain.Deck, error) {
	args := m.Called(ctx, deckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deck), args.Error(1)
}

func (m *MockDeckRepository) GetDecksByOwner(ctx context.Context, ownerID uint) ([]domain.Deck, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Deck), args.Error(1)
}

func (m *MockDeckRepository) ReplaceDeck(ctx context.Context, deckID uint, name *string, cardIDs []uint) (*domain.Deck, error) {
	args := m.Called(ctx, deckID, name, cardIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deck), args.Error(1)
}

func (m *MockDeckRepository) DeleteDeck(ctx context.Context, deckID uint) error {
	args := m.Called(ctx, deckID)
	return args.Error(0)
}
