package domain

import "context"

// DeckSize is the fixed number of cards every deck holds.
const DeckSize = 10

type Deck struct {
	ID        uint       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name      string     `gorm:"type:varchar(100);not null;column:name" json:"name"`
	OwnerID   uint       `gorm:"column:owner_id;not null;index" json:"userID"`
	Owner     User       `gorm:"foreignkey:OwnerID;references:ID" json:"-"`
	DeckCards []DeckCard `gorm:"foreignKey:DeckID" json:"deckCards"`
}

type DeckCard struct {
	ID       uint `gorm:"primaryKey;autoIncrement;column:id" json:"-"`
	DeckID   uint `gorm:"column:deck_id;not null;index:idx_deck_position,unique" json:"deckID"`
	CardID   uint `gorm:"column:card_id;not null" json:"cardID"`
	Position int  `gorm:"type:int;column:position;not null;index:idx_deck_position,unique" json:"position"`
	Card     Card `gorm:"foreignkey:CardID;references:ID" json:"card"`
}

type CreateDeckRequest struct {
	Name  string `json:"name"`
	Cards []uint `json:"cards"`
}

// UpdateDeckRequest carries optional fields: a nil Name keeps the current
// name, a nil Cards keeps the current composition.
type UpdateDeckRequest struct {
	Name  *string `json:"name"`
	Cards []uint  `json:"cards"`
}

type DeleteDeckResponse struct {
	Message string `json:"message"`
}

type DeckRepository interface {
	CreateDeck(ctx context.Context, ownerID uint, name string, cardIDs []uint) (*Deck, error)
	GetDeckByID(ctx context.Context, deckID uint) (*Deck, error)
	GetDecksByOwner(ctx context.Context, ownerID uint) ([]Deck, error)
	ReplaceDeck(ctx context.Context, deckID uint, name *string, cardIDs []uint) (*Deck, error)
	DeleteDeck(ctx context.Context, deckID uint) error
}
