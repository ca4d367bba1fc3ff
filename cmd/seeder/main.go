package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pokedeck/domain"
	"pokedeck/internal/service/dsn"
	"pokedeck/internal/service/middleware"
)

const defaultDataPath = "data/pokemon.json"

type pokemonEntry struct {
	Name          string `json:"name"`
	HP            int    `json:"hp"`
	Attack        int    `json:"attack"`
	Type          string `json:"type"`
	PokedexNumber int    `json:"pokedexNumber"`
}

func loadPokemonData(path string) ([]pokemonEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pokemon data: %w", err)
	}
	var entries []pokemonEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse pokemon data: %w", err)
	}
	return entries, nil
}

func imgURL(pokedexNumber int) string {
	return fmt.Sprintf("https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork/%d.png", pokedexNumber)
}

// pickRandomUnique shuffles a copy of ids and takes the first count of
// them, so every starter deck gets distinct cards.
func pickRandomUnique(ids []uint, count int) ([]uint, error) {
	if count > len(ids) {
		return nil, fmt.Errorf("not enough cards to pick %d unique ones (found %d)", count, len(ids))
	}
	copied := make([]uint, len(ids))
	copy(copied, ids)
	rand.Shuffle(len(copied), func(i, j int) {
		copied[i], copied[j] = copied[j], copied[i]
	})
	return copied[:count], nil
}

func createStarterDeck(db *gorm.DB, user *domain.User) error {
	var cardIDs []uint
	if err := db.Model(&domain.Card{}).Pluck("id", &cardIDs).Error; err != nil {
		return err
	}

	picked, err := pickRandomUnique(cardIDs, domain.DeckSize)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		deck := domain.Deck{Name: "Starter Deck", OwnerID: user.ID}
		if err := tx.Create(&deck).Error; err != nil {
			return err
		}
		deckCards := make([]domain.DeckCard, len(picked))
		for i, cardID := range picked {
			deckCards[i] = domain.DeckCard{
				DeckID:   deck.ID,
				CardID:   cardID,
				Position: i + 1,
			}
		}
		if err := tx.Create(&deckCards).Error; err != nil {
			return err
		}
		fmt.Printf("Created Starter Deck for %s with %d random cards\n", user.Username, len(picked))
		return nil
	})
}

func seed() error {
	_ = godotenv.Load()

	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		return err
	}

	fmt.Println("Starting database seed...")

	if err := db.Exec("DELETE FROM deck_cards").Error; err != nil {
		return err
	}
	if err := db.Exec("DELETE FROM decks").Error; err != nil {
		return err
	}
	if err := db.Exec("DELETE FROM cards").Error; err != nil {
		return err
	}
	if err := db.Exec("DELETE FROM users").Error; err != nil {
		return err
	}

	hashedPassword, err := middleware.HashPassword("password123")
	if err != nil {
		return err
	}

	users := []domain.User{
		{Username: "red", Email: "red@example.com", Password: hashedPassword},
		{Username: "blue", Email: "blue@example.com", Password: hashedPassword},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}
	fmt.Printf("Created users: %s, %s\n", users[0].Username, users[1].Username)

	dataPath := os.Getenv("POKEMON_DATA_PATH")
	if dataPath == "" {
		dataPath = defaultDataPath
	}
	entries, err := loadPokemonData(dataPath)
	if err != nil {
		return err
	}

	cards := make([]domain.Card, len(entries))
	for i, entry := range entries {
		cardType := domain.PokemonType(entry.Type)
		if !domain.PokemonTypes[cardType] {
			return fmt.Errorf("unknown pokemon type %q for %s", entry.Type, entry.Name)
		}
		cards[i] = domain.Card{
			Name:          entry.Name,
			HP:            entry.HP,
			Attack:        entry.Attack,
			Type:          cardType,
			PokedexNumber: entry.PokedexNumber,
			ImgURL:        imgURL(entry.PokedexNumber),
		}
	}
	if err := db.Create(&cards).Error; err != nil {
		return err
	}
	fmt.Printf("Created %d Pokemon cards\n", len(cards))

	for i := range users {
		if err := createStarterDeck(db, &users[i]); err != nil {
			return err
		}
	}

	fmt.Println("Database seeding completed!")
	return nil
}

func main() {
	if err := seed(); err != nil {
		log.Fatal(err)
	}
}
