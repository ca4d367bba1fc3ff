package e2e_tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pokedeck/domain"
	authController "pokedeck/internal/auth/controller"
	authRepository "pokedeck/internal/auth/repository"
	authUsecase "pokedeck/internal/auth/usecase"
	cardController "pokedeck/internal/cards/controller"
	cardRepository "pokedeck/internal/cards/repository"
	cardUsecase "pokedeck/internal/cards/usecase"
	deckController "pokedeck/internal/decks/controller"
	deckRepository "pokedeck/internal/decks/repository"
	deckUsecase "pokedeck/internal/decks/usecase"
	dsn2 "pokedeck/internal/service/dsn"
	"pokedeck/internal/service/logger"
	"pokedeck/internal/service/middleware"
	"pokedeck/internal/service/router"
)

func setupTestDB(t *testing.T) *gorm.DB {
	_ = godotenv.Load("../../../.env")
	dsn := dsn2.FromEnvE2E()
	if dsn == "" {
		t.Skip("e2e database is not configured")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&domain.User{}, &domain.Card{}, &domain.Deck{}, &domain.DeckCard{})
	require.NoError(t, err)

	return db
}

func cleanupTestDB(t *testing.T, db *gorm.DB) {
	err := db.Migrator().DropTable(&domain.DeckCard{}, &domain.Deck{}, &domain.Card{}, &domain.User{})
	assert.NoError(t, err)
}

func startServer(t *testing.T, db *gorm.DB) *httptest.Server {
	jwtToken, err := middleware.NewJwtToken("test-secret")
	require.NoError(t, err)

	require.NoError(t, logger.InitLoggers())

	authRepo := authRepository.NewAuthRepository(db)
	authHandler := authController.NewAuthHandler(authUsecase.NewAuthUsecase(authRepo), jwtToken)

	cardRepo := cardRepository.NewCardRepository(db, nil)
	cardHandler := cardController.NewCardHandler(cardUsecase.NewCardUsecase(cardRepo))

	deckRepo := deckRepository.NewDeckRepository(db)
	deckHandler := deckController.NewDeckHandler(deckUsecase.NewDeckUsecase(deckRepo, cardRepo))

	mainRouter := router.SetUpRoutes(authHandler, cardHandler, deckHandler, jwtToken)
	server := httptest.NewServer(mainRouter)
	t.Cleanup(server.Close)
	return server
}

func TestSignUpAndSignInE2E(t *testing.T) {
	db := setupTestDB(t)
	defer cleanupTestDB(t, db)

	server := startServer(t, db)

	signupBody, _ := json.Marshal(domain.SignupRequest{
		Email:    "red@example.com",
		Username: "red",
		Password: "password123",
	})
	resp, err := http.Post(server.URL+"/api/auth/signup", "application/json", bytes.NewReader(signupBody))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var signupResp domain.AuthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&signupResp))
	assert.NotEmpty(t, signupResp.Token)
	assert.Equal(t, "red", signupResp.User.Username)

	// duplicate registration is rejected
	resp2, err := http.Post(server.URL+"/api/auth/signup", "application/json", bytes.NewReader(signupBody))
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusConflict, resp2.StatusCode)

	signinBody, _ := json.Marshal(domain.LoginRequest{
		Email:    "red@example.com",
		Password: "password123",
	})
	resp3, err := http.Post(server.URL+"/api/auth/signin", "application/json", bytes.NewReader(signinBody))
	require.NoError(t, err)
	defer resp3.Body.Close()
	assert.Equal(t, http.StatusOK, resp3.StatusCode)

	badBody, _ := json.Marshal(domain.LoginRequest{
		Email:    "red@example.com",
		Password: "wrong-password",
	})
	resp4, err := http.Post(server.URL+"/api/auth/signin", "application/json", bytes.NewReader(badBody))
	require.NoError(t, err)
	defer resp4.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp4.StatusCode)
}
