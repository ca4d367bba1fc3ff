package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	authController "pokedeck/internal/auth/controller"
	authRepository "pokedeck/internal/auth/repository"
	authUsecase "pokedeck/internal/auth/usecase"

	cardController "pokedeck/internal/cards/controller"
	cardRepository "pokedeck/internal/cards/repository"
	cardUsecase "pokedeck/internal/cards/usecase"

	deckController "pokedeck/internal/decks/controller"
	deckRepository "pokedeck/internal/decks/repository"
	deckUsecase "pokedeck/internal/decks/usecase"

	"pokedeck/internal/service/logger"
	"pokedeck/internal/service/middleware"
	"pokedeck/internal/service/router"
)

func main() {
	_ = godotenv.Load()

	db := middleware.DbConnect()
	redisClient := middleware.InitRedis()

	jwtToken, err := middleware.NewJwtToken(os.Getenv("JWT_SECRET"))
	if err != nil {
		log.Fatalf("Failed to create JWT token service: %v", err)
	}

	if err := logger.InitLoggers(); err != nil {
		log.Fatalf("Failed to initialize loggers: %v", err)
	}
	defer func() {
		if err := logger.SyncLoggers(); err != nil {
			log.Printf("Failed to sync loggers: %v", err)
		}
	}()

	authRepo := authRepository.NewAuthRepository(db)
	authUC := authUsecase.NewAuthUsecase(authRepo)
	authHandler := authController.NewAuthHandler(authUC, jwtToken)

	cardRepo := cardRepository.NewCardRepository(db, redisClient)
	cardUC := cardUsecase.NewCardUsecase(cardRepo)
	cardHandler := cardController.NewCardHandler(cardUC)

	deckRepo := deckRepository.NewDeckRepository(db)
	deckUC := deckUsecase.NewDeckUsecase(deckRepo, cardRepo)
	deckHandler := deckController.NewDeckHandler(deckUC)

	mainRouter := router.SetUpRoutes(authHandler, cardHandler, deckHandler, jwtToken)
	mainRouter.Use(middleware.RequestIDMiddleware)
	mainRouter.Use(middleware.RateLimitMiddleware)
	http.Handle("/", middleware.EnableCORS(mainRouter))

	fmt.Printf("Starting HTTP server on address %s\n", os.Getenv("BACKEND_URL"))
	if err := http.ListenAndServe(os.Getenv("BACKEND_URL"), nil); err != nil {
		fmt.Printf("Error on starting server: %s", err)
	}
}
