package router

import (
	"github.com/gorilla/mux"

	auth "pokedeck/internal/auth/controller"
	cards "pokedeck/internal/cards/controller"
	decks "pokedeck/internal/decks/controller"
	"pokedeck/internal/service/middleware"
)

// SetUpRoutes mounts the public auth/catalog endpoints and the deck
// endpoints behind the authorization gate.
func SetUpRoutes(authHandler *auth.AuthHandler, cardHandler *cards.CardHandler, deckHandler *decks.DeckHandler, jwtToken middleware.JwtTokenService) *mux.Router {
	router := mux.NewRouter()
	api := "/api"

	router.HandleFunc(api+"/auth/signup", authHandler.SignUp).Methods("POST") // Register a new user
	router.HandleFunc(api+"/auth/signin", authHandler.SignIn).Methods("POST") // Login an existing user
	router.HandleFunc(api+"/cards", cardHandler.GetCards).Methods("GET")      // Full card catalog

	deckRouter := router.PathPrefix(api + "/decks").Subrouter()
	deckRouter.Use(middleware.AuthMiddleware(jwtToken))
	deckRouter.HandleFunc("", deckHandler.CreateDeck).Methods("POST")
	deckRouter.HandleFunc("/mine", deckHandler.GetMyDecks).Methods("GET")
	deckRouter.HandleFunc("/{id}", deckHandler.GetDeckByID).Methods("GET")
	deckRouter.HandleFunc("/{id}", deckHandler.UpdateDeck).Methods("PATCH")
	deckRouter.HandleFunc("/{id}", deckHandler.DeleteDeck).Methods("DELETE")

	return router
}
