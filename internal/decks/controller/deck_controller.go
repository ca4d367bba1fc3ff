package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"pokedeck/domain"
	"pokedeck/internal/decks/usecase"
	"pokedeck/internal/service/logger"
	"pokedeck/internal/service/middleware"
)

type DeckHandler struct {
	usecase usecase.DeckUsecase
}

func NewDeckHandler(usecase usecase.DeckUsecase) *DeckHandler {
	return &DeckHandler{
		usecase: usecase,
	}
}

// requester returns the gate-verified identity. Deck routes sit behind
// AuthMiddleware, so a missing identity means the route was wired wrong.
func (h *DeckHandler) requester(w http.ResponseWriter, r *http.Request, requestID string) (middleware.Identity, bool) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		logger.AccessLogger.Error("No identity on deck request",
			zap.String("request_id", requestID),
			zap.String("url", r.URL.String()),
		)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "no token provided"})
	}
	return identity, ok
}

func deckIDFromPath(r *http.Request) (uint, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, domain.ErrInvalidDeckID
	}
	return uint(id), nil
}

func (h *DeckHandler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	sanitizer := bluemonday.UGCPolicy()
	defer cancel()

	logger.AccessLogger.Info("Received CreateDeck request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	identity, ok := h.requester(w, r, requestID)
	if !ok {
		return
	}

	var data domain.CreateDeckRequest
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		logger.AccessLogger.Error("Failed to decode request body",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		h.handleError(w, domain.ErrMissingFields, requestID)
		return
	}
	data.Name = sanitizer.Sanitize(data.Name)

	deck, err := h.usecase.CreateDeck(ctx, identity.UserID, data.Name, data.Cards)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(deck); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	logger.AccessLogger.Info("Completed CreateDeck request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", http.StatusCreated),
	)
}

func (h *DeckHandler) GetMyDecks(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received GetMyDecks request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	identity, ok := h.requester(w, r, requestID)
	if !ok {
		return
	}

	decks, err := h.usecase.ListMyDecks(ctx, identity.UserID)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(decks); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	logger.AccessLogger.Info("Completed GetMyDecks request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", http.StatusOK),
	)
}

func (h *DeckHandler) GetDeckByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received GetDeckByID request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	identity, ok := h.requester(w, r, requestID)
	if !ok {
		return
	}

	deckID, err := deckIDFromPath(r)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	deck, err := h.usecase.GetDeck(ctx, deckID, identity.UserID)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(deck); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	logger.AccessLogger.Info("Completed GetDeckByID request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", http.StatusOK),
	)
}

func (h *DeckHandler) UpdateDeck(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	sanitizer := bluemonday.UGCPolicy()
	defer cancel()

	logger.AccessLogger.Info("Received UpdateDeck request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	identity, ok := h.requester(w, r, requestID)
	if !ok {
		return
	}

	deckID, err := deckIDFromPath(r)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	var data domain.UpdateDeckRequest
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		logger.AccessLogger.Error("Failed to decode request body",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		h.handleError(w, domain.ErrMissingFields, requestID)
		return
	}
	if data.Name != nil {
		clean := sanitizer.Sanitize(*data.Name)
		data.Name = &clean
	}

	deck, err := h.usecase.UpdateDeck(ctx, deckID, identity.UserID, data.Name, data.Cards)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(deck); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	logger.AccessLogger.Info("Completed UpdateDeck request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", http.StatusOK),
	)
}

func (h *DeckHandler) DeleteDeck(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received DeleteDeck request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	identity, ok := h.requester(w, r, requestID)
	if !ok {
		return
	}

	deckID, err := deckIDFromPath(r)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	if err := h.usecase.DeleteDeck(ctx, deckID, identity.UserID); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(domain.DeleteDeckResponse{Message: "Deck deleted successfully"}); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	logger.AccessLogger.Info("Completed DeleteDeck request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", http.StatusOK),
	)
}

func (h *DeckHandler) handleError(w http.ResponseWriter, err error, requestID string) {
	logger.AccessLogger.Error("Handling error",
		zap.String("request_id", requestID),
		zap.Error(err),
	)

	w.Header().Set("Content-Type", "application/json")
	errorResponse := map[string]string{"error": err.Error()}

	switch {
	case errors.Is(err, domain.ErrDeckNameRequired),
		errors.Is(err, domain.ErrDeckSize),
		errors.Is(err, domain.ErrUnknownCard),
		errors.Is(err, domain.ErrInvalidDeckID),
		errors.Is(err, domain.ErrMissingFields):
		w.WriteHeader(http.StatusBadRequest)
	case errors.Is(err, domain.ErrForbidden):
		w.WriteHeader(http.StatusForbidden)
	case errors.Is(err, domain.ErrDeckNotFound):
		w.WriteHeader(http.StatusNotFound)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}

	if jsonErr := json.NewEncoder(w).Encode(errorResponse); jsonErr != nil {
		logger.AccessLogger.Error("Failed to encode error response",
			zap.String("request_id", requestID),
			zap.Error(jsonErr),
		)
		http.Error(w, jsonErr.Error(), http.StatusInternalServerError)
	}
}
