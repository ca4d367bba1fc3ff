package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"pokedeck/internal/cards/usecase"
	"pokedeck/internal/service/logger"
	"pokedeck/internal/service/middleware"
)

type CardHandler struct {
	usecase usecase.CardUsecase
}

func NewCardHandler(usecase usecase.CardUsecase) *CardHandler {
	return &CardHandler{
		usecase: usecase,
	}
}

func (h *CardHandler) GetCards(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received GetCards request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	cards, err := h.usecase.ListCards(ctx)
	if err != nil {
		logger.AccessLogger.Error("Failed to list cards",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(cards); err != nil {
		logger.AccessLogger.Error("Failed to encode response",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	logger.AccessLogger.Info("Completed GetCards request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", http.StatusOK),
	)
}
