package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"pokedeck/domain"
	"pokedeck/internal/decks/mocks"
	"pokedeck/internal/service/logger"
	"pokedeck/internal/service/middleware"
)

func createTestRequest(t *testing.T, method, url string, body []byte, identity *middleware.Identity) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()
	r := httptest.NewRequest(method, url, bytes.NewReader(body))
	if identity != nil {
		r = r.WithContext(middleware.WithIdentity(r.Context(), *identity))
	}
	return r, httptest.NewRecorder()
}

func sampleDeck(deckID uint, ownerID uint) *domain.Deck {
	deck := &domain.Deck{ID: deckID, Name: "Starter", OwnerID: ownerID}
	for i := 1; i <= domain.DeckSize; i++ {
		deck.DeckCards = append(deck.DeckCards, domain.DeckCard{
			DeckID:   deckID,
			CardID:   uint(i),
			Position: i,
		})
	}
	return deck
}

func TestCreateDeckHandler(t *testing.T) {
	logger.AccessLogger = zap.NewNop()

	t.Run("Success - 201 With Composition", func(t *testing.T) {
		mockUsecase := new(mocks.MockDeckUsecase)
		h := NewDeckHandler(mockUsecase)

		cards := []uint{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
		body, _ := json.Marshal(domain.CreateDeckRequest{Name: "Starter", Cards: cards})
		mockUsecase.On("CreateDeck", mock.Anything, uint(7), "Starter", cards).Return(sampleDeck(1, 7), nil)

		r, w := createTestRequest(t, http.MethodPost, "/api/decks", body, &middleware.Identity{UserID: 7, Email: "red@example.com"})
		h.CreateDeck(w, r)

		resp := w.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var got domain.Deck
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Len(t, got.DeckCards, domain.DeckSize)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Failure - Wrong Card Count Is 400", func(t *testing.T) {
		mockUsecase := new(mocks.MockDeckUsecase)
		h := NewDeckHandler(mockUsecase)

		cards := []uint{1, 2, 3}
		body, _ := json.Marshal(domain.CreateDeckRequest{Name: "Bad", Cards: cards})
		mockUsecase.On("CreateDeck", mock.Anything, uint(7), "Bad", cards).Return(nil, domain.ErrDeckSize)

		r, w := createTestRequest(t, http.MethodPost, "/api/decks", body, &middleware.Identity{UserID: 7})
		h.CreateDeck(w, r)

		resp := w.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Failure - No Identity Is 401", func(t *testing.T) {
		mockUsecase := new(mocks.MockDeckUsecase)
		h := NewDeckHandler(mockUsecase)

		r, w := createTestRequest(t, http.MethodPost, "/api/decks", nil, nil)
		h.CreateDeck(w, r)

		resp := w.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		mockUsecase.AssertNotCalled(t, "CreateDeck", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGetDeckByIDHandler(t *testing.T) {
	logger.AccessLogger = zap.NewNop()

	t.Run("Success - 200", func(t *testing.T) {
		mockUsecase := new(mocks.MockDeckUsecase)
		h := NewDeckHandler(mockUsecase)

		mockUsecase.On("GetDeck", mock.Anything, uint(5), uint(7)).Return(sampleDeck(5, 7), nil)

		r, w := createTestRequest(t, http.MethodGet, "/api/decks/5", nil, &middleware.Identity{UserID: 7})
		r = mux.SetURLVars(r, map[string]string{"id": "5"})
		h.GetDeckByID(w, r)

		resp := w.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Failure - Foreign Deck Is 403", func(t *testing.T) {
		mockUsecase := new(mocks.MockDeckUsecase)
		h := NewDeckHandler(mockUsecase)

		mockUsecase.On("GetDeck", mock.Anything, uint(5), uint(2)).Return(nil, domain.ErrForbidden)

		r, w := createTestRequest(t, http.MethodGet, "/api/decks/5", nil, &middleware.Identity{UserID: 2})
		r = mux.SetURLVars(r, map[string]string{"id": "5"})
		h.GetDeckByID(w, r)

		resp := w.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Failure - Unknown Deck Is 404", func(t *testing.T) {
		mockUsecase := new(mocks.MockDeckUsecase)
		h := NewDeckHandler(mockUsecase)

		mockUsecase.On("GetDeck", mock.Anything, uint(99), uint(7)).Return(nil, domain.ErrDeckNotFound)

		r, w := createTestRequest(t, http.MethodGet, "/api/decks/99", nil, &middleware.Identity{UserID: 7})
		r = mux.SetURLVars(r, map[string]string{"id": "99"})
		h.GetDeckByID(w, r)

		resp := w.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Failure - Non-Numeric ID Is 400", func(t *testing.T) {
		mockUsecase := new(mocks.MockDeckUsecase)
		h := NewDeckHandler(mockUsecase)

		r, w := createTestRequest(t, http.MethodGet, "/api/decks/abc", nil, &middleware.Identity{UserID: 7})
		r = mux.SetURLVars(r, map[string]string{"id": "abc"})
		h.GetDeckByID(w, r)

		resp := w.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockUsecase.AssertNotCalled(t, "GetDeck", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGetMyDecksHandler(t *testing.T) {
	logger.AccessLogger = zap.NewNop()

	mockUsecase := new(mocks.MockDeckUsecase)
	h := NewDeckHandler(mockUsecase)

	decks := []domain.Deck{*sampleDeck(1, 7), *sampleDeck(2, 7)}
	mockUsecase.On("ListMyDecks", mock.Anything, uint(7)).Return(decks, nil)

	r, w := createTestRequest(t, http.MethodGet, "/api/decks/mine", nil, &middleware.Identity{UserID: 7})
	h.GetMyDecks(w, r)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got []domain.Deck
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Len(t, got, 2)
}

func TestUpdateDeckHandler(t *testing.T) {
	logger.AccessLogger = zap.NewNop()

	t.Run("Success - 200", func(t *testing.T) {
		mockUsecase := new(mocks.MockDeckUsecase)
		h := NewDeckHandler(mockUsecase)

		cards := []uint{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
		name := "Renamed"
		body, _ := json.Marshal(domain.UpdateDeckRequest{Name: &name, Cards: cards})
		mockUsecase.On("UpdateDeck", mock.Anything, uint(5), uint(7), &name, cards).Return(sampleDeck(5, 7), nil)

		r, w := createTestRequest(t, http.MethodPatch, "/api/decks/5", body, &middleware.Identity{UserID: 7})
		r = mux.SetURLVars(r, map[string]string{"id": "5"})
		h.UpdateDeck(w, r)

		resp := w.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Failure - Foreign Deck Is 403", func(t *testing.T) {
		mockUsecase := new(mocks.MockDeckUsecase)
		h := NewDeckHandler(mockUsecase)

		cards := []uint{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
		body, _ := json.Marshal(domain.UpdateDeckRequest{Cards: cards})
		mockUsecase.On("UpdateDeck", mock.Anything, uint(5), uint(2), (*string)(nil), cards).Return(nil, domain.ErrForbidden)

		r, w := createTestRequest(t, http.MethodPatch, "/api/decks/5", body, &middleware.Identity{UserID: 2})
		r = mux.SetURLVars(r, map[string]string{"id": "5"})
		h.UpdateDeck(w, r)

		resp := w.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}

func TestDeleteDeckHandler(t *testing.T) {
	logger.AccessLogger = zap.NewNop()

	t.Run("Success - 200 With Message", func(t *testing.T) {
		mockUsecase := new(mocks.MockDeckUsecase)
		h := NewDeckHandler(mockUsecase)

		mockUsecase.On("DeleteDeck", mock.Anything, uint(5), uint(7)).Return(nil)

		r, w := createTestRequest(t, http.MethodDelete, "/api/decks/5", nil, &middleware.Identity{UserID: 7})
		r = mux.SetURLVars(r, map[string]string{"id": "5"})
		h.DeleteDeck(w, r)

		resp := w.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var got domain.DeleteDeckResponse
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, "Deck deleted successfully", got.Message)
	})

	t.Run("Failure - Already Deleted Is 404", func(t *testing.T) {
		mockUsecase := new(mocks.MockDeckUsecase)
		h := NewDeckHandler(mockUsecase)

		mockUsecase.On("DeleteDeck", mock.Anything, uint(5), uint(7)).Return(domain.ErrDeckNotFound)

		r, w := createTestRequest(t, http.MethodDelete, "/api/decks/5", nil, &middleware.Identity{UserID: 7})
		r = mux.SetURLVars(r, map[string]string{"id": "5"})
		h.DeleteDeck(w, r)

		resp := w.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
