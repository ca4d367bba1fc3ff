package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pokedeck/internal/service/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	logger.DBLogger = zap.NewNop()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock, func() { db.Close() }
}

func TestListCards(t *testing.T) {
	gormDB, mock, closeFn := setupMockDB(t)
	defer closeFn()

	repo := NewCardRepository(gormDB, nil)
	ctx := context.Background()

	t.Run("Success - Ordered By Pokedex Number", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "cards" ORDER BY pokedex_number asc`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "hp", "attack", "type", "pokedex_number", "img_url"}).
				AddRow(1, "Bulbasaur", 45, 49, "GRASS", 1, "https://example.com/1.png").
				AddRow(2, "Charmander", 39, 52, "FIRE", 4, "https://example.com/4.png"))

		cards, err := repo.ListCards(ctx)
		require.NoError(t, err)
		require.Len(t, cards, 2)
		assert.Equal(t, "Bulbasaur", cards[0].Name)
		assert.Equal(t, 4, cards[1].PokedexNumber)
	})

	t.Run("Fail - Database Error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "cards" ORDER BY pokedex_number asc`).
			WillReturnError(gorm.ErrInvalidDB)

		_, err := repo.ListCards(ctx)
		assert.Error(t, err)
		assert.Equal(t, "failed to fetch cards", err.Error())
	})
}

func TestResolveMany(t *testing.T) {
	gormDB, mock, closeFn := setupMockDB(t)
	defer closeFn()

	repo := NewCardRepository(gormDB, nil)
	ctx := context.Background()

	t.Run("Success - Missing IDs Dropped From Set", func(t *testing.T) {
		mock.ExpectQuery(`SELECT "id" FROM "cards" WHERE id IN`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2).AddRow(3))

		resolved, err := repo.ResolveMany(ctx, []uint{1, 2, 3, 99})
		require.NoError(t, err)
		assert.True(t, resolved[1])
		assert.True(t, resolved[2])
		assert.True(t, resolved[3])
		assert.False(t, resolved[99])
	})

	t.Run("Fail - Database Error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT "id" FROM "cards" WHERE id IN`).
			WillReturnError(gorm.ErrInvalidDB)

		_, err := repo.ResolveMany(ctx, []uint{1, 2})
		assert.Error(t, err)
		assert.Equal(t, "failed to resolve cards", err.Error())
	})
}
