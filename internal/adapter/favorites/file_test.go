package favorites

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valam21/currency-converter/internal/domain/model"
	"github.com/valam21/currency-converter/pkg/logger"
)

func newStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "favorites.json")
	store, err := NewFileStore(path, logger.NewLogger("error"))
	require.NoError(t, err)
	return store, path
}

func TestFileStore_AddAndList(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	pair, added, err := store.Add(ctx, model.USD, model.EUR)
	require.NoError(t, err)
	require.True(t, added)
	assert.NotEmpty(t, pair.ID)
	assert.False(t, pair.CreatedAt.IsZero())

	_, added, err = store.Add(ctx, model.EUR, model.GBP)
	require.NoError(t, err)
	require.True(t, added)

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	// Insertion order is preserved.
	assert.Equal(t, model.USD, list[0].From)
	assert.Equal(t, model.EUR, list[1].From)
}

func TestFileStore_DuplicateIsNoOp(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	_, added, err := store.Add(ctx, model.USD, model.EUR)
	require.NoError(t, err)
	require.True(t, added)

	pair, added, err := store.Add(ctx, model.USD, model.EUR)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Nil(t, pair)

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestFileStore_CapacityIsNoOp(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	bases := []model.Currency{"USD", "EUR", "GBP", "JPY", "AUD", "CAD", "CHF", "CNY", "SEK", "NZD"}
	for i, base := range bases {
		_, added, err := store.Add(ctx, base, bases[(i+1)%len(bases)])
		require.NoError(t, err)
		require.True(t, added)
	}

	// The 11th distinct pair leaves the set unchanged at 10.
	_, added, err := store.Add(ctx, model.Currency("MXN"), model.Currency("SGD"))
	require.NoError(t, err)
	assert.False(t, added)

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, model.MaxFavorites)
}

func TestFileStore_Remove(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	pair, _, err := store.Add(ctx, model.USD, model.EUR)
	require.NoError(t, err)

	removed, err := store.Remove(ctx, pair.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = store.Remove(ctx, pair.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	has, err := store.Has(ctx, model.USD, model.EUR)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestFileStore_SurvivesRestart(t *testing.T) {
	store, path := newStore(t)
	ctx := context.Background()

	_, _, err := store.Add(ctx, model.USD, model.EUR)
	require.NoError(t, err)
	_, _, err = store.Add(ctx, model.GBP, model.JPY)
	require.NoError(t, err)

	reopened, err := NewFileStore(path, logger.NewLogger("error"))
	require.NoError(t, err)

	list, err := reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, model.GBP, list[1].From)

	has, err := reopened.Has(ctx, model.USD, model.EUR)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestFileStore_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store, err := NewFileStore(path, logger.NewLogger("error"))
	require.NoError(t, err)

	list, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}
