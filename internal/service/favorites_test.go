package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valam21/currency-converter/internal/adapter/favorites"
	"github.com/valam21/currency-converter/internal/domain/model"
	"github.com/valam21/currency-converter/pkg/logger"
)

func newFavoritesService(t *testing.T, onAdd func(model.CurrencyPair)) *FavoritesService {
	t.Helper()
	log := logger.NewLogger("error")
	store, err := favorites.NewFileStore(filepath.Join(t.TempDir(), "favorites.json"), log)
	require.NoError(t, err)
	return NewFavoritesService(store, onAdd, log)
}

func TestFavoritesService_Validation(t *testing.T) {
	svc := newFavoritesService(t, nil)
	ctx := context.Background()

	_, _, err := svc.AddFavorite(ctx, model.USD, model.USD)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRequest))

	_, _, err = svc.AddFavorite(ctx, model.Currency("XYZ"), model.EUR)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRequest))

	_, err = svc.RemoveFavorite(ctx, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRequest))
}

func TestFavoritesService_OnAddHook(t *testing.T) {
	var warmed []model.CurrencyPair
	svc := newFavoritesService(t, func(pair model.CurrencyPair) {
		warmed = append(warmed, pair)
	})
	ctx := context.Background()

	_, added, err := svc.AddFavorite(ctx, model.USD, model.EUR)
	require.NoError(t, err)
	require.True(t, added)

	// A duplicate add is a no-op and must not trigger the hook again.
	_, added, err = svc.AddFavorite(ctx, model.USD, model.EUR)
	require.NoError(t, err)
	assert.False(t, added)

	require.Len(t, warmed, 1)
	assert.Equal(t, model.CurrencyPair{From: model.USD, To: model.EUR}, warmed[0])
}

func TestFavoritesService_RoundTrip(t *testing.T) {
	svc := newFavoritesService(t, nil)
	ctx := context.Background()

	pair, added, err := svc.AddFavorite(ctx, model.GBP, model.JPY)
	require.NoError(t, err)
	require.True(t, added)

	list, err := svc.ListFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	removed, err := svc.RemoveFavorite(ctx, pair.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	list, err = svc.ListFavorites(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
