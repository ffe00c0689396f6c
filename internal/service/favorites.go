package service

import (
	"context"
	"fmt"

	"github.com/valam21/currency-converter/internal/domain/model"
	"github.com/valam21/currency-converter/internal/domain/ports"
	"github.com/valam21/currency-converter/pkg/logger"
)

// FavoritesService validates pairs and delegates to the store. An optional
// onAdd hook lets the caller schedule work when a pair is saved; the server
// uses it to prewarm the rate table for the pair's base.
type FavoritesService struct {
	store ports.FavoriteStore
	onAdd func(model.CurrencyPair)
	log   *logger.Logger
}

func NewFavoritesService(store ports.FavoriteStore, onAdd func(model.CurrencyPair), log *logger.Logger) *FavoritesService {
	return &FavoritesService{
		store: store,
		onAdd: onAdd,
		log:   log,
	}
}

func (s *FavoritesService) AddFavorite(ctx context.Context, from, to model.Currency) (*model.FavoritePair, bool, error) {
	if from == to {
		return nil, false, fmt.Errorf("%w: from and to currencies cannot be the same", ErrInvalidRequest)
	}
	if !from.IsSupported() || !to.IsSupported() {
		return nil, false, fmt.Errorf("%w: unknown currency", ErrInvalidRequest)
	}

	pair, added, err := s.store.Add(ctx, from, to)
	if err != nil {
		return nil, false, err
	}

	if added && s.onAdd != nil {
		s.onAdd(model.CurrencyPair{From: from, To: to})
	}
	return pair, added, nil
}

func (s *FavoritesService) RemoveFavorite(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, fmt.Errorf("%w: missing favorite id", ErrInvalidRequest)
	}
	return s.store.Remove(ctx, id)
}

func (s *FavoritesService) ListFavorites(ctx context.Context) ([]model.FavoritePair, error) {
	return s.store.List(ctx)
}
