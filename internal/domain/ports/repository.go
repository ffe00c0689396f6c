package ports

import (
	"context"

	"github.com/valam21/currency-converter/internal/domain/model"
)

// RateProvider is a single source of full rate tables.
type RateProvider interface {
	Name() string
	FetchTable(ctx context.Context, base model.Currency) (*model.RateTable, error)
}

// TableResolver produces a rate table for a base currency, falling through an
// ordered list of providers. It only fails when the base is unknown to every
// tier, including the terminal synthetic one.
type TableResolver interface {
	ResolveTable(ctx context.Context, base model.Currency) (*model.RateTable, error)
}

// HistoryProvider is a live source of multi-day rate series.
type HistoryProvider interface {
	Name() string
	FetchHistory(ctx context.Context, from, to model.Currency, days int) ([]model.RatePoint, error)
}

// FavoriteStore persists the ordered favorites set across restarts.
type FavoriteStore interface {
	// Add inserts the pair unless it already exists or the set is at
	// capacity; the bool reports whether an insert happened.
	Add(ctx context.Context, from, to model.Currency) (*model.FavoritePair, bool, error)
	Remove(ctx context.Context, id string) (bool, error)
	Has(ctx context.Context, from, to model.Currency) (bool, error)
	List(ctx context.Context) ([]model.FavoritePair, error)
}
