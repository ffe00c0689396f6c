package ports

import (
	"context"

	"github.com/valam21/currency-converter/internal/domain/model"
)

type RateService interface {
	GetTable(ctx context.Context, base model.Currency) (*model.RateTable, error)
	GetRate(ctx context.Context, from, to model.Currency) (*model.RateQuote, error)
	Convert(ctx context.Context, from, to model.Currency, amount float64) (*model.ConversionResult, error)
}

type HistoryService interface {
	GetHistory(ctx context.Context, from, to model.Currency, days int) (*model.RateHistory, error)
}

type CatalogService interface {
	ListCurrencies(ctx context.Context) []model.CurrencyInfo
}

type FavoritesService interface {
	AddFavorite(ctx context.Context, from, to model.Currency) (*model.FavoritePair, bool, error)
	RemoveFavorite(ctx context.Context, id string) (bool, error)
	ListFavorites(ctx context.Context) ([]model.FavoritePair, error)
}
