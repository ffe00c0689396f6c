package ports

import (
	"context"

	"github.com/valam21/currency-converter/internal/domain/model"
)

// TableCache stores full rate tables keyed by their base currency.
type TableCache interface {
	Get(ctx context.Context, base model.Currency) (*model.RateTable, bool)
	Set(ctx context.Context, table *model.RateTable) error
	ClearExpired(ctx context.Context) error
}
