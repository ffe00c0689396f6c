package service

import (
	"context"
	"time"

	"github.com/valam21/currency-converter/internal/adapter/cache"
	"github.com/valam21/currency-converter/internal/domain/model"
	"github.com/valam21/currency-converter/pkg/logger"
)

const catalogCacheKey = "currencies"

// CatalogService serves the static currency catalog behind a long-lived
// cache. It never fails.
type CatalogService struct {
	cache *cache.Cache[[]model.CurrencyInfo]
}

func NewCatalogService(ttl time.Duration, log *logger.Logger) *CatalogService {
	return &CatalogService{
		cache: cache.New[[]model.CurrencyInfo](ttl, log),
	}
}

func (s *CatalogService) ListCurrencies(ctx context.Context) []model.CurrencyInfo {
	if currencies, found := s.cache.Get(catalogCacheKey); found {
		return currencies
	}

	currencies := model.Catalog()
	s.cache.Put(catalogCacheKey, currencies)
	return currencies
}
