package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/valam21/currency-converter/internal/domain/model"
	"github.com/valam21/currency-converter/internal/domain/ports"
	"github.com/valam21/currency-converter/pkg/logger"
)

var (
	ErrInvalidRequest  = errors.New("invalid request")
	ErrRateUnavailable = errors.New("exchange rate not available")
)

// RateService resolves point rates. Tables are cached per base currency, so
// one provider call serves every target sharing the same base; concurrent
// misses for one base collapse into a single chain invocation.
type RateService struct {
	resolver ports.TableResolver
	cache    ports.TableCache
	group    singleflight.Group
	log      *logger.Logger
}

func NewRateService(resolver ports.TableResolver, cache ports.TableCache, log *logger.Logger) *RateService {
	return &RateService{
		resolver: resolver,
		cache:    cache,
		log:      log,
	}
}

func (s *RateService) GetTable(ctx context.Context, base model.Currency) (*model.RateTable, error) {
	if !base.IsSupported() {
		return nil, fmt.Errorf("%w: unknown currency %q", ErrInvalidRequest, base)
	}

	if table, found := s.cache.Get(ctx, base); found {
		return table, nil
	}

	value, err, _ := s.group.Do(base.String(), func() (any, error) {
		// Another caller may have filled the cache while we queued.
		if table, found := s.cache.Get(ctx, base); found {
			return table, nil
		}

		s.log.Info("Resolving rate table", "base", base)
		table, err := s.resolver.ResolveTable(ctx, base)
		if err != nil {
			return nil, err
		}

		if err := s.cache.Set(ctx, table); err != nil {
			s.log.Error("Failed to cache rate table", "base", base, "error", err)
		}
		return table, nil
	})
	if err != nil {
		return nil, err
	}

	return value.(*model.RateTable), nil
}

func (s *RateService) GetRate(ctx context.Context, from, to model.Currency) (*model.RateQuote, error) {
	if from == to {
		return nil, fmt.Errorf("%w: from and to currencies cannot be the same", ErrInvalidRequest)
	}
	if !from.IsSupported() || !to.IsSupported() {
		return nil, fmt.Errorf("%w: unknown currency", ErrInvalidRequest)
	}

	table, err := s.GetTable(ctx, from)
	if err != nil {
		return nil, err
	}

	// A cached table is trusted until TTL expiry even when the target is
	// missing from it; absence is surfaced, not re-fetched.
	rate, found := table.Rates[to]
	if !found {
		return nil, fmt.Errorf("%w: no rate for %s", ErrRateUnavailable, to)
	}

	return &model.RateQuote{
		From:        from,
		To:          to,
		Rate:        rate,
		LastUpdated: table.FetchedAt,
	}, nil
}

func (s *RateService) Convert(ctx context.Context, from, to model.Currency, amount float64) (*model.ConversionResult, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidRequest)
	}

	quote, err := s.GetRate(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &model.ConversionResult{
		Amount:      amount * quote.Rate,
		Rate:        quote.Rate,
		LastUpdated: quote.LastUpdated,
	}, nil
}
