package service

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/valam21/currency-converter/internal/adapter/cache"
	"github.com/valam21/currency-converter/internal/domain/model"
	"github.com/valam21/currency-converter/internal/domain/ports"
	"github.com/valam21/currency-converter/pkg/logger"
)

const (
	MinHistoryDays = 1
	MaxHistoryDays = 30
)

// syntheticBaseRates anchors synthetic series for common pairs; other pairs
// draw a base uniformly from [0.5, 2.5].
var syntheticBaseRates = map[string]float64{
	"USD_EUR": 0.85,
	"EUR_USD": 1.18,
	"USD_GBP": 0.73,
	"GBP_USD": 1.37,
	"USD_JPY": 110.0,
	"JPY_USD": 0.009,
}

// HistoryService resolves multi-day series, cached per exact (from, to,
// days) query. A live provider is optional; its failures degrade to the
// synthetic random-walk generator and are never surfaced.
type HistoryService struct {
	provider ports.HistoryProvider
	cache    *cache.Cache[*model.RateHistory]
	now      func() time.Time
	log      *logger.Logger
}

func NewHistoryService(provider ports.HistoryProvider, ttl time.Duration, log *logger.Logger) *HistoryService {
	return &HistoryService{
		provider: provider,
		cache:    cache.New[*model.RateHistory](ttl, log),
		now:      time.Now,
		log:      log,
	}
}

// WithClock replaces the service's clock. Intended for tests.
func (s *HistoryService) WithClock(now func() time.Time) *HistoryService {
	s.now = now
	s.cache.WithClock(now)
	return s
}

func (s *HistoryService) GetHistory(ctx context.Context, from, to model.Currency, days int) (*model.RateHistory, error) {
	if days < MinHistoryDays || days > MaxHistoryDays {
		return nil, fmt.Errorf("%w: days must be between %d and %d, got %d",
			ErrInvalidRequest, MinHistoryDays, MaxHistoryDays, days)
	}
	if from == to {
		return nil, fmt.Errorf("%w: from and to currencies cannot be the same", ErrInvalidRequest)
	}
	if !from.IsSupported() || !to.IsSupported() {
		return nil, fmt.Errorf("%w: unknown currency", ErrInvalidRequest)
	}

	key := fmt.Sprintf("history_%s_%s_%d", from, to, days)
	if history, found := s.cache.Get(key); found {
		return history, nil
	}

	history := &model.RateHistory{
		From:   from,
		To:     to,
		Points: s.resolvePoints(ctx, from, to, days),
		Period: fmt.Sprintf("%d days", days),
	}

	s.cache.Put(key, history)
	return history, nil
}

func (s *HistoryService) resolvePoints(ctx context.Context, from, to model.Currency, days int) []model.RatePoint {
	if s.provider != nil {
		points, err := s.provider.FetchHistory(ctx, from, to, days)
		if err == nil && len(points) == days+1 {
			return points
		}
		if err != nil {
			s.log.Warn("History provider failed, generating synthetic series",
				"provider", s.provider.Name(), "error", err)
		} else {
			s.log.Warn("History provider returned wrong series length, generating synthetic series",
				"provider", s.provider.Name(), "got", len(points), "want", days+1)
		}
	}

	return s.generateSeries(from, to, days)
}

// generateSeries produces days+1 points ending today: a pair-specific base
// rate perturbed by independent uniform noise of up to ±5% per day.
func (s *HistoryService) generateSeries(from, to model.Currency, days int) []model.RatePoint {
	pair := model.CurrencyPair{From: from, To: to}

	baseRate, known := syntheticBaseRates[pair.String()]
	if !known {
		baseRate = 0.5 + rand.Float64()*2.0
	}

	today := s.now().UTC()
	points := make([]model.RatePoint, 0, days+1)

	for i := days; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)
		variation := (rand.Float64() - 0.5) * 0.1
		rate := baseRate + baseRate*variation

		points = append(points, model.RatePoint{
			Date: date.Format("2006-01-02"),
			Rate: math.Round(rate*10000) / 10000,
		})
	}

	return points
}

// ClearExpired sweeps the history cache.
func (s *HistoryService) ClearExpired() int {
	return s.cache.InvalidateExpired()
}
