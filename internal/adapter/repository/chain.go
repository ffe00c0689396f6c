package repository

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/valam21/currency-converter/internal/domain/model"
	"github.com/valam21/currency-converter/internal/domain/ports"
	"github.com/valam21/currency-converter/pkg/logger"
)

// Chain tries providers in order and returns the first table produced.
// Failures are logged and absorbed; with the synthetic provider last, the
// only error that can escape is an unsupported base.
type Chain struct {
	providers []ports.RateProvider
	fallbacks prometheus.Counter
	log       *logger.Logger
}

func NewChain(log *logger.Logger, fallbacks prometheus.Counter, providers ...ports.RateProvider) *Chain {
	return &Chain{
		providers: providers,
		fallbacks: fallbacks,
		log:       log,
	}
}

func (c *Chain) ResolveTable(ctx context.Context, base model.Currency) (*model.RateTable, error) {
	var lastErr error

	for _, provider := range c.providers {
		table, err := provider.FetchTable(ctx, base)
		if err != nil {
			c.log.Warn("Rate provider failed, falling through",
				"provider", provider.Name(),
				"base", base,
				"error", err,
			)
			c.fallbacks.Inc()
			lastErr = err
			continue
		}
		return table, nil
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no rate providers configured")
	}
	return nil, lastErr
}
