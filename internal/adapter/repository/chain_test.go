package repository

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valam21/currency-converter/internal/domain/model"
	"github.com/valam21/currency-converter/pkg/logger"
)

func newFallbackCounter() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{Name: "test_fallbacks_total"})
}

func TestChain_PrimarySuccess(t *testing.T) {
	log := logger.NewLogger("error")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"base":"USD","rates":{"USD":1,"EUR":0.91}}`))
	}))
	defer server.Close()

	chain := NewChain(log, newFallbackCounter(),
		NewExchangeAPI(server.URL, "", time.Second, log),
		NewSynthetic(log),
	)

	table, err := chain.ResolveTable(context.Background(), model.USD)
	require.NoError(t, err)
	assert.Equal(t, 0.91, table.Rates[model.EUR])
}

func TestChain_FallsBackToSyntheticOnFailure(t *testing.T) {
	log := logger.NewLogger("error")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	chain := NewChain(log, newFallbackCounter(),
		NewExchangeAPI(server.URL, "", time.Second, log),
		NewSynthetic(log),
	)

	// Every supported synthetic base must terminate in a table, never an
	// error, even with the network down.
	for base := range map[model.Currency]struct{}{"USD": {}, "EUR": {}, "GBP": {}, "JPY": {}, "INR": {}} {
		table, err := chain.ResolveTable(context.Background(), base)
		require.NoError(t, err, "base %s", base)
		assert.Equal(t, base, table.Base)
		assert.InDelta(t, 1.0, table.Rates[base], 1e-9, "rates[base] must be 1 for %s", base)
		for currency, rate := range table.Rates {
			assert.Greater(t, rate, 0.0, "rate for %s must be positive", currency)
		}
	}
}

func TestChain_UnsupportedBase(t *testing.T) {
	log := logger.NewLogger("error")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	chain := NewChain(log, newFallbackCounter(),
		NewExchangeAPI(server.URL, "", time.Second, log),
		NewSynthetic(log),
	)

	// TRY is in the catalog but not in the synthetic terminal table.
	_, err := chain.ResolveTable(context.Background(), model.Currency("TRY"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrUnsupportedBase))
}

func TestSynthetic_Reprojection(t *testing.T) {
	log := logger.NewLogger("error")
	synthetic := NewSynthetic(log)

	table, err := synthetic.FetchTable(context.Background(), model.EUR)
	require.NoError(t, err)

	// USD-denominated 0.85 EUR per USD reprojects to 1/0.85 USD per EUR.
	assert.InDelta(t, 1.0, table.Rates[model.EUR], 1e-9)
	assert.InDelta(t, 1/0.85, table.Rates[model.USD], 1e-9)
	assert.InDelta(t, 110.0/0.85, table.Rates[model.JPY], 1e-9)
}
