package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valam21/currency-converter/internal/domain/model"
	"github.com/valam21/currency-converter/pkg/logger"
)

func TestExchangeAPI_FetchTable(t *testing.T) {
	log := logger.NewLogger("error")

	testCases := []struct {
		name        string
		handler     http.HandlerFunc
		expectError bool
		expectEUR   float64
	}{
		{
			name: "Success - well-formed table",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"base":"USD","rates":{"USD":1,"EUR":0.85,"GBP":0.73}}`))
			},
			expectError: false,
			expectEUR:   0.85,
		},
		{
			name: "Error - non-2xx status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
			expectError: true,
		},
		{
			name: "Error - malformed JSON",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"base":`))
			},
			expectError: true,
		},
		{
			name: "Error - missing rates",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"base":"USD","rates":{}}`))
			},
			expectError: true,
		},
		{
			name: "Error - only non-positive rates",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"base":"USD","rates":{"EUR":-1,"GBP":0}}`))
			},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			api := NewExchangeAPI(server.URL, "", 2*time.Second, log)
			table, err := api.FetchTable(context.Background(), model.USD)

			if tc.expectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, model.USD, table.Base)
			assert.Equal(t, tc.expectEUR, table.Rates[model.EUR])
			assert.False(t, table.FetchedAt.IsZero())
		})
	}
}

func TestExchangeAPI_DropsNonPositiveRates(t *testing.T) {
	log := logger.NewLogger("error")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"base":"USD","rates":{"EUR":0.85,"BAD":-3}}`))
	}))
	defer server.Close()

	api := NewExchangeAPI(server.URL, "", 2*time.Second, log)
	table, err := api.FetchTable(context.Background(), model.USD)

	require.NoError(t, err)
	assert.Contains(t, table.Rates, model.EUR)
	assert.NotContains(t, table.Rates, model.Currency("BAD"))
}

func TestExchangeAPI_TransportError(t *testing.T) {
	log := logger.NewLogger("error")

	// Point at a server that is already closed.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	api := NewExchangeAPI(server.URL, "", time.Second, log)
	_, err := api.FetchTable(context.Background(), model.USD)
	require.Error(t, err)
}
