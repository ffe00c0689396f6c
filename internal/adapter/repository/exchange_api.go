package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/valam21/currency-converter/internal/domain/model"
	"github.com/valam21/currency-converter/pkg/logger"
)

// ExchangeAPI fetches full rate tables from an upstream HTTP provider.
// The expected payload is {"base": "...", "rates": {"EUR": 0.85, ...}};
// anything else counts as a provider failure.
type ExchangeAPI struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *logger.Logger
}

type exchangeAPIResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

func NewExchangeAPI(baseURL, apiKey string, timeout time.Duration, log *logger.Logger) *ExchangeAPI {
	return &ExchangeAPI{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

func (e *ExchangeAPI) Name() string {
	return "exchange-api"
}

func (e *ExchangeAPI) FetchTable(ctx context.Context, base model.Currency) (*model.RateTable, error) {
	url := fmt.Sprintf("%s/%s", e.baseURL, base)
	if e.apiKey != "" {
		url += "?access_key=" + e.apiKey
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned non-OK status: %d", resp.StatusCode)
	}

	var apiResp exchangeAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if apiResp.Base == "" || len(apiResp.Rates) == 0 {
		return nil, fmt.Errorf("malformed response: missing base or rates")
	}

	rates := make(map[model.Currency]float64, len(apiResp.Rates))
	for code, rate := range apiResp.Rates {
		if rate <= 0 {
			e.log.Debug("Dropping non-positive rate", "currency", code, "rate", rate)
			continue
		}
		rates[model.Currency(code)] = rate
	}

	if len(rates) == 0 {
		return nil, fmt.Errorf("malformed response: no usable rates")
	}

	return &model.RateTable{
		Base:      base,
		Rates:     rates,
		FetchedAt: time.Now(),
	}, nil
}
