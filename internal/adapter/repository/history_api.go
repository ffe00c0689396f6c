package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/valam21/currency-converter/internal/domain/model"
	"github.com/valam21/currency-converter/pkg/logger"
)

// HistoryAPI fetches multi-day series from an upstream timeseries endpoint.
// Payload shape: {"base":"USD","rates":{"2024-01-02":{"EUR":0.91},...}}.
type HistoryAPI struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

type historyAPIResponse struct {
	Base  string                        `json:"base"`
	Rates map[string]map[string]float64 `json:"rates"`
}

func NewHistoryAPI(baseURL string, timeout time.Duration, log *logger.Logger) *HistoryAPI {
	return &HistoryAPI{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

func (h *HistoryAPI) Name() string {
	return "history-api"
}

func (h *HistoryAPI) FetchHistory(ctx context.Context, from, to model.Currency, days int) ([]model.RatePoint, error) {
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -days)

	url := fmt.Sprintf("%s?from=%s&to=%s&start_date=%s&end_date=%s",
		h.baseURL, from, to,
		start.Format("2006-01-02"), end.Format("2006-01-02"),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned non-OK status: %d", resp.StatusCode)
	}

	var apiResp historyAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(apiResp.Rates) == 0 {
		return nil, fmt.Errorf("malformed response: no rates")
	}

	points := make([]model.RatePoint, 0, len(apiResp.Rates))
	for date, byCurrency := range apiResp.Rates {
		rate, ok := byCurrency[to.String()]
		if !ok || rate <= 0 {
			continue
		}
		points = append(points, model.RatePoint{Date: date, Rate: rate})
	}

	if len(points) == 0 {
		return nil, fmt.Errorf("malformed response: no rates for %s", to)
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })

	return points, nil
}
