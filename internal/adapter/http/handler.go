package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/valam21/currency-converter/internal/domain/model"
	"github.com/valam21/currency-converter/internal/domain/ports"
	"github.com/valam21/currency-converter/internal/metrics"
	"github.com/valam21/currency-converter/internal/service"
	"github.com/valam21/currency-converter/pkg/logger"
)

const defaultHistoryDays = 7

type Response struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

type Handler struct {
	rates     ports.RateService
	history   ports.HistoryService
	catalog   ports.CatalogService
	favorites ports.FavoritesService
	log       *logger.Logger
	metrics   *metrics.Metrics
}

func NewHandler(
	rates ports.RateService,
	history ports.HistoryService,
	catalog ports.CatalogService,
	favorites ports.FavoritesService,
	log *logger.Logger,
	metrics *metrics.Metrics,
) *Handler {
	return &Handler{
		rates:     rates,
		history:   history,
		catalog:   catalog,
		favorites: favorites,
		log:       log,
		metrics:   metrics,
	}
}

func (h *Handler) GetCurrenciesHandler(w http.ResponseWriter, r *http.Request) {
	h.sendSuccessResponse(w, h.catalog.ListCurrencies(r.Context()))
}

// GetRatesHandler serves a single quote when "to" is present, otherwise the
// whole cached table for the base.
func (h *Handler) GetRatesHandler(w http.ResponseWriter, r *http.Request) {
	h.metrics.RateRequestsTotal.Inc()

	from := model.Currency(r.URL.Query().Get("from"))
	to := model.Currency(r.URL.Query().Get("to"))

	if from == "" {
		from = model.USD
	}

	ctx := r.Context()

	if to == "" {
		table, err := h.rates.GetTable(ctx, from)
		if err != nil {
			h.handleServiceError(w, err)
			return
		}
		h.sendSuccessResponse(w, table)
		return
	}

	quote, err := h.rates.GetRate(ctx, from, to)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.sendSuccessResponse(w, quote)
}

func (h *Handler) ConvertHandler(w http.ResponseWriter, r *http.Request) {
	h.metrics.ConversionRequestsTotal.Inc()

	from := model.Currency(r.URL.Query().Get("from"))
	to := model.Currency(r.URL.Query().Get("to"))
	amountStr := r.URL.Query().Get("amount")

	if from == "" || to == "" {
		h.sendErrorResponse(w, http.StatusBadRequest, "missing required parameters: from and to")
		return
	}

	amount := 1.0
	if amountStr != "" {
		var err error
		amount, err = strconv.ParseFloat(amountStr, 64)
		if err != nil {
			h.sendErrorResponse(w, http.StatusBadRequest, "invalid amount parameter")
			return
		}
	}

	result, err := h.rates.Convert(r.Context(), from, to, amount)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.sendSuccessResponse(w, result)
}

func (h *Handler) GetHistoryHandler(w http.ResponseWriter, r *http.Request) {
	h.metrics.HistoricalRequestsTotal.Inc()

	from := model.Currency(r.URL.Query().Get("from"))
	to := model.Currency(r.URL.Query().Get("to"))
	daysStr := r.URL.Query().Get("days")

	if from == "" || to == "" {
		h.sendErrorResponse(w, http.StatusBadRequest, "missing required parameters: from and to")
		return
	}

	days := defaultHistoryDays
	if daysStr != "" {
		var err error
		days, err = strconv.Atoi(daysStr)
		if err != nil {
			h.sendErrorResponse(w, http.StatusBadRequest, "invalid days parameter, must be an integer")
			return
		}
	}

	history, err := h.history.GetHistory(r.Context(), from, to, days)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.sendSuccessResponse(w, history)
}

func (h *Handler) ListFavoritesHandler(w http.ResponseWriter, r *http.Request) {
	h.metrics.FavoriteRequestsTotal.Inc()

	favorites, err := h.favorites.ListFavorites(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.sendSuccessResponse(w, favorites)
}

type addFavoriteRequest struct {
	From model.Currency `json:"from"`
	To   model.Currency `json:"to"`
}

func (h *Handler) AddFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	h.metrics.FavoriteRequestsTotal.Inc()

	var req addFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.From == "" || req.To == "" {
		h.sendErrorResponse(w, http.StatusBadRequest, "missing required fields: from and to")
		return
	}

	pair, added, err := h.favorites.AddFavorite(r.Context(), req.From, req.To)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	// Duplicate or at-capacity adds are no-ops, not errors: report the
	// unchanged set.
	if !added {
		favorites, err := h.favorites.ListFavorites(r.Context())
		if err != nil {
			h.handleServiceError(w, err)
			return
		}
		h.sendSuccessResponse(w, favorites)
		return
	}

	h.sendResponse(w, http.StatusCreated, Response{Success: true, Data: pair})
}

func (h *Handler) RemoveFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	h.metrics.FavoriteRequestsTotal.Inc()

	id := r.PathValue("id")

	removed, err := h.favorites.RemoveFavorite(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	if !removed {
		h.sendErrorResponse(w, http.StatusNotFound, "favorite not found")
		return
	}

	h.sendSuccessResponse(w, map[string]string{"id": id})
}

func (h *Handler) sendResponse(w http.ResponseWriter, statusCode int, response Response) {
	response.Timestamp = time.Now().UnixMilli()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error("Failed to encode response", "error", err)
	}
}

func (h *Handler) sendSuccessResponse(w http.ResponseWriter, data interface{}) {
	h.sendResponse(w, http.StatusOK, Response{Success: true, Data: data})
}

func (h *Handler) sendErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	h.sendResponse(w, statusCode, Response{Success: false, Error: message})
}

func (h *Handler) handleServiceError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	errorMessage := "internal server error"

	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		statusCode = http.StatusBadRequest
		errorMessage = err.Error()
	case errors.Is(err, service.ErrRateUnavailable):
		statusCode = http.StatusNotFound
		errorMessage = err.Error()
	case errors.Is(err, model.ErrUnsupportedBase):
		statusCode = http.StatusNotFound
		errorMessage = err.Error()
	}

	h.log.Error("Service error", "error", err, "status_code", statusCode)
	h.sendErrorResponse(w, statusCode, errorMessage)
}
