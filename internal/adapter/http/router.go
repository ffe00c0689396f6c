package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/valam21/currency-converter/internal/metrics"
	"github.com/valam21/currency-converter/pkg/logger"
)

type Router struct {
	handler *Handler
	log     *logger.Logger
	metrics *metrics.Metrics
}

func NewRouter(handler *Handler, log *logger.Logger, metrics *metrics.Metrics) *Router {
	return &Router{
		handler: handler,
		log:     log,
		metrics: metrics,
	}
}

func (r *Router) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()

		crw := &customResponseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(crw, req)

		if req.URL.Path != "/metrics" {
			duration := time.Since(start).Seconds()
			r.metrics.HTTPRequestDuration.WithLabelValues(req.URL.Path, req.Method).Observe(duration)
			r.metrics.HTTPRequestsTotal.WithLabelValues(req.URL.Path, req.Method, fmt.Sprintf("%dxx", crw.statusCode/100)).Inc()
		}

		r.log.Info("HTTP request",
			"method", req.Method,
			"path", req.URL.Path,
			"query", req.URL.RawQuery,
			"status", crw.statusCode,
			"duration", time.Since(start),
			"remote_addr", req.RemoteAddr,
			"user_agent", req.UserAgent(),
		)
	})
}

type customResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (crw *customResponseWriter) WriteHeader(code int) {
	crw.statusCode = code
	crw.ResponseWriter.WriteHeader(code)
}

func (r *Router) SetupRoutes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/currencies", r.handler.GetCurrenciesHandler)
	mux.HandleFunc("GET /api/v1/rates", r.handler.GetRatesHandler)
	mux.HandleFunc("GET /api/v1/convert", r.handler.ConvertHandler)
	mux.HandleFunc("GET /api/v1/history", r.handler.GetHistoryHandler)
	mux.HandleFunc("GET /api/v1/favorites", r.handler.ListFavoritesHandler)
	mux.HandleFunc("POST /api/v1/favorites", r.handler.AddFavoriteHandler)
	mux.HandleFunc("DELETE /api/v1/favorites/{id}", r.handler.RemoveFavoriteHandler)

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	apiWithMiddleware := r.loggingMiddleware(mux)

	rootMux := http.NewServeMux()

	rootMux.Handle("/", apiWithMiddleware)
	rootMux.Handle("/metrics", promhttp.Handler())

	return rootMux
}
