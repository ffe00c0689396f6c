package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/valam21/currency-converter/internal/adapter/cache"
	"github.com/valam21/currency-converter/internal/adapter/favorites"
	httpRouter "github.com/valam21/currency-converter/internal/adapter/http"
	"github.com/valam21/currency-converter/internal/adapter/repository"
	"github.com/valam21/currency-converter/internal/config"
	"github.com/valam21/currency-converter/internal/domain/model"
	"github.com/valam21/currency-converter/internal/domain/ports"
	"github.com/valam21/currency-converter/internal/metrics"
	"github.com/valam21/currency-converter/internal/service"
	"github.com/valam21/currency-converter/pkg/debounce"
	"github.com/valam21/currency-converter/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	log := logger.NewLogger(os.Getenv("LOG_LEVEL"))
	log.Info("Starting currency converter service")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	appMetrics := metrics.NewMetrics()

	var tableCache ports.TableCache
	switch cfg.Cache.Backend {
	case "redis":
		redisCache := cache.NewRedisTableCache(cache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cfg.Cache.RateTTL, log)
		defer redisCache.Close()
		tableCache = redisCache
	default:
		tableCache = cache.NewMemoryTableCache(cfg.Cache.RateTTL, log)
	}

	chain := repository.NewChain(log, appMetrics.ProviderFallbacksTotal,
		repository.NewExchangeAPI(
			cfg.ExchangeAPI.BaseURL,
			cfg.ExchangeAPI.APIKey,
			cfg.ExchangeAPI.Timeout,
			log,
		),
		repository.NewSynthetic(log),
	)

	rateService := service.NewRateService(chain, tableCache, log)

	var historyProvider ports.HistoryProvider
	if cfg.HistoryAPI.BaseURL != "" {
		historyProvider = repository.NewHistoryAPI(cfg.HistoryAPI.BaseURL, cfg.HistoryAPI.Timeout, log)
	}
	historyService := service.NewHistoryService(historyProvider, cfg.Cache.HistoryTTL, log)

	catalogService := service.NewCatalogService(cfg.Cache.CatalogTTL, log)

	favoriteStore, err := favorites.NewFileStore(cfg.Favorites.Path, log)
	if err != nil {
		log.Error("Failed to open favorites store", "error", err)
		os.Exit(1)
	}

	// Bursts of favorite additions collapse into one prewarm of the last
	// pair's base table once the user settles.
	warm := debounce.New(cfg.Debounce.Window, func(pair model.CurrencyPair) {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ExchangeAPI.Timeout)
		defer cancel()
		if _, err := rateService.GetTable(ctx, pair.From); err != nil {
			log.Warn("Failed to prewarm rate table", "base", pair.From, "error", err)
		}
	})
	defer warm.Stop()

	favoritesService := service.NewFavoritesService(favoriteStore, warm.Call, log)

	handler := httpRouter.NewHandler(rateService, historyService, catalogService, favoritesService, log, appMetrics)
	router := httpRouter.NewRouter(handler, log, appMetrics)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router.SetupRoutes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	janitorCtx, cancelJanitor := context.WithCancel(context.Background())
	go runJanitor(janitorCtx, cfg.Cache.SweepInterval, tableCache, historyService, rateService, log)

	go func() {
		log.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	cancelJanitor()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}

// runJanitor prewarms the USD table, then periodically sweeps expired cache
// entries.
func runJanitor(
	ctx context.Context,
	interval time.Duration,
	tableCache ports.TableCache,
	history *service.HistoryService,
	rates *service.RateService,
	log *logger.Logger,
) {
	if _, err := rates.GetTable(ctx, model.USD); err != nil {
		log.Warn("Failed to prewarm USD rate table", "error", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := tableCache.ClearExpired(ctx); err != nil {
				log.Error("Failed to clear expired rate tables", "error", err)
			}
			history.ClearExpired()
		case <-ctx.Done():
			log.Info("Stopping cache janitor")
			return
		}
	}
}
