package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server      ServerConfig
	ExchangeAPI ExchangeAPIConfig
	HistoryAPI  HistoryAPIConfig
	Cache       CacheConfig
	Redis       RedisConfig
	Favorites   FavoritesConfig
	Debounce    DebounceConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type ExchangeAPIConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type HistoryAPIConfig struct {
	// BaseURL empty means no live history provider is configured and every
	// series is generated synthetically.
	BaseURL string
	Timeout time.Duration
}

type CacheConfig struct {
	// Backend is "memory" or "redis"; only the rate-table cache is
	// swappable, the history and catalog caches are always in-process.
	Backend       string
	RateTTL       time.Duration
	HistoryTTL    time.Duration
	CatalogTTL    time.Duration
	SweepInterval time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type FavoritesConfig struct {
	Path string
}

type DebounceConfig struct {
	Window time.Duration
}

func LoadConfig() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnvInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 5*time.Second),
			WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getEnvDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
		},
		ExchangeAPI: ExchangeAPIConfig{
			BaseURL: getEnvString("EXCHANGE_API_BASE_URL", "https://api.exchangerate-api.com/v4/latest"),
			APIKey:  getEnvString("EXCHANGE_API_KEY", ""),
			Timeout: getEnvDuration("EXCHANGE_API_TIMEOUT", 10*time.Second),
		},
		HistoryAPI: HistoryAPIConfig{
			BaseURL: getEnvString("HISTORY_API_BASE_URL", ""),
			Timeout: getEnvDuration("HISTORY_API_TIMEOUT", 10*time.Second),
		},
		Cache: CacheConfig{
			Backend:       getEnvString("CACHE_BACKEND", "memory"),
			RateTTL:       getEnvDuration("RATE_CACHE_TTL", 15*time.Minute),
			HistoryTTL:    getEnvDuration("HISTORY_CACHE_TTL", 1*time.Hour),
			CatalogTTL:    getEnvDuration("CATALOG_CACHE_TTL", 24*time.Hour),
			SweepInterval: getEnvDuration("CACHE_SWEEP_INTERVAL", 5*time.Minute),
		},
		Redis: RedisConfig{
			Addr:     getEnvString("REDIS_ADDR", "localhost:6379"),
			Password: getEnvString("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Favorites: FavoritesConfig{
			Path: getEnvString("FAVORITES_PATH", "data/favorites.json"),
		},
		Debounce: DebounceConfig{
			Window: getEnvDuration("DEBOUNCE_WINDOW", 500*time.Millisecond),
		},
	}

	if config.Cache.Backend != "memory" && config.Cache.Backend != "redis" {
		return nil, fmt.Errorf("invalid CACHE_BACKEND %q, want memory or redis", config.Cache.Backend)
	}

	return config, nil
}

func getEnvString(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		fmt.Printf("Warning: Invalid value for %s, using default: %d\n", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		fmt.Printf("Warning: Invalid duration for %s, using default: %s\n", key, defaultValue)
		return defaultValue
	}

	return value
}
