package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/valam21/currency-converter/internal/domain/model"
	"github.com/valam21/currency-converter/pkg/logger"
)

// RedisConfig carries connection settings for the redis table cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RedisTableCache stores rate tables in redis with a native TTL, so expiry
// needs no sweeping on our side.
type RedisTableCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

func NewRedisTableCache(cfg RedisConfig, ttl time.Duration, log *logger.Logger) *RedisTableCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &RedisTableCache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

func tableKey(base model.Currency) string {
	return fmt.Sprintf("rates:%s", base)
}

func (c *RedisTableCache) Get(ctx context.Context, base model.Currency) (*model.RateTable, bool) {
	raw, err := c.client.Get(ctx, tableKey(base)).Bytes()
	if err == redis.Nil {
		c.log.Debug("Cache miss", "key", tableKey(base))
		return nil, false
	}
	if err != nil {
		c.log.Warn("Redis get failed, treating as miss", "key", tableKey(base), "error", err)
		return nil, false
	}

	var table model.RateTable
	if err := json.Unmarshal(raw, &table); err != nil {
		c.log.Warn("Corrupt cache entry, treating as miss", "key", tableKey(base), "error", err)
		return nil, false
	}

	c.log.Debug("Cache hit", "key", tableKey(base))
	return &table, true
}

func (c *RedisTableCache) Set(ctx context.Context, table *model.RateTable) error {
	raw, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("failed to encode rate table: %w", err)
	}

	if err := c.client.Set(ctx, tableKey(table.Base), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store rate table: %w", err)
	}

	return nil
}

// ClearExpired is a no-op; redis evicts on its own TTL.
func (c *RedisTableCache) ClearExpired(ctx context.Context) error {
	return nil
}

func (c *RedisTableCache) Close() error {
	return c.client.Close()
}
