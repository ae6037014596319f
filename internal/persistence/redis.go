package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/config"
)

// Redis wraps the go-redis client.
type Redis struct {
	Client *redis.Client
}

// NewRedis connects to Redis using the provided configuration.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &Redis{Client: client}
}

// Close closes the client.
func (r *Redis) Close() {
	if r != nil && r.Client != nil {
		_ = r.Client.Close()
	}
}

// Ping verifies Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return errors.New("redis client not configured")
	}
	return r.Client.Ping(ctx).Err()
}

// ReportCache stores serialized report payloads keyed by dataset version.
type ReportCache struct {
	redis *Redis
}

// NewReportCache wraps a Redis connection as a report cache.
func NewReportCache(r *Redis) *ReportCache {
	return &ReportCache{redis: r}
}

// Get fetches a cached payload; ok is false on miss or unreachable cache.
func (c *ReportCache) Get(ctx context.Context, key string) (payload []byte, ok bool, err error) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return nil, false, nil
	}
	val, err := c.redis.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

// Set stores a payload with expiry.
func (c *ReportCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return nil
	}
	return c.redis.Client.Set(ctx, key, payload, ttl).Err()
}
