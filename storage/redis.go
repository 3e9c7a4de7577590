package storage

import (
	"context"
	"crypto/rand"
	"fmt"
	"storefront_server/structs"
	"strings"
	"sync"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
)

// RedisStore persists cart snapshots in redis with connection pooling and
// retry logic. It also backs the rate-limit counters.
type RedisStore struct {
	logger *gecho.Logger
	config *structs.Config
	client *redis.Client
}

func NewRedisStore(logger *gecho.Logger, cfg *structs.Config) *RedisStore {
	return &RedisStore{
		logger: logger,
		config: cfg,
		client: getRedisClient(cfg),
	}
}

// getRedisClient returns a singleton redis client with proper connection pooling
func getRedisClient(cfg *structs.Config) *redis.Client {
	redisOnce.Do(func() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Address,
			Username: cfg.Cache.Username,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,

			// Connection pool settings
			PoolSize:        cfg.Cache.PoolSize,
			MinIdleConns:    cfg.Cache.MinIdleConns,
			MaxIdleConns:    cfg.Cache.MaxIdleConns,
			PoolTimeout:     cfg.Cache.PoolTimeout,
			ConnMaxIdleTime: cfg.Cache.IdleTimeout,

			// Timeouts
			DialTimeout:  cfg.Cache.DialTimeout,
			ReadTimeout:  cfg.Cache.ReadTimeout,
			WriteTimeout: cfg.Cache.WriteTimeout,

			// Retry settings
			MaxRetries:      cfg.Cache.MaxRetries,
			MinRetryBackoff: cfg.Cache.MinRetryBackoff,
			MaxRetryBackoff: cfg.Cache.MaxRetryBackoff,
		})
	})
	return redisClient
}

func (rs *RedisStore) Load(ctx context.Context, key string) ([]byte, error) {
	var result []byte

	err := rs.withRetry(func() error {
		val, err := rs.client.Get(ctx, snapshotKey(key)).Bytes()
		if err == redis.Nil {
			return ErrSnapshotNotFound
		}
		if err != nil {
			return err
		}
		result = val
		return nil
	}, 3)

	if err != nil {
		return nil, err
	}

	return result, nil
}

func (rs *RedisStore) Save(ctx context.Context, key string, data []byte) error {
	return rs.withRetry(func() error {
		return rs.client.Set(ctx, snapshotKey(key), data, rs.config.Cart.SnapshotTTL).Err()
	}, 3)
}

func (rs *RedisStore) Delete(ctx context.Context, key string) error {
	return rs.withRetry(func() error {
		return rs.client.Del(ctx, snapshotKey(key)).Err()
	}, 3)
}

func (rs *RedisStore) Ping(ctx context.Context) error {
	return rs.withRetry(func() error {
		return rs.client.Ping(ctx).Err()
	}, 3)
}

// Close closes the redis connection pool
func (rs *RedisStore) Close() error {
	if redisClient != nil {
		return redisClient.Close()
	}
	return nil
}

// Increment atomically increments a counter, setting its expiry on the
// first increment. Used by the rate-limit middleware.
func (rs *RedisStore) Increment(ctx context.Context, key string, ttl time.Duration) (int, error) {
	var result int64

	err := rs.withRetry(func() error {
		val, err := rs.client.Incr(ctx, key).Result()
		if err != nil {
			return err
		}
		result = val

		if val == 1 {
			return rs.client.Expire(ctx, key, ttl).Err()
		}

		return nil
	}, 3)

	return int(result), err
}

// GetConnectionStats returns redis connection pool statistics
func (rs *RedisStore) GetConnectionStats() map[string]any {
	stats := rs.client.PoolStats()

	return map[string]any{
		"hits":        stats.Hits,
		"misses":      stats.Misses,
		"timeouts":    stats.Timeouts,
		"total_conns": stats.TotalConns,
		"idle_conns":  stats.IdleConns,
		"stale_conns": stats.StaleConns,
	}
}

func snapshotKey(key string) string {
	return fmt.Sprintf("cart:%s", key)
}

// withRetry executes a redis operation with exponential backoff retry logic
func (rs *RedisStore) withRetry(operation func() error, maxRetries int) error {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}

		lastErr = err

		// Don't retry on the last attempt
		if attempt == maxRetries {
			break
		}

		// Only retry on network/connection errors, not on logical errors
		// like a missing snapshot
		if !isRetryableError(err) {
			return err
		}

		maxBackoff := 2000 // max 2000ms = 2s
		base := 100        // 100ms base

		backoff := base * (1 << attempt) // exponential
		backoff = min(backoff, maxBackoff)

		// add jitter ±50%
		jitterBytes := make([]byte, 4)
		_, err = rand.Read(jitterBytes)
		if err != nil {
			// fallback to no jitter if random fails
			time.Sleep(time.Duration(backoff) * time.Millisecond)
			continue
		}
		jitter := int(uint32(jitterBytes[0])<<24 | uint32(jitterBytes[1])<<16 | uint32(jitterBytes[2])<<8 | uint32(jitterBytes[3]))

		jitter = jitter % (backoff/2 + 1)
		backoffWithJitter := backoff/2 + jitter

		time.Sleep(time.Duration(backoffWithJitter) * time.Millisecond)
	}

	rs.logger.Warn("Redis operation exhausted retries",
		gecho.Field("retries", maxRetries),
		gecho.Field("error", lastErr),
	)

	return fmt.Errorf("redis operation failed after %d retries: %w", maxRetries, lastErr)
}

// isRetryableError determines if an error is worth retrying
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	if err == redis.Nil || err == ErrSnapshotNotFound {
		return false
	}

	// Retry on network/connection errors
	errStr := err.Error()
	retryableErrors := []string{
		"connection refused",
		"connection reset",
		"timeout",
		"broken pipe",
		"no such host",
		"network is unreachable",
	}

	for _, retryableErr := range retryableErrors {
		if strings.Contains(errStr, retryableErr) {
			return true
		}
	}

	return false
}
