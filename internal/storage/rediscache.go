// SPDX-License-Identifier: MIT

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/AhmedFarag1/go-clean-code/internal/staff"
)

// RedisConfig holds Redis connection settings for the read-through cache.
type RedisConfig struct {
	Addr     string // Redis server address (host:port)
	Password string // optional
	DB       int
	TTL      time.Duration // per-record cache lifetime
}

// CachedStore is a read-through cache decorator around another Store.
// Gets are served from Redis when possible; mutations write through to the
// backing store and invalidate the cached record. Cache failures degrade to
// the backing store and are logged, never surfaced to the caller.
type CachedStore struct {
	next   Store
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewCachedStore connects to Redis and wraps next with the cache decorator.
func NewCachedStore(next Store, cfg RedisConfig, logger zerolog.Logger) (*CachedStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	logger.Info().
		Str("addr", cfg.Addr).
		Int("db", cfg.DB).
		Dur("ttl", ttl).
		Msg("connected to redis cache")

	return &CachedStore{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}, nil
}

func cacheKey(id string) string {
	return "employee:" + id
}

// Put writes through to the backing store and refreshes the cached record.
func (c *CachedStore) Put(ctx context.Context, employee staff.Employee) error {
	if err := c.next.Put(ctx, employee); err != nil {
		return err
	}
	data, err := json.Marshal(employee)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", cacheKey(employee.ID)).Msg("cache encode failed")
		return nil
	}
	if err := c.client.Set(ctx, cacheKey(employee.ID), data, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Str("key", cacheKey(employee.ID)).Msg("cache set failed")
	}
	return nil
}

// Get serves from the cache when possible and falls back to the backing store.
func (c *CachedStore) Get(ctx context.Context, id string) (staff.Employee, error) {
	val, err := c.client.Get(ctx, cacheKey(id)).Bytes()
	if err == nil {
		var employee staff.Employee
		if err := json.Unmarshal(val, &employee); err == nil {
			return employee, nil
		}
		c.logger.Warn().Str("key", cacheKey(id)).Msg("cache decode failed, falling back")
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn().Err(err).Str("key", cacheKey(id)).Msg("cache get failed, falling back")
	}

	employee, err := c.next.Get(ctx, id)
	if err != nil {
		return staff.Employee{}, err
	}
	if data, err := json.Marshal(employee); err == nil {
		if err := c.client.Set(ctx, cacheKey(id), data, c.ttl).Err(); err != nil {
			c.logger.Warn().Err(err).Str("key", cacheKey(id)).Msg("cache fill failed")
		}
	}
	return employee, nil
}

// List always goes to the backing store; the collection is not cached.
func (c *CachedStore) List(ctx context.Context) ([]staff.Employee, error) {
	return c.next.List(ctx)
}

// Delete writes through and invalidates the cached record. If the
// invalidation fails, the deleted record can stay readable from the cache
// until its TTL expires; the TTL bounds that staleness window.
func (c *CachedStore) Delete(ctx context.Context, id string) error {
	if err := c.next.Delete(ctx, id); err != nil {
		return err
	}
	if err := c.client.Del(ctx, cacheKey(id)).Err(); err != nil {
		c.logger.Warn().Err(err).Str("key", cacheKey(id)).Msg("cache invalidate failed")
	}
	return nil
}

// Ping checks the backing store; Redis being down is a degradation, not an outage.
func (c *CachedStore) Ping(ctx context.Context) error {
	return c.next.Ping(ctx)
}

// Close closes the Redis client and the backing store.
func (c *CachedStore) Close() error {
	cerr := c.client.Close()
	if err := c.next.Close(); err != nil {
		return err
	}
	return cerr
}
