package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mentoria_engine/internal/model"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// IndicatorCache holds precomputed indicator sets. Indicator computation is
// read-only and cheap enough to run on demand; the cache only shortcuts the
// dashboard's repeated reads between weekly batches.
type IndicatorCache interface {
	Get(ctx context.Context, studentID uuid.UUID) (*model.Indicators, error)
	Set(ctx context.Context, ind *model.Indicators, ttl time.Duration) error
	Invalidate(ctx context.Context, studentIDs []uuid.UUID) error
}

type redisIndicatorCache struct {
	client *redis.Client
}

// NewRedisIndicatorCache wraps a redis client. A nil client yields a no-op
// cache, so callers never branch on "cache configured".
func NewRedisIndicatorCache(client *redis.Client) IndicatorCache {
	if client == nil {
		return noopIndicatorCache{}
	}
	return &redisIndicatorCache{client: client}
}

func indicatorKey(studentID uuid.UUID) string {
	return "indicators:" + studentID.String()
}

func (c *redisIndicatorCache) Get(ctx context.Context, studentID uuid.UUID) (*model.Indicators, error) {
	raw, err := c.client.Get(ctx, indicatorKey(studentID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("redisIndicatorCache.Get: %w", err)
	}
	var ind model.Indicators
	if err := json.Unmarshal(raw, &ind); err != nil {
		// A corrupt entry behaves like a miss.
		return nil, model.ErrNotFound
	}
	return &ind, nil
}

func (c *redisIndicatorCache) Set(ctx context.Context, ind *model.Indicators, ttl time.Duration) error {
	raw, err := json.Marshal(ind)
	if err != nil {
		return fmt.Errorf("redisIndicatorCache.Set: %w", err)
	}
	if err := c.client.Set(ctx, indicatorKey(ind.StudentID), raw, ttl).Err(); err != nil {
		return fmt.Errorf("redisIndicatorCache.Set: %w", err)
	}
	return nil
}

func (c *redisIndicatorCache) Invalidate(ctx context.Context, studentIDs []uuid.UUID) error {
	if len(studentIDs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(studentIDs))
	for _, id := range studentIDs {
		keys = append(keys, indicatorKey(id))
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redisIndicatorCache.Invalidate: %w", err)
	}
	return nil
}

type noopIndicatorCache struct{}

func (noopIndicatorCache) Get(ctx context.Context, studentID uuid.UUID) (*model.Indicators, error) {
	return nil, model.ErrNotFound
}

func (noopIndicatorCache) Set(ctx context.Context, ind *model.Indicators, ttl time.Duration) error {
	return nil
}

func (noopIndicatorCache) Invalidate(ctx context.Context, studentIDs []uuid.UUID) error {
	return nil
}
