package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/egest-app/egest/internal/domain/compliance"
	vo "github.com/egest-app/egest/internal/domain/compliance/valueobjects"
	"github.com/egest-app/egest/internal/shared/biztime"
	"github.com/egest-app/egest/internal/shared/logger"
)

const (
	// Key format: egest:compliance:status:{entityType}:{entityID}:{yyyymmdd}
	// The date is the business date the status was evaluated on.
	statusKeyPrefix = "egest:compliance:status:"

	statusDateLayout = "20060102"

	// DefaultStatusTTL applies when the configured TTL is not positive.
	DefaultStatusTTL = time.Hour

	scanBatchSize = 100
)

// StatusCache stores evaluated compliance statuses. Get returns nil, nil on a miss.
type StatusCache interface {
	Get(ctx context.Context, entityType vo.EntityType, entityID string) (*compliance.ComplianceStatus, error)
	Set(ctx context.Context, status *compliance.ComplianceStatus) error
	Delete(ctx context.Context, entityType vo.EntityType, entityID string) error
}

// RedisStatusCache keys entries by business date and caps every TTL at the
// next business midnight, so a cached classification never outlives the day
// it was computed for.
type RedisStatusCache struct {
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time
	logger logger.Interface
}

func NewRedisStatusCache(client *redis.Client, ttl time.Duration, log logger.Interface) *RedisStatusCache {
	if ttl <= 0 {
		ttl = DefaultStatusTTL
	}
	return &RedisStatusCache{
		client: client,
		ttl:    ttl,
		now:    biztime.NowUTC,
		logger: log,
	}
}

// WithClock replaces the time source. Used by tests.
func (c *RedisStatusCache) WithClock(now func() time.Time) *RedisStatusCache {
	c.now = now
	return c
}

func (c *RedisStatusCache) Get(ctx context.Context, entityType vo.EntityType, entityID string) (*compliance.ComplianceStatus, error) {
	key := statusKey(entityType, entityID, c.now())

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get compliance status from redis: %w", err)
	}

	var status compliance.ComplianceStatus
	if err := json.Unmarshal(data, &status); err != nil {
		// A corrupt entry is treated as a miss and removed.
		c.logger.Warnw("discarding unreadable cached compliance status",
			"key", key,
			"error", err,
		)
		_ = c.client.Del(ctx, key).Err()
		return nil, nil
	}
	return &status, nil
}

func (c *RedisStatusCache) Set(ctx context.Context, status *compliance.ComplianceStatus) error {
	if status == nil {
		return errors.New("status cannot be nil")
	}

	now := c.now()
	ttl := c.ttl
	if untilMidnight := biztime.NextMidnightUTC(now).Sub(now); untilMidnight < ttl {
		ttl = untilMidnight
	}
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("failed to marshal compliance status: %w", err)
	}

	key := statusKey(status.EntityType, status.EntityID, now)
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store compliance status in redis: %w", err)
	}
	return nil
}

// Delete removes every cached day of the entity.
func (c *RedisStatusCache) Delete(ctx context.Context, entityType vo.EntityType, entityID string) error {
	pattern := statusKeyPrefix + entityType.String() + ":" + entityID + ":*"

	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, scanBatchSize).Result()
		if err != nil {
			return fmt.Errorf("failed to scan cached compliance statuses: %w", err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to delete cached compliance statuses: %w", err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

func statusKey(entityType vo.EntityType, entityID string, now time.Time) string {
	return statusKeyPrefix + entityType.String() + ":" + entityID + ":" + biztime.DateOf(now).Format(statusDateLayout)
}

// NoopStatusCache is used when redis is disabled.
type NoopStatusCache struct{}

func NewNoopStatusCache() *NoopStatusCache {
	return &NoopStatusCache{}
}

func (NoopStatusCache) Get(context.Context, vo.EntityType, string) (*compliance.ComplianceStatus, error) {
	return nil, nil
}

func (NoopStatusCache) Set(context.Context, *compliance.ComplianceStatus) error {
	return nil
}

func (NoopStatusCache) Delete(context.Context, vo.EntityType, string) error {
	return nil
}
