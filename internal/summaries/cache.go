package summaries

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const sharedWeeklyCacheKeyPrefix = "gymtrack::shared-weekly::"

// Cache keeps computed shared weekly summaries in redis for a short
// TTL. The shared view is the one both users open repeatedly, and it
// is the most expensive to compute.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
	}
}

// GetSharedWeekly returns the cached summary for the week, nil on a miss.
func (c *Cache) GetSharedWeekly(ctx context.Context, weekStart time.Time) (*SharedWeeklySummary, error) {
	cachedBytes, err := c.client.Get(ctx, sharedWeeklyCacheKey(weekStart)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var summary SharedWeeklySummary
	if err := json.Unmarshal(cachedBytes, &summary); err != nil {
		return nil, fmt.Errorf("unmarshal cached shared summary: %w", err)
	}

	return &summary, nil
}

func (c *Cache) SetSharedWeekly(ctx context.Context, summary *SharedWeeklySummary) error {
	summaryBytes, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("marshal shared summary: %w", err)
	}

	if err := c.client.Set(
		ctx,
		sharedWeeklyCacheKey(summary.WeekStart),
		summaryBytes,
		c.ttl,
	).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}

func sharedWeeklyCacheKey(weekStart time.Time) string {
	return sharedWeeklyCacheKeyPrefix + weekStart.Format(time.DateOnly)
}
