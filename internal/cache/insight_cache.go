package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"healthmate/internal/model"
)

// InsightCache keeps recently read insights in Redis so repeated report views
// skip the database. Entries are invalidated whenever a new analysis run
// writes a fresh insight for the file.
type InsightCache struct {
	client *redisv9.Client
	ttl    time.Duration
}

func NewInsightCache(client *redisv9.Client, ttl time.Duration) *InsightCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &InsightCache{client: client, ttl: ttl}
}

func (c *InsightCache) Get(ctx context.Context, fileID uint) (*model.Insight, bool, error) {
	raw, err := c.client.Get(ctx, c.key(fileID)).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get insight failed: %w", err)
	}

	var insight model.Insight
	if err := json.Unmarshal([]byte(raw), &insight); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached insight failed: %w", err)
	}
	return &insight, true, nil
}

func (c *InsightCache) Set(ctx context.Context, fileID uint, insight *model.Insight) error {
	payload, err := json.Marshal(insight)
	if err != nil {
		return fmt.Errorf("marshal insight cache failed: %w", err)
	}
	if err := c.client.Set(ctx, c.key(fileID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set insight failed: %w", err)
	}
	return nil
}

func (c *InsightCache) Delete(ctx context.Context, fileID uint) error {
	if err := c.client.Del(ctx, c.key(fileID)).Err(); err != nil {
		return fmt.Errorf("redis delete insight failed: %w", err)
	}
	return nil
}

func (c *InsightCache) key(fileID uint) string {
	return fmt.Sprintf("insight:file:%d", fileID)
}
