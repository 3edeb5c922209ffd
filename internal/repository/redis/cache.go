package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/silverkeytech/Teddy-recommendation-system/domain"

	"github.com/redis/go-redis/v9"
)

// RecommendationCache keeps recently served result lists in Redis with a
// short TTL. A miss or a Redis error both mean "recompute"; the cache is
// never allowed to fail a request.
type RecommendationCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRecommendationCache(client *redis.Client, ttl time.Duration) *RecommendationCache {
	return &RecommendationCache{
		client: client,
		ttl:    ttl,
	}
}

func cacheKey(userID uint, n int) string {
	return fmt.Sprintf("reco:user:%d:n:%d", userID, n)
}

func (c *RecommendationCache) Get(ctx context.Context, userID uint, n int) ([]domain.Recommendation, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	val, err := c.client.Get(ctx, cacheKey(userID, n)).Result()
	if err != nil {
		return nil, false
	}

	var recs []domain.Recommendation
	if err := json.Unmarshal([]byte(val), &recs); err != nil {
		return nil, false
	}

	return recs, true
}

func (c *RecommendationCache) Set(ctx context.Context, userID uint, n int, recs []domain.Recommendation) error {
	if c == nil || c.client == nil {
		return nil
	}

	raw, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	if err := c.client.Set(ctx, cacheKey(userID, n), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache recommendations: %w", err)
	}

	return nil
}

// Invalidate drops every cached window for a user, called after feedback
// that should change their ranking.
func (c *RecommendationCache) Invalidate(ctx context.Context, userID uint) error {
	if c == nil || c.client == nil {
		return nil
	}

	pattern := fmt.Sprintf("reco:user:%d:n:*", userID)
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete cached entry: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cache keys: %w", err)
	}

	return nil
}
