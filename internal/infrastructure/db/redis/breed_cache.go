package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dogbook/dogbook-api/internal/core/domain"
)

const (
	breedListKey = "breeds:list"
	breedListTTL = 10 * time.Minute
)

// BreedCache caches the full breed listing in Redis. Breeds change rarely
// (admin-only writes), so a short TTL plus invalidation on create keeps
// the listing fresh.
type BreedCache struct {
	client *redis.Client
}

// NewBreedCache creates a BreedCache wrapping the given Redis client.
func NewBreedCache(client *redis.Client) *BreedCache {
	return &BreedCache{client: client}
}

// GetList returns the cached listing; the second result reports a hit.
func (c *BreedCache) GetList(ctx context.Context) ([]domain.DogBreed, bool, error) {
	raw, err := c.client.Get(ctx, breedListKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("breed cache get: %w", err)
	}

	var breeds []domain.DogBreed
	if err := json.Unmarshal(raw, &breeds); err != nil {
		return nil, false, fmt.Errorf("breed cache decode: %w", err)
	}
	return breeds, true, nil
}

// SetList stores the listing with the cache TTL.
func (c *BreedCache) SetList(ctx context.Context, breeds []domain.DogBreed) error {
	raw, err := json.Marshal(breeds)
	if err != nil {
		return fmt.Errorf("breed cache encode: %w", err)
	}
	if err := c.client.Set(ctx, breedListKey, raw, breedListTTL).Err(); err != nil {
		return fmt.Errorf("breed cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached listing.
func (c *BreedCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, breedListKey).Err(); err != nil {
		return fmt.Errorf("breed cache del: %w", err)
	}
	return nil
}
