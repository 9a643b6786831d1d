package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pageza/recipeprep/backend/internal/models"
)

const groceryCachePrefix = "grocery_list"

// GroceryCache keeps serialized grocery lists in Redis. A nil *GroceryCache
// is valid and caches nothing.
type GroceryCache struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewGroceryCache returns a cache over client, or nil when client is nil or
// ttl is not positive.
func NewGroceryCache(client *redis.Client, ttl time.Duration) *GroceryCache {
	if client == nil || ttl <= 0 {
		return nil
	}
	return &GroceryCache{redis: client, ttl: ttl}
}

func groceryCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("%s:%s", groceryCachePrefix, id)
}

// Get returns the cached list, or false on a miss
func (c *GroceryCache) Get(ctx context.Context, id uuid.UUID) (*models.GroceryList, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	data, err := c.redis.Get(ctx, groceryCacheKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached list: %w", err)
	}

	var list models.GroceryList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached list: %w", err)
	}
	return &list, true, nil
}

// Set stores list under its id
func (c *GroceryCache) Set(ctx context.Context, list *models.GroceryList) error {
	if c == nil {
		return nil
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode list: %w", err)
	}
	if err := c.redis.Set(ctx, groceryCacheKey(list.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache list: %w", err)
	}
	return nil
}

// Invalidate drops a cached list
func (c *GroceryCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	if c == nil {
		return nil
	}
	if err := c.redis.Del(ctx, groceryCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached list: %w", err)
	}
	return nil
}
