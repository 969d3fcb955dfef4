package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/financetrack/finance-api/internal/core/domain"
)

const cacheTTL = 5 * time.Minute

// UserCache is a read-through profile cache backed by Redis.
// Key format: user:<id>
// Users are immutable once created, so no invalidation is needed.
type UserCache struct {
	client *redis.Client
	logger zerolog.Logger
}

// NewUserCache creates a UserCache wrapping the given Redis client.
func NewUserCache(client *redis.Client, logger zerolog.Logger) *UserCache {
	return &UserCache{client: client, logger: logger}
}

// Get reports a cached user, or (nil, false) on miss or any cache
// failure. Cache errors are logged and swallowed: the repository is
// always the fallback.
func (c *UserCache) Get(ctx context.Context, id string) (*domain.User, bool) {
	data, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn().Err(err).Str("user_id", id).Msg("user cache read failed")
		}
		return nil, false
	}

	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, false
	}
	return &user, true
}

// Set stores the user for cacheTTL. Failures are logged, not returned.
func (c *UserCache) Set(ctx context.Context, user *domain.User) {
	data, err := json.Marshal(user)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(user.ID), data, cacheTTL).Err(); err != nil {
		c.logger.Warn().Err(err).Str("user_id", user.ID).Msg("user cache write failed")
	}
}

func (c *UserCache) key(id string) string {
	return "user:" + id
}
