package scopes

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	clerr "github.com/clodbot/clodbot-discord/internal/errors"
)

const defaultSheetKey = "scope:%s:default_sheet"

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// redisRepository implements Repository using Redis
type redisRepository struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed scope repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg.Client == nil {
		panic("redis client is required")
	}

	return &redisRepository{client: cfg.Client}
}

func (r *redisRepository) SetDefault(ctx context.Context, scopeID, sheetID string) error {
	if scopeID == "" {
		return clerr.BadArguments("scope ID cannot be empty")
	}
	if sheetID == "" {
		return clerr.BadArguments("sheet ID cannot be empty")
	}

	// Bindings never expire, the scope owns them until replaced.
	if err := r.client.Set(ctx, fmt.Sprintf(defaultSheetKey, scopeID), sheetID, 0).Err(); err != nil {
		return clerr.WrapWithCode(err, clerr.CodeInternal, "failed to set default sheet")
	}
	return nil
}

func (r *redisRepository) GetDefault(ctx context.Context, scopeID string) (string, error) {
	if scopeID == "" {
		return "", clerr.BadArguments("scope ID cannot be empty")
	}

	sheetID, err := r.client.Get(ctx, fmt.Sprintf(defaultSheetKey, scopeID)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", clerr.NotFoundf("no default sheet for scope %s", scopeID)
		}
		return "", clerr.WrapWithCode(err, clerr.CodeInternal, "failed to get default sheet")
	}
	return sheetID, nil
}

func (r *redisRepository) DeleteDefault(ctx context.Context, scopeID string) error {
	if scopeID == "" {
		return clerr.BadArguments("scope ID cannot be empty")
	}

	if err := r.client.Del(ctx, fmt.Sprintf(defaultSheetKey, scopeID)).Err(); err != nil {
		return clerr.WrapWithCode(err, clerr.CodeInternal, "failed to delete default sheet")
	}
	return nil
}
