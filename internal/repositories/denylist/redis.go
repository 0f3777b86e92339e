package denylist

import (
	"context"

	"github.com/redis/go-redis/v9"

	clerr "github.com/clodbot/clodbot-discord/internal/errors"
)

const deniedSheetsKey = "sheets:denied"

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// redisRepository implements Repository using a Redis set
type redisRepository struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed deny list repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg.Client == nil {
		panic("redis client is required")
	}

	return &redisRepository{client: cfg.Client}
}

func (r *redisRepository) Add(ctx context.Context, sheetID string) error {
	if sheetID == "" {
		return clerr.BadArguments("sheet ID cannot be empty")
	}

	if err := r.client.SAdd(ctx, deniedSheetsKey, sheetID).Err(); err != nil {
		return clerr.WrapWithCode(err, clerr.CodeInternal, "failed to deny sheet")
	}
	return nil
}

func (r *redisRepository) Contains(ctx context.Context, sheetID string) (bool, error) {
	if sheetID == "" {
		return false, clerr.BadArguments("sheet ID cannot be empty")
	}

	denied, err := r.client.SIsMember(ctx, deniedSheetsKey, sheetID).Result()
	if err != nil {
		return false, clerr.WrapWithCode(err, clerr.CodeInternal, "failed to check deny list")
	}
	return denied, nil
}

func (r *redisRepository) Remove(ctx context.Context, sheetID string) error {
	if sheetID == "" {
		return clerr.BadArguments("sheet ID cannot be empty")
	}

	if err := r.client.SRem(ctx, deniedSheetsKey, sheetID).Err(); err != nil {
		return clerr.WrapWithCode(err, clerr.CodeInternal, "failed to clear denied sheet")
	}
	return nil
}
