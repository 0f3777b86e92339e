package credentials

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	clerr "github.com/clodbot/clodbot-discord/internal/errors"
)

const (
	credentialKeyPrefix = "credentials:"

	// Credentials expire if untouched for 30 days.
	credentialTTL = 30 * 24 * time.Hour
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient

	// TTL overrides the default credential lifetime when non-zero
	TTL time.Duration
}

// redisRepository implements Repository using Redis
type redisRepository struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis-backed credential repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg.Client == nil {
		panic("redis client is required")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = credentialTTL
	}

	return &redisRepository{
		client: cfg.Client,
		ttl:    ttl,
	}
}

func (r *redisRepository) Set(ctx context.Context, userID string, blob []byte) error {
	if userID == "" {
		return clerr.BadArguments("user ID cannot be empty")
	}
	if len(blob) == 0 {
		return clerr.BadArguments("credential blob cannot be empty")
	}

	if err := r.client.Set(ctx, credentialKeyPrefix+userID, blob, r.ttl).Err(); err != nil {
		return clerr.WrapWithCode(err, clerr.CodeInternal, "failed to store credentials")
	}
	return nil
}

func (r *redisRepository) Get(ctx context.Context, userID string) ([]byte, error) {
	if userID == "" {
		return nil, clerr.BadArguments("user ID cannot be empty")
	}

	key := credentialKeyPrefix + userID
	blob, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, clerr.NotFoundf("no credentials for user %s", userID)
		}
		return nil, clerr.WrapWithCode(err, clerr.CodeInternal, "failed to get credentials")
	}

	// Refresh TTL
	r.client.Expire(ctx, key, r.ttl)

	return blob, nil
}

func (r *redisRepository) Delete(ctx context.Context, userID string) error {
	if userID == "" {
		return clerr.BadArguments("user ID cannot be empty")
	}

	if err := r.client.Del(ctx, credentialKeyPrefix+userID).Err(); err != nil {
		return clerr.WrapWithCode(err, clerr.CodeInternal, "failed to delete credentials")
	}
	return nil
}
