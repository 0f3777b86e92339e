package credentials

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	clerr "github.com/clodbot/clodbot-discord/internal/errors"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	repo       Repository
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.repo = NewRedisRepository(&RedisRepoConfig{
		Client: s.mockClient,
		TTL:    time.Hour,
	})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) TestSet() {
	ctx := context.Background()
	blob := []byte(`{"username":"trainer","password":"hunter2"}`)

	s.mock.ExpectSet("credentials:user-1", blob, time.Hour).SetVal("OK")
	s.NoError(s.repo.Set(ctx, "user-1", blob))

	s.mock.ExpectSet("credentials:user-1", blob, time.Hour).SetErr(errors.New("redis error"))
	s.Error(s.repo.Set(ctx, "user-1", blob))

	s.Error(s.repo.Set(ctx, "", blob))
	s.Error(s.repo.Set(ctx, "user-1", nil))
}

func (s *RedisRepoTestSuite) TestGet() {
	ctx := context.Background()

	s.mock.ExpectGet("credentials:user-1").SetVal("blob-data")
	s.mock.ExpectExpire("credentials:user-1", time.Hour).SetVal(true)
	blob, err := s.repo.Get(ctx, "user-1")
	s.NoError(err)
	s.Equal([]byte("blob-data"), blob)

	s.mock.ExpectGet("credentials:user-2").RedisNil()
	_, err = s.repo.Get(ctx, "user-2")
	s.Error(err)
	s.True(clerr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestDelete() {
	ctx := context.Background()

	s.mock.ExpectDel("credentials:user-1").SetVal(1)
	s.NoError(s.repo.Delete(ctx, "user-1"))
}
