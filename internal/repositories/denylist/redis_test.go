package denylist

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	repo       Repository
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.repo = NewRedisRepository(&RedisRepoConfig{Client: s.mockClient})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) TestAdd() {
	ctx := context.Background()

	s.mock.ExpectSAdd("sheets:denied", "sheet-abc").SetVal(1)
	s.NoError(s.repo.Add(ctx, "sheet-abc"))

	s.mock.ExpectSAdd("sheets:denied", "sheet-abc").SetErr(errors.New("redis error"))
	s.Error(s.repo.Add(ctx, "sheet-abc"))

	s.Error(s.repo.Add(ctx, ""))
}

func (s *RedisRepoTestSuite) TestContains() {
	ctx := context.Background()

	s.mock.ExpectSIsMember("sheets:denied", "sheet-abc").SetVal(true)
	denied, err := s.repo.Contains(ctx, "sheet-abc")
	s.NoError(err)
	s.True(denied)

	s.mock.ExpectSIsMember("sheets:denied", "sheet-xyz").SetVal(false)
	denied, err = s.repo.Contains(ctx, "sheet-xyz")
	s.NoError(err)
	s.False(denied)
}

func (s *RedisRepoTestSuite) TestRemove() {
	ctx := context.Background()

	s.mock.ExpectSRem("sheets:denied", "sheet-abc").SetVal(1)
	s.NoError(s.repo.Remove(ctx, "sheet-abc"))
}
