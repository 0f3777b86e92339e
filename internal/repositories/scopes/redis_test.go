package scopes

import (
	"context"
	"errors"
	"testing"

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
	s.repo = NewRedisRepository(&RedisRepoConfig{Client: s.mockClient})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) TestSetDefault() {
	ctx := context.Background()

	// Happy path
	s.mock.ExpectSet("scope:guild-1:default_sheet", "sheet-abc", 0).SetVal("OK")
	s.NoError(s.repo.SetDefault(ctx, "guild-1", "sheet-abc"))

	// Dependency error
	s.mock.ExpectSet("scope:guild-1:default_sheet", "sheet-abc", 0).SetErr(errors.New("redis error"))
	s.Error(s.repo.SetDefault(ctx, "guild-1", "sheet-abc"))

	// Input validation
	s.Error(s.repo.SetDefault(ctx, "", "sheet-abc"))
	s.Error(s.repo.SetDefault(ctx, "guild-1", ""))
}

func (s *RedisRepoTestSuite) TestGetDefault() {
	ctx := context.Background()

	s.mock.ExpectGet("scope:guild-1:default_sheet").SetVal("sheet-abc")
	sheetID, err := s.repo.GetDefault(ctx, "guild-1")
	s.NoError(err)
	s.Equal("sheet-abc", sheetID)

	// Unset binding
	s.mock.ExpectGet("scope:guild-2:default_sheet").RedisNil()
	_, err = s.repo.GetDefault(ctx, "guild-2")
	s.Error(err)
	s.True(clerr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestDeleteDefault() {
	ctx := context.Background()

	s.mock.ExpectDel("scope:guild-1:default_sheet").SetVal(1)
	s.NoError(s.repo.DeleteDefault(ctx, "guild-1"))

	// Deleting an unset binding is a no-op
	s.mock.ExpectDel("scope:guild-3:default_sheet").SetVal(0)
	s.NoError(s.repo.DeleteDefault(ctx, "guild-3"))
}
