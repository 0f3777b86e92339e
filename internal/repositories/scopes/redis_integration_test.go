//go:build integration
// +build integration

package scopes_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clerr "github.com/clodbot/clodbot-discord/internal/errors"
	"github.com/clodbot/clodbot-discord/internal/repositories/scopes"
	"github.com/clodbot/clodbot-discord/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.CreateTestRedisClientOrSkip(t)

	repo := scopes.NewRedisRepository(&scopes.RedisRepoConfig{
		Client: client,
	})

	ctx := context.Background()

	t.Run("set and get default", func(t *testing.T) {
		err := repo.SetDefault(ctx, "guild-123", "sheet-abc")
		require.NoError(t, err)

		sheetID, err := repo.GetDefault(ctx, "guild-123")
		require.NoError(t, err)
		assert.Equal(t, "sheet-abc", sheetID)
	})

	t.Run("set replaces previous binding", func(t *testing.T) {
		require.NoError(t, repo.SetDefault(ctx, "guild-456", "sheet-old"))
		require.NoError(t, repo.SetDefault(ctx, "guild-456", "sheet-new"))

		sheetID, err := repo.GetDefault(ctx, "guild-456")
		require.NoError(t, err)
		assert.Equal(t, "sheet-new", sheetID)
	})

	t.Run("get unset binding", func(t *testing.T) {
		_, err := repo.GetDefault(ctx, "guild-unset")
		require.Error(t, err)
		assert.True(t, clerr.IsNotFound(err))
	})

	t.Run("delete binding", func(t *testing.T) {
		require.NoError(t, repo.SetDefault(ctx, "guild-789", "sheet-abc"))
		require.NoError(t, repo.DeleteDefault(ctx, "guild-789"))

		_, err := repo.GetDefault(ctx, "guild-789")
		require.Error(t, err)
		assert.True(t, clerr.IsNotFound(err))
	})
}
