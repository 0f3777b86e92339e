package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clerr "github.com/clodbot/clodbot-discord/internal/errors"
)

func TestParseSheetID(t *testing.T) {
	t.Run("full URL", func(t *testing.T) {
		id, err := ParseSheetID("https://docs.google.com/spreadsheets/d/1AbC_def-123/edit#gid=0")
		require.NoError(t, err)
		assert.Equal(t, "1AbC_def-123", id)
	})

	t.Run("bare id", func(t *testing.T) {
		id, err := ParseSheetID("1AbC_def-123")
		require.NoError(t, err)
		assert.Equal(t, "1AbC_def-123", id)
	})

	t.Run("wrong host", func(t *testing.T) {
		_, err := ParseSheetID("https://example.com/spreadsheets/d/1AbC/edit")
		require.Error(t, err)
		assert.True(t, clerr.Is(err, clerr.CodeInvalidSheetURL))
	})

	t.Run("missing id segment", func(t *testing.T) {
		_, err := ParseSheetID("https://docs.google.com/spreadsheets/d/")
		require.Error(t, err)
		assert.True(t, clerr.Is(err, clerr.CodeInvalidSheetURL))
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ParseSheetID("   ")
		require.Error(t, err)
		assert.True(t, clerr.Is(err, clerr.CodeInvalidSheetURL))
	})
}

func TestPermissionDenied(t *testing.T) {
	err := PermissionDenied(assert.AnError, "no access")
	assert.True(t, clerr.IsUpstream(err))
	assert.True(t, IsPermissionDenied(err))

	plain := clerr.Upstream("timeout")
	assert.False(t, IsPermissionDenied(plain))
}
