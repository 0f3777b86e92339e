package showdown

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clerr "github.com/clodbot/clodbot-discord/internal/errors"
)

func TestClient_LogURL(t *testing.T) {
	c, err := New(&Config{Host: "replay.pokemonshowdown.com"})
	require.NoError(t, err)
	impl := c.(*client)

	t.Run("valid replay URL", func(t *testing.T) {
		logURL, err := impl.LogURL("https://replay.pokemonshowdown.com/gen9ou-12345")
		require.NoError(t, err)
		assert.Equal(t, "https://replay.pokemonshowdown.com/gen9ou-12345.log", logURL)
	})

	t.Run("already a log URL", func(t *testing.T) {
		logURL, err := impl.LogURL("https://replay.pokemonshowdown.com/gen9ou-12345.log")
		require.NoError(t, err)
		assert.Equal(t, "https://replay.pokemonshowdown.com/gen9ou-12345.log", logURL)
	})

	t.Run("wrong host", func(t *testing.T) {
		_, err := impl.LogURL("https://example.com/gen9ou-12345")
		require.Error(t, err)
		assert.True(t, clerr.Is(err, clerr.CodeInvalidReplayURL))
	})

	t.Run("nested path", func(t *testing.T) {
		_, err := impl.LogURL("https://replay.pokemonshowdown.com/foo/bar")
		require.Error(t, err)
		assert.True(t, clerr.Is(err, clerr.CodeInvalidReplayURL))
	})

	t.Run("no path", func(t *testing.T) {
		_, err := impl.LogURL("https://replay.pokemonshowdown.com/")
		require.Error(t, err)
		assert.True(t, clerr.Is(err, clerr.CodeInvalidReplayURL))
	})
}

func TestClient_FetchLog(t *testing.T) {
	const logBody = "|player|p1|Alice|1\n|win|Alice"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, ".log") {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if strings.Contains(r.URL.Path, "missing") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if _, err := w.Write([]byte(logBody)); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	defer server.Close()

	serverURL, err := url.Parse(server.URL)
	require.NoError(t, err)

	c, err := New(&Config{
		HTTPClient: server.Client(),
		Host:       serverURL.Host,
	})
	require.NoError(t, err)

	t.Run("fetches the log body", func(t *testing.T) {
		raw, err := c.FetchLog(context.Background(), server.URL+"/gen9ou-12345")
		require.NoError(t, err)
		assert.Equal(t, logBody, string(raw))
	})

	t.Run("missing replay", func(t *testing.T) {
		_, err := c.FetchLog(context.Background(), server.URL+"/missing-1")
		require.Error(t, err)
		assert.True(t, clerr.IsNotFound(err))
	})
}
