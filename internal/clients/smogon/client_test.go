package smogon

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clerr "github.com/clodbot/clodbot-discord/internal/errors"
)

// newCatalogServer serves canned strategy JSON per generation code. Codes
// without an entry return 404.
func newCatalogServer(t *testing.T, perGen map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var genCode, pokemon string
		if _, err := fmt.Sscanf(r.URL.Path, "/GetSmogonData/%2s/%s", &genCode, &pokemon); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		body, ok := perGen[genCode]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(body)); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
}

const garchompSV = `{
	"strategies": [
		{
			"format": "OU",
			"movesets": [
				{"name": "Swords Dance", "pokemon": "Garchomp"},
				{"name": "Choice Scarf", "pokemon": "Garchomp"}
			]
		},
		{
			"format": "Ubers",
			"movesets": [
				{"name": "Bulky Attacker", "pokemon": "Garchomp"}
			]
		}
	]
}`

func newTestClient(t *testing.T, server *httptest.Server) Client {
	t.Helper()
	client, err := New(&Config{
		HTTPClient: server.Client(),
		BaseURL:    server.URL,
	})
	require.NoError(t, err)
	return client
}

func TestClient_LatestGeneration(t *testing.T) {
	server := newCatalogServer(t, map[string]string{
		"sm": garchompSV,
		"dp": garchompSV,
	})
	defer server.Close()

	client := newTestClient(t, server)

	generation, err := client.LatestGeneration(context.Background(), "garchomp")
	require.NoError(t, err)
	assert.Equal(t, "sm", generation, "newest populated generation wins")
}

func TestClient_LatestGenerationNotFound(t *testing.T) {
	server := newCatalogServer(t, nil)
	defer server.Close()

	client := newTestClient(t, server)

	_, err := client.LatestGeneration(context.Background(), "missingno")
	require.Error(t, err)
	assert.True(t, clerr.IsNotFound(err))
}

func TestClient_SetNames(t *testing.T) {
	server := newCatalogServer(t, map[string]string{"sv": garchompSV})
	defer server.Close()

	client := newTestClient(t, server)

	t.Run("explicit generation and format", func(t *testing.T) {
		names, err := client.SetNames(context.Background(), "garchomp", "sv", "OU")
		require.NoError(t, err)
		assert.Equal(t, []string{"Swords Dance", "Choice Scarf"}, names)
	})

	t.Run("genN form is normalized", func(t *testing.T) {
		names, err := client.SetNames(context.Background(), "garchomp", "gen9", "OU")
		require.NoError(t, err)
		assert.Len(t, names, 2)
	})

	t.Run("empty format falls back to the first", func(t *testing.T) {
		names, err := client.SetNames(context.Background(), "garchomp", "sv", "")
		require.NoError(t, err)
		assert.Equal(t, []string{"Swords Dance", "Choice Scarf"}, names)
	})

	t.Run("unknown format is not found", func(t *testing.T) {
		_, err := client.SetNames(context.Background(), "garchomp", "sv", "LC")
		require.Error(t, err)
		assert.True(t, clerr.IsNotFound(err))
	})

	t.Run("unknown generation is not found", func(t *testing.T) {
		_, err := client.SetNames(context.Background(), "garchomp", "gen42", "OU")
		require.Error(t, err)
		assert.True(t, clerr.IsNotFound(err))
	})
}

func TestClient_Moveset(t *testing.T) {
	server := newCatalogServer(t, map[string]string{"sv": garchompSV})
	defer server.Close()

	client := newTestClient(t, server)

	set, err := client.Moveset(context.Background(), "garchomp", "sv", "OU", "Swords Dance")
	require.NoError(t, err)
	assert.Equal(t, "Swords Dance", set.Name)
	assert.Equal(t, "Garchomp", set.Pokemon)

	_, err = client.Moveset(context.Background(), "garchomp", "sv", "OU", "Nonexistent")
	require.Error(t, err)
	assert.True(t, clerr.IsNotFound(err))
}

func TestClient_RandomPicks(t *testing.T) {
	server := newCatalogServer(t, map[string]string{"sv": garchompSV})
	defer server.Close()

	client := newTestClient(t, server)
	ctx := context.Background()

	generation, err := client.RandomGeneration(ctx, "garchomp")
	require.NoError(t, err)
	assert.Equal(t, "sv", generation, "only one populated generation to pick")

	format, err := client.RandomFormat(ctx, "garchomp", "sv")
	require.NoError(t, err)
	assert.Contains(t, []string{"OU", "Ubers"}, format)

	name, err := client.RandomSetName(ctx, "garchomp", "sv", "OU")
	require.NoError(t, err)
	assert.Contains(t, []string{"Swords Dance", "Choice Scarf"}, name)
}

func TestClient_UpstreamErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(t, server)

	_, err := client.SetNames(context.Background(), "garchomp", "sv", "OU")
	require.Error(t, err)
	assert.True(t, clerr.IsUpstream(err))
}

func TestNormalizeGeneration(t *testing.T) {
	code, ok := NormalizeGeneration("gen9")
	require.True(t, ok)
	assert.Equal(t, "sv", code)

	code, ok = NormalizeGeneration("rb")
	require.True(t, ok)
	assert.Equal(t, "rb", code)

	_, ok = NormalizeGeneration("gen10")
	assert.False(t, ok)
}
