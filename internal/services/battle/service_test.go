package battle_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockshowdown "github.com/clodbot/clodbot-discord/internal/clients/showdown/mock"
	"github.com/clodbot/clodbot-discord/internal/entities"
	clerr "github.com/clodbot/clodbot-discord/internal/errors"
	"github.com/clodbot/clodbot-discord/internal/services/battle"
)

const minimalLog = `|player|p1|Alice|avatar
|player|p2|Bob|avatar
|poke|p1|Pikachu|
|poke|p2|Snorlax|
|switch|p1a: Sparky|Pikachu|100/100
|switch|p2a: Snorlax|Snorlax|100/100
|move|p1a: Sparky|Thunder
|faint|p2a: Snorlax
|win|Alice`

func TestService_Analyze(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockshowdown.NewMockClient(ctrl)
	svc := battle.NewService(&battle.ServiceConfig{ShowdownClient: client})

	ctx := context.Background()
	replayURL := "https://replay.pokemonshowdown.com/gen9ou-12345"

	client.EXPECT().FetchLog(ctx, replayURL).Return([]byte(minimalLog), nil)

	report, err := svc.Analyze(ctx, replayURL)
	require.NoError(t, err)

	assert.Equal(t, entities.SlotP1, report.WinnerSlot)
	assert.Equal(t, "Alice", report.Winner())
	assert.Equal(t, entities.Score{LoserFaints: 1, WinnerFaints: 0}, report.Score)
}

func TestService_Analyze_FetchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockshowdown.NewMockClient(ctrl)
	svc := battle.NewService(&battle.ServiceConfig{ShowdownClient: client})

	ctx := context.Background()

	client.EXPECT().FetchLog(ctx, gomock.Any()).
		Return(nil, clerr.Upstream("replay host unavailable"))

	_, err := svc.Analyze(ctx, "https://replay.pokemonshowdown.com/gen9ou-12345")
	require.Error(t, err)
	assert.True(t, clerr.IsUpstream(err))
}

func TestService_Analyze_MalformedLog(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockshowdown.NewMockClient(ctrl)
	svc := battle.NewService(&battle.ServiceConfig{ShowdownClient: client})

	ctx := context.Background()

	client.EXPECT().FetchLog(ctx, gomock.Any()).Return([]byte("|turn|1"), nil)

	_, err := svc.Analyze(ctx, "https://replay.pokemonshowdown.com/gen9ou-12345")
	require.Error(t, err)
	assert.True(t, clerr.IsMalformedLog(err))
}

func TestService_Analyze_EmptyURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockshowdown.NewMockClient(ctrl)
	svc := battle.NewService(&battle.ServiceConfig{ShowdownClient: client})

	_, err := svc.Analyze(context.Background(), "  ")
	require.Error(t, err)
	assert.Equal(t, clerr.CodeInvalidReplayURL, clerr.GetCode(err))
}
