package clodbot

import (
	"strconv"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clodbot/clodbot-discord/internal/entities"
	clerr "github.com/clodbot/clodbot-discord/internal/errors"
)

func TestToggleCustomID_RoundTrip(t *testing.T) {
	id := ToggleCustomID("sess-1", 2, "Choice Scarf")

	parts := strings.SplitN(id, ":", 5)
	require.Len(t, parts, 5)
	assert.Equal(t, "giveset", parts[0])
	assert.Equal(t, "toggle", parts[1])
	assert.Equal(t, "sess-1", parts[2])

	idx, err := strconv.Atoi(parts[3])
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
	assert.Equal(t, "Choice Scarf", parts[4])
}

func TestSetButtonRows_ChunksAtFive(t *testing.T) {
	group := &entities.SetGroup{
		Pokemon:  "garchomp",
		SetNames: []string{"A", "B", "C", "D", "E", "F", "G"},
	}

	rows := SetButtonRows("sess-1", 0, group, false)

	require.Len(t, rows, 2)
	first, ok := rows[0].(discordgo.ActionsRow)
	require.True(t, ok)
	assert.Len(t, first.Components, 5)
	second, ok := rows[1].(discordgo.ActionsRow)
	require.True(t, ok)
	assert.Len(t, second.Components, 2)
}

func TestSetButtonRows_SelectedStyle(t *testing.T) {
	group := &entities.SetGroup{
		Pokemon:  "garchomp",
		SetNames: []string{"Swords Dance", "Choice Scarf"},
		Selected: []string{"Choice Scarf"},
	}

	rows := SetButtonRows("sess-1", 0, group, false)

	require.Len(t, rows, 1)
	row := rows[0].(discordgo.ActionsRow)
	require.Len(t, row.Components, 2)

	plain := row.Components[0].(discordgo.Button)
	assert.Equal(t, discordgo.SecondaryButton, plain.Style)
	selected := row.Components[1].(discordgo.Button)
	assert.Equal(t, discordgo.SuccessButton, selected.Style)
}

func TestSetButtonRows_LabelRow(t *testing.T) {
	group := &entities.SetGroup{
		Pokemon:  "gengar",
		SetNames: []string{"Nasty Plot"},
	}

	rows := SetButtonRows("sess-1", 1, group, true)

	require.Len(t, rows, 2)
	labelRow := rows[0].(discordgo.ActionsRow)
	require.Len(t, labelRow.Components, 1)
	label := labelRow.Components[0].(discordgo.Button)
	assert.Equal(t, "gengar", label.Label)
	assert.True(t, label.Disabled)
}

func TestUserMessage_FixedStrings(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"malformed log", clerr.MalformedLog("bad"), "❌ That replay log could not be parsed."},
		{"no default", clerr.NoDefault("unset"), "❌ No default sheet is set here. Run `/clodbot sheet set` first."},
		{"unauthorized", clerr.Unauthorized("not owner"), "❌ Only the user who started this selection can use its buttons."},
		{"section full", clerr.SectionFullf("no room"), "❌ That player's section has no room left."},
		{"unknown", assert.AnError, "❌ Something went wrong."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, userMessage(tt.err))
		})
	}
}

func TestInteractionUserID(t *testing.T) {
	guild := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Member: &discordgo.Member{User: &discordgo.User{ID: "user-1"}},
	}}
	assert.Equal(t, "user-1", InteractionUserID(guild))

	dm := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		User: &discordgo.User{ID: "user-2"},
	}}
	assert.Equal(t, "user-2", InteractionUserID(dm))
}

func TestScopeID(t *testing.T) {
	guild := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		GuildID:   "guild-1",
		ChannelID: "chan-1",
	}}
	assert.Equal(t, "guild-1", ScopeID(guild))

	dm := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ChannelID: "chan-2",
	}}
	assert.Equal(t, "chan-2", ScopeID(dm))
}
