package replay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clodbot/clodbot-discord/internal/entities"
	clerr "github.com/clodbot/clodbot-discord/internal/errors"
)

func buildLog(lines ...string) []byte {
	return []byte(strings.Join(lines, "\n"))
}

func findRow(t *testing.T, team []*entities.PokemonStat, species string) *entities.PokemonStat {
	t.Helper()
	for _, row := range team {
		if row.Species == species {
			return row
		}
	}
	t.Fatalf("species %q not found in team", species)
	return nil
}

func TestParse_MinimalLog(t *testing.T) {
	raw := buildLog(
		"|player|p1|Alice|1",
		"|player|p2|Bob|2",
		"|poke|p1|Pikachu|",
		"|poke|p2|Snorlax|",
		"|switch|p1a: Sparky|Pikachu|100/100",
		"|switch|p2a: Snorlax|Snorlax|100/100",
		"|move|p1a: Sparky|Thunder|p2a: Snorlax",
		"|faint|p2a: Snorlax",
		"|win|Alice",
	)

	report, err := Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, entities.SlotP1, report.WinnerSlot)
	assert.Equal(t, entities.SlotP2, report.LoserSlot)
	assert.Equal(t, entities.Score{LoserFaints: 1, WinnerFaints: 0}, report.Score)
	assert.Equal(t, "Alice", report.Winner())
	assert.Equal(t, "Bob", report.Loser())

	pikachu := findRow(t, report.Teams[entities.SlotP1], "Pikachu")
	assert.Equal(t, 1, pikachu.Kills)
	assert.Equal(t, 0, pikachu.Deaths)
	assert.Equal(t, 1, pikachu.GamesPlayed)

	snorlax := findRow(t, report.Teams[entities.SlotP2], "Snorlax")
	assert.Equal(t, 0, snorlax.Kills)
	assert.Equal(t, 1, snorlax.Deaths)
}

func TestParse_RevivalBlessing(t *testing.T) {
	raw := buildLog(
		"|player|p1|Alice|1",
		"|player|p2|Bob|2",
		"|switch|p1a: Sparky|Pikachu|100/100",
		"|switch|p2a: Snorlax|Snorlax|100/100",
		"|move|p1a: Sparky|Thunder|p2a: Snorlax",
		"|faint|p2a: Snorlax",
		"|switch|p2a: Chansey|Chansey|100/100",
		"|move|p2a: Chansey|Revival Blessing",
		"|-heal|p2: Snorlax|50/100",
		"|win|Alice",
	)

	report, err := Parse(raw)
	require.NoError(t, err)

	snorlax := findRow(t, report.Teams[entities.SlotP2], "Snorlax")
	assert.Equal(t, 0, snorlax.Deaths, "revive cancels exactly one death")
	assert.Equal(t, entities.Score{LoserFaints: 0, WinnerFaints: 0}, report.Score)

	// Kill credit is not cancelled by the revive.
	pikachu := findRow(t, report.Teams[entities.SlotP1], "Pikachu")
	assert.Equal(t, 1, pikachu.Kills)
}

func TestParse_RevivalRequiresBlessing(t *testing.T) {
	// A heal on a fainted target without a preceding Revival Blessing on
	// the same side is ordinary healing, not a revive.
	raw := buildLog(
		"|player|p1|Alice|1",
		"|player|p2|Bob|2",
		"|switch|p1a: Sparky|Pikachu|100/100",
		"|switch|p2a: Snorlax|Snorlax|100/100",
		"|move|p1a: Sparky|Thunder|p2a: Snorlax",
		"|faint|p2a: Snorlax",
		"|turn|12",
		"|-heal|p2: Snorlax|50/100",
		"|win|Alice",
	)

	report, err := Parse(raw)
	require.NoError(t, err)

	snorlax := findRow(t, report.Teams[entities.SlotP2], "Snorlax")
	assert.Equal(t, 1, snorlax.Deaths)
}

func TestParse_IllusionReveal(t *testing.T) {
	raw := buildLog(
		"|player|p1|Alice|1",
		"|player|p2|Bob|2",
		"|switch|p1a: Sparky|Pikachu|100/100",
		"|switch|p2a: Snorlax|Snorlax|100/100",
		"|replace|p1a: Sparky|Zoroark",
		"|move|p2a: Snorlax|Body Slam|p1a: Sparky",
		"|faint|p1a: Sparky",
		"|win|Bob",
	)

	report, err := Parse(raw)
	require.NoError(t, err)

	zoroark := findRow(t, report.Teams[entities.SlotP1], "Zoroark")
	assert.Equal(t, 1, zoroark.Deaths, "the revealed species takes the death")

	pikachu := findRow(t, report.Teams[entities.SlotP1], "Pikachu")
	assert.Equal(t, 0, pikachu.Deaths, "the imitated species stays clean")

	snorlax := findRow(t, report.Teams[entities.SlotP2], "Snorlax")
	assert.Equal(t, 1, snorlax.Kills)
}

func TestParse_NoAttackerCredit(t *testing.T) {
	// Hazard/weather faints have no opposing move before them and assign
	// no kill.
	raw := buildLog(
		"|player|p1|Alice|1",
		"|player|p2|Bob|2",
		"|switch|p1a: Sparky|Pikachu|100/100",
		"|switch|p2a: Snorlax|Snorlax|100/100",
		"|faint|p2a: Snorlax",
		"|win|Alice",
	)

	report, err := Parse(raw)
	require.NoError(t, err)

	pikachu := findRow(t, report.Teams[entities.SlotP1], "Pikachu")
	assert.Equal(t, 0, pikachu.Kills)

	snorlax := findRow(t, report.Teams[entities.SlotP2], "Snorlax")
	assert.Equal(t, 1, snorlax.Deaths)
}

func TestParse_SelfKOCreditsOpponent(t *testing.T) {
	// Explosion: the fainted side's own move is skipped, the most recent
	// opposing move before it gets the credit.
	raw := buildLog(
		"|player|p1|Alice|1",
		"|player|p2|Bob|2",
		"|switch|p1a: Sparky|Pikachu|100/100",
		"|switch|p2a: Boomer|Electrode|100/100",
		"|move|p1a: Sparky|Thunder|p2a: Boomer",
		"|move|p2a: Boomer|Explosion|p1a: Sparky",
		"|faint|p2a: Boomer",
		"|win|Alice",
	)

	report, err := Parse(raw)
	require.NoError(t, err)

	pikachu := findRow(t, report.Teams[entities.SlotP1], "Pikachu")
	assert.Equal(t, 1, pikachu.Kills)
}

func TestParse_FormChangeKeepsCanonicalSpecies(t *testing.T) {
	raw := buildLog(
		"|player|p1|Alice|1",
		"|player|p2|Bob|2",
		"|poke|p1|Urshifu, M|",
		"|switch|p1a: Fist|Urshifu, M|100/100",
		"|switch|p2a: Snorlax|Snorlax|100/100",
		"|move|p1a: Fist|Wicked Blow|p2a: Snorlax",
		"|faint|p2a: Snorlax",
		"|win|Alice",
	)

	report, err := Parse(raw)
	require.NoError(t, err)

	require.Len(t, report.Teams[entities.SlotP1], 1)
	urshifu := findRow(t, report.Teams[entities.SlotP1], "Urshifu")
	assert.Equal(t, 1, urshifu.Kills)
}

func TestParse_UnresolvedNicknameFallsBack(t *testing.T) {
	raw := buildLog(
		"|player|p1|Alice|1",
		"|player|p2|Bob|2",
		"|switch|p1a: Sparky|Pikachu|100/100",
		"|move|p1a: Sparky|Thunder|p2a: Mystery",
		"|faint|p2a: Mystery",
		"|win|Alice",
	)

	report, err := Parse(raw)
	require.NoError(t, err)

	mystery := findRow(t, report.Teams[entities.SlotP2], "Mystery")
	assert.Equal(t, 1, mystery.Deaths)
}

func TestParse_TwoNicknamesOneSpecies(t *testing.T) {
	// Two nicknames bound to the same species feed the same stat row.
	raw := buildLog(
		"|player|p1|Alice|1",
		"|player|p2|Bob|2",
		"|switch|p1a: Sparky|Pikachu|100/100",
		"|switch|p2a: Lax One|Snorlax|100/100",
		"|move|p1a: Sparky|Thunder|p2a: Lax One",
		"|faint|p2a: Lax One",
		"|switch|p2a: Lax Two|Snorlax|100/100",
		"|move|p1a: Sparky|Thunder|p2a: Lax Two",
		"|faint|p2a: Lax Two",
		"|win|Alice",
	)

	report, err := Parse(raw)
	require.NoError(t, err)

	require.Len(t, report.Teams[entities.SlotP2], 1)
	snorlax := findRow(t, report.Teams[entities.SlotP2], "Snorlax")
	assert.Equal(t, 2, snorlax.Deaths)

	pikachu := findRow(t, report.Teams[entities.SlotP1], "Pikachu")
	assert.Equal(t, 2, pikachu.Kills)
}

func TestParse_KillDeathSymmetry(t *testing.T) {
	// Kills on one side must equal post-revive deaths on the other.
	raw := buildLog(
		"|player|p1|Alice|1",
		"|player|p2|Bob|2",
		"|switch|p1a: Sparky|Pikachu|100/100",
		"|switch|p2a: Snorlax|Snorlax|100/100",
		"|move|p1a: Sparky|Thunder|p2a: Snorlax",
		"|faint|p2a: Snorlax",
		"|switch|p2a: Gengar|Gengar|100/100",
		"|move|p2a: Gengar|Shadow Ball|p1a: Sparky",
		"|faint|p1a: Sparky",
		"|switch|p1a: Chomp|Garchomp|100/100",
		"|move|p1a: Chomp|Earthquake|p2a: Gengar",
		"|faint|p2a: Gengar",
		"|win|Alice",
	)

	report, err := Parse(raw)
	require.NoError(t, err)

	sumKills := func(slot entities.Slot) int {
		total := 0
		for _, row := range report.Teams[slot] {
			total += row.Kills
		}
		return total
	}
	sumDeaths := func(slot entities.Slot) int {
		total := 0
		for _, row := range report.Teams[slot] {
			total += row.Deaths
		}
		return total
	}

	assert.Equal(t, sumKills(entities.SlotP1), sumDeaths(entities.SlotP2))
	assert.Equal(t, sumKills(entities.SlotP2), sumDeaths(entities.SlotP1))
	assert.Equal(t, entities.Score{LoserFaints: 2, WinnerFaints: 1}, report.Score)
}

func TestParse_MalformedLogs(t *testing.T) {
	t.Run("missing win record", func(t *testing.T) {
		raw := buildLog(
			"|player|p1|Alice|1",
			"|player|p2|Bob|2",
			"|switch|p1a: Sparky|Pikachu|100/100",
		)

		_, err := Parse(raw)
		require.Error(t, err)
		assert.True(t, clerr.IsMalformedLog(err))
	})

	t.Run("missing player records", func(t *testing.T) {
		raw := buildLog(
			"|switch|p1a: Sparky|Pikachu|100/100",
			"|win|Alice",
		)

		_, err := Parse(raw)
		require.Error(t, err)
		assert.True(t, clerr.IsMalformedLog(err))
	})

	t.Run("unknown record kinds are ignored", func(t *testing.T) {
		raw := buildLog(
			"|player|p1|Alice|1",
			"|player|p2|Bob|2",
			"|j|someone joined",
			"|-weather|Sandstorm",
			"|gibberish",
			"|win|Alice",
		)

		_, err := Parse(raw)
		require.NoError(t, err)
	})
}

func TestRender(t *testing.T) {
	raw := buildLog(
		"|player|p1|Alice|1",
		"|player|p2|Bob|2",
		"|switch|p1a: Sparky|Pikachu|100/100",
		"|switch|p2a: Snorlax|Snorlax|100/100",
		"|move|p1a: Sparky|Thunder|p2a: Snorlax",
		"|faint|p2a: Snorlax",
		"|win|Alice",
	)

	report, err := Parse(raw)
	require.NoError(t, err)

	out := Render(report)
	assert.Contains(t, out, "Winner: Alice (1-0)")
	assert.Contains(t, out, "Pikachu: 1 kills, 0 deaths")
	assert.Contains(t, out, "Snorlax: 0 kills, 1 deaths")
}
