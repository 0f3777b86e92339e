package moveset_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/clodbot/clodbot-discord/internal/entities"
	"github.com/clodbot/clodbot-discord/internal/moveset"
	mockmoveset "github.com/clodbot/clodbot-discord/internal/moveset/mock"
)

// firstChoiceFormatter picks index 0 for every random decision.
func firstChoiceFormatter(t *testing.T) *moveset.Formatter {
	t.Helper()
	ctrl := gomock.NewController(t)
	random := mockmoveset.NewMockRandomizer(ctrl)
	random.EXPECT().Intn(gomock.Any()).Return(0).AnyTimes()
	return moveset.NewFormatter(&moveset.FormatterConfig{Randomizer: random})
}

func garchompScarf() *entities.MovesetRecord {
	return &entities.MovesetRecord{
		Name:      "Swords Dance",
		Pokemon:   "Garchomp",
		Abilities: []string{"Rough Skin"},
		Items:     []string{"Choice Scarf"},
		Natures:   []string{"Jolly"},
		EVConfigs: []entities.StatSpread{
			{HP: 4, Atk: 252, Spe: 252},
		},
		MoveSlots: [][]entities.MoveOption{
			{{Move: "Earthquake", Type: "Ground"}},
			{{Move: "Outrage", Type: "Dragon"}},
			{{Move: "Stone Edge", Type: "Rock"}},
			{{Move: "U-turn", Type: "Bug"}},
		},
	}
}

func TestFormatter_Format(t *testing.T) {
	f := firstChoiceFormatter(t)

	got := f.Format(garchompScarf())

	want := strings.Join([]string{
		"Garchomp @ Choice Scarf",
		"Ability: Rough Skin",
		"EVs: 4 HP / 252 Atk / 252 Spe",
		"Jolly Nature",
		"- Earthquake",
		"- Outrage",
		"- Stone Edge",
		"- U-turn",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestFormatter_Format_TeraOnlyWhenPresent(t *testing.T) {
	f := firstChoiceFormatter(t)

	set := garchompScarf()
	assert.NotContains(t, f.Format(set), "Tera Type:")

	set.TeraTypes = []string{"Steel", "Fire"}
	assert.Contains(t, f.Format(set), "Tera Type: Steel")
}

func TestFormatter_Format_MoveLineCount(t *testing.T) {
	f := firstChoiceFormatter(t)

	set := garchompScarf()
	set.MoveSlots = [][]entities.MoveOption{
		{{Move: "Earthquake"}},
		{},
		{{Move: "Outrage"}},
	}

	var moveLines int
	for _, line := range strings.Split(f.Format(set), "\n") {
		if strings.HasPrefix(line, "- ") {
			moveLines++
		}
	}
	assert.Equal(t, 2, moveLines, "one move line per non-empty slot")
}

func TestFormatter_Format_NoRepeatedMoves(t *testing.T) {
	f := firstChoiceFormatter(t)

	set := garchompScarf()
	set.MoveSlots = [][]entities.MoveOption{
		{{Move: "Earthquake"}, {Move: "Outrage"}},
		{{Move: "Earthquake"}, {Move: "Outrage"}},
	}

	got := f.Format(set)
	assert.Contains(t, got, "- Earthquake")
	assert.Contains(t, got, "- Outrage")
}

func TestFormatter_Format_RepeatFallback(t *testing.T) {
	f := firstChoiceFormatter(t)

	set := garchompScarf()
	set.MoveSlots = [][]entities.MoveOption{
		{{Move: "Earthquake"}},
		{{Move: "Earthquake"}},
	}

	got := f.Format(set)
	assert.Equal(t, 2, strings.Count(got, "- Earthquake"),
		"exhausted slot keeps its first option")
}

func TestFormatter_Format_LevelAndIVs(t *testing.T) {
	f := firstChoiceFormatter(t)

	set := garchompScarf()
	set.Level = []int{50}
	set.IVConfigs = []entities.StatSpread{
		{HP: 31, Atk: 0, Def: 31, SpA: 31, SpD: 31, Spe: 31},
	}

	got := f.Format(set)
	assert.Contains(t, got, "Level: 50")
	assert.Contains(t, got, "IVs: 0 Atk")
	assert.NotContains(t, got, "31")
}

func TestFormatter_FormatRandom(t *testing.T) {
	ctrl := gomock.NewController(t)
	random := mockmoveset.NewMockRandomizer(ctrl)
	// Always pick the last variant of each choice.
	random.EXPECT().Intn(gomock.Any()).DoAndReturn(func(n int) int {
		return n - 1
	}).AnyTimes()
	f := moveset.NewFormatter(&moveset.FormatterConfig{Randomizer: random})

	set := garchompScarf()
	set.Items = []string{"Choice Scarf", "Loaded Dice"}
	set.Natures = []string{"Jolly", "Adamant"}
	set.EVConfigs = append(set.EVConfigs, entities.StatSpread{HP: 252, Atk: 252, Spe: 4})

	got := f.FormatRandom(set)
	assert.Contains(t, got, "Garchomp @ Loaded Dice")
	assert.Contains(t, got, "Adamant Nature")
	assert.Contains(t, got, "EVs: 252 HP / 252 Atk / 4 Spe")
}

func TestFormatter_DefaultRandomizer(t *testing.T) {
	f := moveset.NewFormatter(nil)

	got := f.Format(garchompScarf())
	assert.True(t, strings.HasPrefix(got, "Garchomp @ Choice Scarf"))
	assert.Equal(t, 4, strings.Count(got, "- "))
}
