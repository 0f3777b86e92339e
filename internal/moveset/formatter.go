// Package moveset renders catalog movesets as importable Showdown blocks.
package moveset

import (
	"fmt"
	"strings"

	"github.com/clodbot/clodbot-discord/internal/entities"
)

// statNames is the fixed emission order for EV and IV lines.
var statNames = []string{"HP", "Atk", "Def", "SpA", "SpD", "Spe"}

// Formatter renders movesets. Randomization is scoped to a single Format
// call through the injected Randomizer.
type Formatter struct {
	random Randomizer
}

// FormatterConfig holds configuration for the formatter
type FormatterConfig struct {
	// Randomizer is optional, will use the default if nil
	Randomizer Randomizer
}

// NewFormatter creates a new formatter
func NewFormatter(cfg *FormatterConfig) *Formatter {
	f := &Formatter{}
	if cfg != nil && cfg.Randomizer != nil {
		f.random = cfg.Randomizer
	} else {
		f.random = NewRandomizer()
	}
	return f
}

// Format renders the canonical importable block, taking the first variant
// of every list choice. Tera type and moves are random per the game's
// import format conventions: one tera pick, one move per slot with no
// repeats across slots.
func (f *Formatter) Format(set *entities.MovesetRecord) string {
	return f.format(set, false)
}

// FormatRandom renders the block picking a random variant of every choice:
// item, ability, level, nature, EV and IV spreads as well as tera and
// moves.
func (f *Formatter) FormatRandom(set *entities.MovesetRecord) string {
	return f.format(set, true)
}

func (f *Formatter) format(set *entities.MovesetRecord, randomVariants bool) string {
	var lines []string

	head := set.Pokemon
	if item, ok := f.pickString(set.Items, randomVariants); ok {
		head += " @ " + item
	}
	lines = append(lines, head)

	if ability, ok := f.pickString(set.Abilities, randomVariants); ok {
		lines = append(lines, "Ability: "+ability)
	}

	if len(set.Level) > 0 {
		level := set.Level[f.pickIndex(len(set.Level), randomVariants)]
		lines = append(lines, fmt.Sprintf("Level: %d", level))
	}

	if len(set.EVConfigs) > 0 {
		spread := set.EVConfigs[f.pickIndex(len(set.EVConfigs), randomVariants)]
		if line := spreadLine(spread, func(v int) bool { return v > 0 }); line != "" {
			lines = append(lines, "EVs: "+line)
		}
	}

	if len(set.IVConfigs) > 0 {
		spread := set.IVConfigs[f.pickIndex(len(set.IVConfigs), randomVariants)]
		if line := spreadLine(spread, func(v int) bool { return v != 31 }); line != "" {
			lines = append(lines, "IVs: "+line)
		}
	}

	if len(set.TeraTypes) > 0 {
		tera := set.TeraTypes[f.random.Intn(len(set.TeraTypes))]
		lines = append(lines, "Tera Type: "+tera)
	}

	if nature, ok := f.pickString(set.Natures, randomVariants); ok {
		lines = append(lines, nature+" Nature")
	}

	lines = append(lines, f.pickMoves(set.MoveSlots)...)

	return strings.Join(lines, "\n")
}

// pickMoves selects one candidate per non-empty slot, uniformly at random,
// never repeating a move chosen for an earlier slot of the same call.
func (f *Formatter) pickMoves(slots [][]entities.MoveOption) []string {
	chosen := make(map[string]bool)
	var lines []string

	for _, slot := range slots {
		if len(slot) == 0 {
			continue
		}

		remaining := make([]string, 0, len(slot))
		for _, option := range slot {
			if !chosen[option.Move] {
				remaining = append(remaining, option.Move)
			}
		}

		// Every candidate already used: the duplicate is unavoidable, keep
		// the slot's first option so the block stays importable.
		var move string
		if len(remaining) == 0 {
			move = slot[0].Move
		} else {
			move = remaining[f.random.Intn(len(remaining))]
		}

		chosen[move] = true
		lines = append(lines, "- "+move)
	}

	return lines
}

func (f *Formatter) pickIndex(n int, random bool) int {
	if random && n > 1 {
		return f.random.Intn(n)
	}
	return 0
}

func (f *Formatter) pickString(list []string, random bool) (string, bool) {
	if len(list) == 0 {
		return "", false
	}
	return list[f.pickIndex(len(list), random)], true
}

// spreadLine renders the stats of a spread that pass the filter, in the
// fixed HP/Atk/Def/SpA/SpD/Spe order.
func spreadLine(spread entities.StatSpread, include func(int) bool) string {
	values := []int{spread.HP, spread.Atk, spread.Def, spread.SpA, spread.SpD, spread.Spe}

	var parts []string
	for i, v := range values {
		if include(v) {
			parts = append(parts, fmt.Sprintf("%d %s", v, statNames[i]))
		}
	}

	return strings.Join(parts, " / ")
}
