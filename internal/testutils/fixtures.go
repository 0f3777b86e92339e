package testutils

import "github.com/clodbot/clodbot-discord/internal/entities"

// CreateTestReport builds a finished two-player battle report with a 2-1
// score, the shape most service tests need.
func CreateTestReport() *entities.BattleReport {
	return &entities.BattleReport{
		Players: map[entities.Slot]string{
			entities.SlotP1: "Alice",
			entities.SlotP2: "Bob",
		},
		Teams: map[entities.Slot][]*entities.PokemonStat{
			entities.SlotP1: {
				{Species: "Pikachu", Kills: 2, Deaths: 1, GamesPlayed: 1},
				{Species: "Snorlax", Kills: 0, Deaths: 0, GamesPlayed: 1},
			},
			entities.SlotP2: {
				{Species: "Garchomp", Kills: 1, Deaths: 1, GamesPlayed: 1},
				{Species: "Gengar", Kills: 0, Deaths: 1, GamesPlayed: 1},
			},
		},
		WinnerSlot: entities.SlotP1,
		LoserSlot:  entities.SlotP2,
		Score:      entities.Score{LoserFaints: 2, WinnerFaints: 1},
	}
}

// CreateTestMoveset builds a single-variant moveset record.
func CreateTestMoveset(pokemon, name string) *entities.MovesetRecord {
	return &entities.MovesetRecord{
		Name:      name,
		Pokemon:   pokemon,
		Abilities: []string{"Levitate"},
		Items:     []string{"Life Orb"},
		Natures:   []string{"Timid"},
		EVConfigs: []entities.StatSpread{
			{SpA: 252, Spe: 252, HP: 4},
		},
		MoveSlots: [][]entities.MoveOption{
			{{Move: "Shadow Ball", Type: "Ghost"}},
			{{Move: "Sludge Bomb", Type: "Poison"}},
			{{Move: "Focus Blast", Type: "Fighting"}},
			{{Move: "Protect", Type: "Normal"}},
		},
	}
}
