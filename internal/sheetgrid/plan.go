package sheetgrid

import (
	"strconv"

	"github.com/clodbot/clodbot-discord/internal/entities"
	clerr "github.com/clodbot/clodbot-discord/internal/errors"
)

// MergePlan asks the spreadsheet collaborator to merge a section's five
// name-row cells horizontally and center the result. Rows are one-based,
// columns zero-based, both ends inclusive.
type MergePlan struct {
	Row      int
	StartCol int
	EndCol   int
}

// RowWrite is a single Pokemon line destined for a specific sheet row.
type RowWrite struct {
	Row     int
	Col     int
	Species string
	Games   int
	Kills   int
	Deaths  int
}

// Range returns the A1 range the four cells of the write occupy.
func (w RowWrite) Range() string {
	return ColumnLetter(w.Col) + strconv.Itoa(w.Row) + ":" + ColumnLetter(w.Col+3) + strconv.Itoa(w.Row)
}

// Values returns the row in the column order of the section header.
func (w RowWrite) Values() []any {
	return []any{w.Species, w.Games, w.Kills, w.Deaths}
}

// SyncResult is the outcome of planning one section against incoming stats.
type SyncResult struct {
	// Updates accumulate onto rows whose species already exist
	Updates []RowWrite

	// Inserts fill the first empty data rows for new species
	Inserts []RowWrite
}

// NewMergePlan builds the merge request for the section anchored at origin.
func NewMergePlan(origin Cell) MergePlan {
	return MergePlan{
		Row:      origin.Row,
		StartCol: origin.Col,
		EndCol:   origin.Col + SectionWidth - 1,
	}
}

// SyncPlan computes update and insert writes to fold the incoming Pokemon
// into the section. Existing species accumulate games, kills and deaths;
// new species append in order to the first empty data rows. A section
// without room for every new species yields a SectionFull error and no
// partial plan.
func SyncPlan(section *Section, incoming []*entities.PokemonStat) (*SyncResult, error) {
	existing := make(map[string]Row, len(section.Rows))
	for _, row := range section.Rows {
		existing[row.Species] = row
	}

	firstDataRow := section.firstDataRow()
	lastDataRow := firstDataRow + DataRows - 1

	// Populated rows may have blank gaps between them, so free rows are
	// tracked by sheet row rather than counted.
	occupied := make(map[int]bool, len(section.Rows))
	for _, row := range section.Rows {
		occupied[row.SheetRow] = true
	}

	result := &SyncResult{}

	for _, stat := range incoming {
		if row, ok := existing[stat.Species]; ok {
			result.Updates = append(result.Updates, RowWrite{
				Row:     row.SheetRow,
				Col:     section.Col,
				Species: stat.Species,
				Games:   row.Games + stat.GamesPlayed,
				Kills:   row.Kills + stat.Kills,
				Deaths:  row.Deaths + stat.Deaths,
			})
			continue
		}

		insertRow := 0
		for r := firstDataRow; r <= lastDataRow; r++ {
			if !occupied[r] {
				insertRow = r
				break
			}
		}
		if insertRow == 0 {
			return nil, clerr.SectionFullf("section %q cannot hold %s",
				section.Name, stat.Species).WithMeta("player", section.Name)
		}
		occupied[insertRow] = true

		result.Inserts = append(result.Inserts, RowWrite{
			Row:     insertRow,
			Col:     section.Col,
			Species: stat.Species,
			Games:   stat.GamesPlayed,
			Kills:   stat.Kills,
			Deaths:  stat.Deaths,
		})
	}

	return result, nil
}

// InsertPlan lays out a brand-new section for a player: the name cell, the
// header row, one row per Pokemon, and the merge for the name row.
type InsertPlan struct {
	Origin Cell
	Name   string
	Merge  MergePlan
	Rows   []RowWrite
}

// NewInsertPlan builds a full-section write at origin. Every row carries the
// team's first-game stats.
func NewInsertPlan(origin Cell, playerName string, team []*entities.PokemonStat) (*InsertPlan, error) {
	if len(team) > DataRows {
		return nil, clerr.SectionFullf("team of %d exceeds the %d rows of a section",
			len(team), DataRows)
	}

	plan := &InsertPlan{
		Origin: origin,
		Name:   playerName,
		Merge:  NewMergePlan(origin),
	}

	for i, stat := range team {
		plan.Rows = append(plan.Rows, RowWrite{
			Row:     origin.Row + 2 + i,
			Col:     origin.Col,
			Species: stat.Species,
			Games:   stat.GamesPlayed,
			Kills:   stat.Kills,
			Deaths:  stat.Deaths,
		})
	}

	return plan, nil
}
