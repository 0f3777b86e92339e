// Package replay parses Pokemon Showdown battle logs into kill/death
// reports. The parser is pure: raw log bytes in, BattleReport out.
package replay

import (
	"strings"

	"github.com/clodbot/clodbot-discord/internal/entities"
	clerr "github.com/clodbot/clodbot-discord/internal/errors"
)

const revivalMove = "Revival Blessing"

// record is one pipe-delimited log line. Fields excludes the empty leading
// field, so Fields[0] is the record kind.
type record struct {
	Kind   string
	Fields []string
}

// position is a resolved "p1a: Sparky" style log position.
type position struct {
	Slot     entities.Slot
	Nickname string
}

// battlefield carries the mutable state of one parse.
type battlefield struct {
	players map[entities.Slot]string

	// nicknames maps per slot from nickname to canonical species
	nicknames map[entities.Slot]map[string]string

	// stats and order key rows by (slot, species)
	stats map[entities.Slot]map[string]*entities.PokemonStat
	order map[entities.Slot][]string

	// fainted marks nicknames currently at zero HP, for revival detection
	fainted map[entities.Slot]map[string]bool

	winner string
}

func newBattlefield() *battlefield {
	return &battlefield{
		players:   make(map[entities.Slot]string),
		nicknames: make(map[entities.Slot]map[string]string),
		stats:     make(map[entities.Slot]map[string]*entities.PokemonStat),
		order:     make(map[entities.Slot][]string),
		fainted:   make(map[entities.Slot]map[string]bool),
	}
}

// Parse ingests a raw Showdown battle log and produces per-Pokemon
// kill/death statistics. Unknown record kinds and partial fields are
// ignored; only a missing win or player record is fatal.
func Parse(raw []byte) (*entities.BattleReport, error) {
	records := splitRecords(raw)

	field := newBattlefield()

	for i, rec := range records {
		switch rec.Kind {
		case "player":
			field.handlePlayer(rec)
		case "poke":
			field.handlePreview(rec)
		case "switch", "drag":
			field.handleSwitch(rec)
		case "replace":
			field.handleReplace(rec)
		case "faint":
			field.handleFaint(rec, records[:i])
		case "-heal":
			field.handleHeal(rec, records[:i])
		case "win":
			if len(rec.Fields) > 1 {
				field.winner = rec.Fields[1]
			}
		}
	}

	return field.report()
}

// splitRecords breaks the log into records, dropping lines that carry no
// pipe-delimited payload.
func splitRecords(raw []byte) []record {
	lines := strings.Split(string(raw), "\n")
	records := make([]record, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if !strings.HasPrefix(line, "|") {
			continue
		}

		fields := strings.Split(line[1:], "|")
		if len(fields) == 0 || fields[0] == "" {
			continue
		}

		records = append(records, record{Kind: fields[0], Fields: fields})
	}

	return records
}

func (b *battlefield) handlePlayer(rec record) {
	if len(rec.Fields) < 3 || rec.Fields[2] == "" {
		return
	}

	slot := entities.Slot(rec.Fields[1])
	if slot != entities.SlotP1 && slot != entities.SlotP2 {
		return
	}

	// Player records repeat on rejoin; the first name wins.
	if _, ok := b.players[slot]; !ok {
		b.players[slot] = rec.Fields[2]
	}
}

// handlePreview seeds the team from a |poke| record. The species doubles as
// its own provisional nickname until a switch reveals the real one.
func (b *battlefield) handlePreview(rec record) {
	if len(rec.Fields) < 3 {
		return
	}

	slot := entities.Slot(rec.Fields[1])
	species := canonicalSpecies(rec.Fields[2])
	if species == "" {
		return
	}

	b.bindNickname(slot, species, species)
	b.ensureRow(slot, species)
}

func (b *battlefield) handleSwitch(rec record) {
	if len(rec.Fields) < 3 {
		return
	}

	pos, ok := parsePosition(rec.Fields[1])
	if !ok {
		return
	}

	species := canonicalSpecies(rec.Fields[2])
	if species == "" {
		return
	}

	b.bindNickname(pos.Slot, pos.Nickname, species)
	b.ensureRow(pos.Slot, species)
}

// handleReplace re-maps a nickname to the revealed species. The previously
// bound species keeps its own stat row, so an illusion Pokemon's deaths
// never leak onto the Pokemon it imitated.
func (b *battlefield) handleReplace(rec record) {
	if len(rec.Fields) < 3 {
		return
	}

	pos, ok := parsePosition(rec.Fields[1])
	if !ok {
		return
	}

	species := canonicalSpecies(rec.Fields[2])
	if species == "" {
		return
	}

	b.bindNickname(pos.Slot, pos.Nickname, species)
	b.ensureRow(pos.Slot, species)
}

// handleFaint counts the death and walks earlier records in reverse for the
// most recent opposing move, which gets the kill credit. Self-KOs, hazards,
// weather and status leave no opposing move and assign no credit.
func (b *battlefield) handleFaint(rec record, preceding []record) {
	if len(rec.Fields) < 2 {
		return
	}

	pos, ok := parsePosition(rec.Fields[1])
	if !ok {
		return
	}

	species := b.resolve(pos.Slot, pos.Nickname)
	row := b.ensureRow(pos.Slot, species)
	row.Deaths++
	b.markFainted(pos.Slot, pos.Nickname, true)

	for i := len(preceding) - 1; i >= 0; i-- {
		prev := preceding[i]
		if prev.Kind != "move" || len(prev.Fields) < 3 {
			continue
		}

		attacker, ok := parsePosition(prev.Fields[1])
		if !ok || attacker.Slot == pos.Slot {
			continue
		}

		attackerSpecies := b.resolve(attacker.Slot, attacker.Nickname)
		b.ensureRow(attacker.Slot, attackerSpecies).Kills++
		return
	}
}

// handleHeal detects revival: a heal targeting a Pokemon at zero HP,
// preceded within the same turn by a Revival Blessing from its own side.
// A revive cancels exactly one death and no kill credit.
func (b *battlefield) handleHeal(rec record, preceding []record) {
	if len(rec.Fields) < 2 {
		return
	}

	pos, ok := parsePosition(rec.Fields[1])
	if !ok {
		return
	}

	if !b.isFainted(pos.Slot, pos.Nickname) {
		return
	}

	if !revivalPrecedes(pos.Slot, preceding) {
		return
	}

	species := b.resolve(pos.Slot, pos.Nickname)
	row := b.ensureRow(pos.Slot, species)
	if row.Deaths > 0 {
		row.Deaths--
	}
	b.markFainted(pos.Slot, pos.Nickname, false)
}

// revivalPrecedes scans back to the last turn boundary for a Revival
// Blessing used by the healed side.
func revivalPrecedes(slot entities.Slot, preceding []record) bool {
	for i := len(preceding) - 1; i >= 0; i-- {
		prev := preceding[i]
		if prev.Kind == "turn" {
			return false
		}
		if prev.Kind != "move" || len(prev.Fields) < 3 {
			continue
		}

		user, ok := parsePosition(prev.Fields[1])
		if !ok {
			continue
		}
		if user.Slot == slot && prev.Fields[2] == revivalMove {
			return true
		}
	}
	return false
}

func (b *battlefield) report() (*entities.BattleReport, error) {
	if len(b.players) == 0 {
		return nil, clerr.MalformedLog("replay log contains no player records")
	}
	if b.winner == "" {
		return nil, clerr.MalformedLog("replay log contains no win record")
	}

	winnerSlot := entities.SlotP1
	if b.players[entities.SlotP2] == b.winner {
		winnerSlot = entities.SlotP2
	}
	loserSlot := winnerSlot.Opponent()

	report := &entities.BattleReport{
		Players:    b.players,
		Teams:      make(map[entities.Slot][]*entities.PokemonStat),
		WinnerSlot: winnerSlot,
		LoserSlot:  loserSlot,
		Score: entities.Score{
			LoserFaints:  b.totalDeaths(loserSlot),
			WinnerFaints: b.totalDeaths(winnerSlot),
		},
	}

	for slot, species := range b.order {
		team := make([]*entities.PokemonStat, 0, len(species))
		for _, name := range species {
			team = append(team, b.stats[slot][name])
		}
		report.Teams[slot] = team
	}

	return report, nil
}

func (b *battlefield) totalDeaths(slot entities.Slot) int {
	total := 0
	for _, row := range b.stats[slot] {
		total += row.Deaths
	}
	return total
}

func (b *battlefield) bindNickname(slot entities.Slot, nickname, species string) {
	if b.nicknames[slot] == nil {
		b.nicknames[slot] = make(map[string]string)
	}
	b.nicknames[slot][nickname] = species
}

// resolve maps a nickname to its species; an unknown nickname is treated as
// the species itself.
func (b *battlefield) resolve(slot entities.Slot, nickname string) string {
	if species, ok := b.nicknames[slot][nickname]; ok {
		return species
	}
	return nickname
}

func (b *battlefield) ensureRow(slot entities.Slot, species string) *entities.PokemonStat {
	if b.stats[slot] == nil {
		b.stats[slot] = make(map[string]*entities.PokemonStat)
	}

	if row, ok := b.stats[slot][species]; ok {
		return row
	}

	row := &entities.PokemonStat{
		Species:     species,
		GamesPlayed: 1,
	}
	b.stats[slot][species] = row
	b.order[slot] = append(b.order[slot], species)
	return row
}

func (b *battlefield) markFainted(slot entities.Slot, nickname string, down bool) {
	if b.fainted[slot] == nil {
		b.fainted[slot] = make(map[string]bool)
	}
	b.fainted[slot][nickname] = down
}

func (b *battlefield) isFainted(slot entities.Slot, nickname string) bool {
	return b.fainted[slot][nickname]
}

// parsePosition splits "p1a: Sparky" (or "p1: Sparky" on heal records) into
// slot and nickname.
func parsePosition(field string) (position, bool) {
	ident, nickname, ok := strings.Cut(field, ":")
	if !ok {
		return position{}, false
	}

	ident = strings.TrimSpace(ident)
	if len(ident) < 2 {
		return position{}, false
	}

	slot := entities.Slot(ident[:2])
	if slot != entities.SlotP1 && slot != entities.SlotP2 {
		return position{}, false
	}

	return position{
		Slot:     slot,
		Nickname: strings.TrimSpace(nickname),
	}, true
}

// canonicalSpecies strips the form/gender qualifier: everything after the
// first comma.
func canonicalSpecies(field string) string {
	species, _, _ := strings.Cut(field, ",")
	return strings.TrimSpace(species)
}
