package entities

// Slot identifies a player side in a Showdown battle log.
type Slot string

const (
	SlotP1 Slot = "p1"
	SlotP2 Slot = "p2"
)

// Opponent returns the opposing slot.
func (s Slot) Opponent() Slot {
	if s == SlotP1 {
		return SlotP2
	}
	return SlotP1
}

// PokemonStat is one Pokemon's line in a battle report. Stats are keyed by
// canonical species name, never by nickname.
type PokemonStat struct {
	Species     string `json:"species"`
	Kills       int    `json:"kills"`
	Deaths      int    `json:"deaths"`
	GamesPlayed int    `json:"games_played"`
}

// Score is the final score of a battle, ordered loser first so a 6-0 sweep
// reads as (6, 0).
type Score struct {
	LoserFaints  int `json:"loser_faints"`
	WinnerFaints int `json:"winner_faints"`
}

// BattleReport is the normalized output of the replay parser.
type BattleReport struct {
	// Players maps slot to display name, exactly p1 and p2
	Players map[Slot]string `json:"players"`

	// Teams holds per-slot Pokemon stats in first-seen order
	Teams map[Slot][]*PokemonStat `json:"teams"`

	WinnerSlot Slot  `json:"winner_slot"`
	LoserSlot  Slot  `json:"loser_slot"`
	Score      Score `json:"score"`
}

// Winner returns the winning player's display name.
func (r *BattleReport) Winner() string {
	return r.Players[r.WinnerSlot]
}

// Loser returns the losing player's display name.
func (r *BattleReport) Loser() string {
	return r.Players[r.LoserSlot]
}
