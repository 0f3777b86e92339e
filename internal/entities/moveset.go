package entities

// SetRequest is a single Pokemon lookup parsed from a giveset command.
// Slugs are hyphen-separated lower-case; generation and format are optional.
type SetRequest struct {
	Pokemon    string
	Generation string
	Format     string
}

// StatSpread is an EV or IV configuration from the catalog.
type StatSpread struct {
	HP  int `json:"hp"`
	Atk int `json:"atk"`
	Def int `json:"def"`
	SpA int `json:"spa"`
	SpD int `json:"spd"`
	Spe int `json:"spe"`
}

// MoveOption is one interchangeable candidate move within a slot.
type MoveOption struct {
	Move string `json:"move"`
	Type string `json:"type,omitempty"`
}

// MovesetRecord is a recommended build as returned by the Smogon data
// service. Every field except Pokemon may be empty; each moveslot is a list
// of interchangeable candidates.
type MovesetRecord struct {
	Name      string         `json:"name"`
	Pokemon   string         `json:"pokemon"`
	Level     []int          `json:"level"`
	Abilities []string       `json:"abilities"`
	Items     []string       `json:"items"`
	Natures   []string       `json:"natures"`
	TeraTypes []string       `json:"teratypes"`
	EVConfigs []StatSpread   `json:"evconfigs"`
	IVConfigs []StatSpread   `json:"ivconfigs"`
	MoveSlots [][]MoveOption `json:"moveslots"`
}

// Strategy groups the movesets recommended for one format.
type Strategy struct {
	Format   string          `json:"format"`
	Movesets []MovesetRecord `json:"movesets"`
}
