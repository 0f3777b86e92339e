package entities

import "time"

// SetGroup is one Pokemon's slice of a selection session: the choices that
// were offered and which of them are currently toggled on.
type SetGroup struct {
	Pokemon    string
	Generation string
	Format     string

	// SetNames are the offered choices in catalog order
	SetNames []string

	// Selected holds toggled-on set names in click order
	Selected []string

	// Bodies caches formatted blocks by set name
	Bodies map[string]string

	// MessageID is the button-grid message for this group
	MessageID string
}

// IsSelected reports whether the named set is currently toggled on.
func (g *SetGroup) IsSelected(setName string) bool {
	for _, name := range g.Selected {
		if name == setName {
			return true
		}
	}
	return false
}

// SelectionState is a single user's giveset interaction. It is created on
// command invocation, mutated only by its owner, and dropped on dismissal or
// idle expiry.
type SelectionState struct {
	ID        string
	OwnerID   string
	ChannelID string

	// Groups are ordered by request index
	Groups []*SetGroup

	// AggregateMessageID is the latest rendered output, empty when none
	AggregateMessageID string

	CreatedAt  time.Time
	LastToggle time.Time
	Closed     bool
}

// Aggregate concatenates every selected set's formatted block, separated by
// blank lines, ordered by request index then click time.
func (s *SelectionState) Aggregate() string {
	var out string
	for _, group := range s.Groups {
		for _, name := range group.Selected {
			body, ok := group.Bodies[name]
			if !ok {
				continue
			}
			if out != "" {
				out += "\n\n"
			}
			out += body
		}
	}
	return out
}
