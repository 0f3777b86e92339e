package moveset

//go:generate mockgen -destination=mock/mock_randomizer.go -package=mockmoveset -source=randomizer.go

import (
	"math/rand"
	"time"
)

// Randomizer provides the random picks the formatter needs.
// This allows us to inject deterministic implementations for testing.
type Randomizer interface {
	// Intn returns a uniform value in [0, n)
	Intn(n int) int
}

// mathRandomizer is the default math/rand backed implementation. Each
// formatter owns its source; there is no hidden global seed.
type mathRandomizer struct {
	rng *rand.Rand
}

func (m *mathRandomizer) Intn(n int) int {
	return m.rng.Intn(n)
}

// NewRandomizer creates the default time-seeded randomizer
func NewRandomizer() Randomizer {
	return &mathRandomizer{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}
