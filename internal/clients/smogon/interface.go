package smogon

//go:generate mockgen -destination=mock/mock_client.go -package=mocksmogon -source=interface.go

import (
	"context"

	"github.com/clodbot/clodbot-discord/internal/entities"
)

// Client is the set catalog: recommended movesets per Pokemon, generation
// and format, served by the Smogon data service. Empty remote results map
// to NotFound, transport failures to Upstream; neither is retried here.
type Client interface {
	// LatestGeneration probes gen9 down to gen1 and returns the code of
	// the first generation with recommended sets for the Pokemon
	LatestGeneration(ctx context.Context, pokemon string) (string, error)

	// FirstFormat returns the first format with sets for the Pokemon in
	// the given generation
	FirstFormat(ctx context.Context, pokemon, generation string) (string, error)

	// SetNames lists the recommended set names. Empty generation resolves
	// to the latest, empty format to the first.
	SetNames(ctx context.Context, pokemon, generation, format string) ([]string, error)

	// Moveset fetches one named set
	Moveset(ctx context.Context, pokemon, generation, format, setName string) (*entities.MovesetRecord, error)

	// RandomGeneration returns a uniformly chosen generation that has sets
	// for the Pokemon
	RandomGeneration(ctx context.Context, pokemon string) (string, error)

	// RandomFormat returns a uniformly chosen format with sets in the
	// generation
	RandomFormat(ctx context.Context, pokemon, generation string) (string, error)

	// RandomSetName returns a uniformly chosen set name
	RandomSetName(ctx context.Context, pokemon, generation, format string) (string, error)
}
