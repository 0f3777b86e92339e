package smogon

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/clodbot/clodbot-discord/internal/entities"
	clerr "github.com/clodbot/clodbot-discord/internal/errors"
)

// client implements Client over the Smogon data service HTTP API.
type client struct {
	httpClient *http.Client
	baseURL    string
	username   string
	password   string
	rng        *rand.Rand
}

// Config holds configuration for the Smogon client
type Config struct {
	HTTPClient *http.Client
	BaseURL    string
	// Username and Password are the stats endpoint credential pair,
	// optional when the endpoint is open
	Username string
	Password string
}

// New creates a new Smogon catalog client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, clerr.Internal("cfg is required")
	}
	if cfg.BaseURL == "" {
		return nil, clerr.Internal("base URL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &client{
		httpClient: httpClient,
		baseURL:    cfg.BaseURL,
		username:   cfg.Username,
		password:   cfg.Password,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// catalogResponse is the wire shape of GetSmogonData.
type catalogResponse struct {
	Strategies []entities.Strategy `json:"strategies"`
}

// fetch retrieves the strategies for one Pokemon in one generation.
func (c *client) fetch(ctx context.Context, genCode, pokemon string) ([]entities.Strategy, error) {
	url := fmt.Sprintf("%s/GetSmogonData/%s/%s", c.baseURL, genCode, pokemon)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, clerr.WrapWithCode(err, clerr.CodeUpstream, "failed to build catalog request")
	}
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, clerr.WrapWithCode(err, clerr.CodeUpstream, "catalog request failed")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode == http.StatusNotFound {
		return nil, clerr.NotFoundf("no data for %s in %s", pokemon, genCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, clerr.Upstreamf("catalog returned status %d", resp.StatusCode)
	}

	var payload catalogResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, clerr.WrapWithCode(err, clerr.CodeUpstream, "failed to decode catalog response")
	}

	return payload.Strategies, nil
}

// strategies resolves the generation input and fetches, requiring at least
// one non-empty strategy.
func (c *client) strategies(ctx context.Context, pokemon, generation string) ([]entities.Strategy, string, error) {
	genCode := generation
	if genCode == "" {
		latest, err := c.LatestGeneration(ctx, pokemon)
		if err != nil {
			return nil, "", err
		}
		genCode = latest
	} else {
		code, ok := NormalizeGeneration(genCode)
		if !ok {
			return nil, "", clerr.NotFoundf("unknown generation %q", generation)
		}
		genCode = code
	}

	strategies, err := c.fetch(ctx, genCode, pokemon)
	if err != nil {
		return nil, "", err
	}
	if len(strategies) == 0 {
		return nil, "", clerr.NotFoundf("no sets for %s in %s", pokemon, genCode)
	}

	return strategies, genCode, nil
}

func (c *client) LatestGeneration(ctx context.Context, pokemon string) (string, error) {
	for _, code := range newestFirst {
		strategies, err := c.fetch(ctx, code, pokemon)
		if clerr.IsNotFound(err) {
			continue
		}
		if err != nil {
			return "", err
		}
		if len(strategies) > 0 {
			return code, nil
		}
	}
	return "", clerr.NotFoundf("no sets found for %s in any generation", pokemon)
}

func (c *client) FirstFormat(ctx context.Context, pokemon, generation string) (string, error) {
	strategies, _, err := c.strategies(ctx, pokemon, generation)
	if err != nil {
		return "", err
	}

	for _, strategy := range strategies {
		if len(strategy.Movesets) > 0 {
			return strategy.Format, nil
		}
	}
	return "", clerr.NotFoundf("no formats with sets for %s", pokemon)
}

func (c *client) SetNames(ctx context.Context, pokemon, generation, format string) ([]string, error) {
	strategies, genCode, err := c.strategies(ctx, pokemon, generation)
	if err != nil {
		return nil, err
	}

	if format == "" {
		format, err = c.FirstFormat(ctx, pokemon, genCode)
		if err != nil {
			return nil, err
		}
	}

	for _, strategy := range strategies {
		if strategy.Format != format {
			continue
		}

		names := make([]string, 0, len(strategy.Movesets))
		for _, set := range strategy.Movesets {
			names = append(names, set.Name)
		}
		if len(names) == 0 {
			break
		}
		return names, nil
	}

	return nil, clerr.NotFoundf("no sets for %s in format %s", pokemon, format)
}

func (c *client) Moveset(ctx context.Context, pokemon, generation, format, setName string) (*entities.MovesetRecord, error) {
	strategies, _, err := c.strategies(ctx, pokemon, generation)
	if err != nil {
		return nil, err
	}

	for _, strategy := range strategies {
		if strategy.Format != format {
			continue
		}
		for i := range strategy.Movesets {
			if strategy.Movesets[i].Name == setName {
				set := strategy.Movesets[i]
				if set.Pokemon == "" {
					set.Pokemon = pokemon
				}
				return &set, nil
			}
		}
	}

	return nil, clerr.NotFoundf("set %q not found for %s in %s", setName, pokemon, format)
}

func (c *client) RandomGeneration(ctx context.Context, pokemon string) (string, error) {
	// Probe in random order and keep the first generation with data, so the
	// pick stays uniform over populated generations without fetching all
	// nine when the first probe hits.
	order := c.rng.Perm(len(newestFirst))

	for _, i := range order {
		code := newestFirst[i]
		strategies, err := c.fetch(ctx, code, pokemon)
		if clerr.IsNotFound(err) {
			continue
		}
		if err != nil {
			return "", err
		}
		if len(strategies) > 0 {
			return code, nil
		}
	}

	return "", clerr.NotFoundf("no sets found for %s in any generation", pokemon)
}

func (c *client) RandomFormat(ctx context.Context, pokemon, generation string) (string, error) {
	strategies, _, err := c.strategies(ctx, pokemon, generation)
	if err != nil {
		return "", err
	}

	populated := make([]string, 0, len(strategies))
	for _, strategy := range strategies {
		if len(strategy.Movesets) > 0 {
			populated = append(populated, strategy.Format)
		}
	}
	if len(populated) == 0 {
		return "", clerr.NotFoundf("no formats with sets for %s", pokemon)
	}

	return populated[c.rng.Intn(len(populated))], nil
}

func (c *client) RandomSetName(ctx context.Context, pokemon, generation, format string) (string, error) {
	names, err := c.SetNames(ctx, pokemon, generation, format)
	if err != nil {
		return "", err
	}
	return names[c.rng.Intn(len(names))], nil
}
