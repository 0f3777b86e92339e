// Package showdown fetches raw battle logs from the replay host.
package showdown

//go:generate mockgen -destination=mock/mock_client.go -package=mockshowdown -source=client.go

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	clerr "github.com/clodbot/clodbot-discord/internal/errors"
)

// Client retrieves replay logs.
type Client interface {
	// FetchLog downloads the raw battle log for a replay URL
	FetchLog(ctx context.Context, replayURL string) ([]byte, error)
}

type client struct {
	httpClient *http.Client
	host       string
}

// Config holds configuration for the replay client
type Config struct {
	HTTPClient *http.Client
	// Host is the accepted replay host, e.g. replay.pokemonshowdown.com
	Host string
}

// New creates a new replay client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, clerr.Internal("cfg is required")
	}
	if cfg.Host == "" {
		return nil, clerr.Internal("replay host is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &client{
		httpClient: httpClient,
		host:       cfg.Host,
	}, nil
}

// LogURL validates the replay URL's origin and shape against the configured
// host and returns the .log fetch URL.
func (c *client) LogURL(replayURL string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(replayURL))
	if err != nil {
		return "", clerr.InvalidReplayURL("replay URL is not a URL")
	}

	if parsed.Scheme != "https" && parsed.Scheme != "http" {
		return "", clerr.InvalidReplayURL("replay URL must be http(s)")
	}
	if parsed.Host != c.host {
		return "", clerr.InvalidReplayURL("replay URL host is not the replay site")
	}

	path := strings.TrimSuffix(parsed.Path, ".log")
	if path == "" || path == "/" || strings.Count(path, "/") != 1 {
		return "", clerr.InvalidReplayURL("replay URL path does not name a single replay")
	}

	parsed.Path = path + ".log"
	parsed.RawQuery = ""
	parsed.Fragment = ""
	return parsed.String(), nil
}

func (c *client) FetchLog(ctx context.Context, replayURL string) ([]byte, error) {
	logURL, err := c.LogURL(replayURL)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, logURL, nil)
	if err != nil {
		return nil, clerr.WrapWithCode(err, clerr.CodeUpstream, "failed to build replay request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, clerr.WrapWithCode(err, clerr.CodeUpstream, "replay request failed")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode == http.StatusNotFound {
		return nil, clerr.NotFound("replay not found")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, clerr.Upstreamf("replay host returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, clerr.WrapWithCode(err, clerr.CodeUpstream, "failed to read replay log")
	}

	return raw, nil
}
