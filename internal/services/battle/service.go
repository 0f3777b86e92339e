// Package battle turns a replay URL into a battle report.
package battle

//go:generate mockgen -destination=mock/mock_service.go -package=mockbattle -source=service.go

import (
	"context"
	"strings"

	"github.com/clodbot/clodbot-discord/internal/clients/showdown"
	"github.com/clodbot/clodbot-discord/internal/entities"
	clerr "github.com/clodbot/clodbot-discord/internal/errors"
	"github.com/clodbot/clodbot-discord/internal/replay"
)

// Service defines the battle analysis interface
type Service interface {
	// Analyze fetches a replay log and parses it into a report
	Analyze(ctx context.Context, replayURL string) (*entities.BattleReport, error)
}

// service implements the Service interface
type service struct {
	showdownClient showdown.Client
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	ShowdownClient showdown.Client // Required
}

// NewService creates a new battle service
func NewService(cfg *ServiceConfig) Service {
	if cfg.ShowdownClient == nil {
		panic("showdown client is required")
	}

	return &service{
		showdownClient: cfg.ShowdownClient,
	}
}

func (s *service) Analyze(ctx context.Context, replayURL string) (*entities.BattleReport, error) {
	if strings.TrimSpace(replayURL) == "" {
		return nil, clerr.InvalidReplayURL("replay URL is required")
	}

	raw, err := s.showdownClient.FetchLog(ctx, replayURL)
	if err != nil {
		return nil, err
	}

	report, err := replay.Parse(raw)
	if err != nil {
		return nil, clerr.Wrap(err, "failed to parse replay log")
	}

	return report, nil
}
