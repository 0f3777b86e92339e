package services

import (
	"github.com/clodbot/clodbot-discord/internal/clients/sheets"
	"github.com/clodbot/clodbot-discord/internal/clients/showdown"
	"github.com/clodbot/clodbot-discord/internal/clients/smogon"
	"github.com/clodbot/clodbot-discord/internal/moveset"
	"github.com/clodbot/clodbot-discord/internal/repositories/credentials"
	"github.com/clodbot/clodbot-discord/internal/repositories/denylist"
	"github.com/clodbot/clodbot-discord/internal/repositories/scopes"
	battleService "github.com/clodbot/clodbot-discord/internal/services/battle"
	setService "github.com/clodbot/clodbot-discord/internal/services/set"
	sheetService "github.com/clodbot/clodbot-discord/internal/services/sheet"
)

// Provider holds all service instances
type Provider struct {
	BattleService battleService.Service
	SetService    setService.Service
	SheetService  sheetService.Service

	// CredentialRepository backs the stats endpoint credential lookup
	CredentialRepository credentials.Repository
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	ShowdownClient showdown.Client
	SmogonClient   smogon.Client
	SheetsService  sheets.Service

	ScopeRepository      scopes.Repository
	DenylistRepository   denylist.Repository
	CredentialRepository credentials.Repository
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repositories if none provided
	scopeRepo := cfg.ScopeRepository
	if scopeRepo == nil {
		scopeRepo = scopes.NewInMemoryRepository()
	}

	denyRepo := cfg.DenylistRepository
	if denyRepo == nil {
		denyRepo = denylist.NewInMemoryRepository()
	}

	credRepo := cfg.CredentialRepository
	if credRepo == nil {
		credRepo = credentials.NewInMemoryRepository()
	}

	battleSvc := battleService.NewService(&battleService.ServiceConfig{
		ShowdownClient: cfg.ShowdownClient,
	})

	setSvc := setService.NewService(&setService.ServiceConfig{
		Catalog:   cfg.SmogonClient,
		Formatter: moveset.NewFormatter(nil),
	})

	sheetSvc := sheetService.NewService(&sheetService.ServiceConfig{
		Sheets:   cfg.SheetsService,
		Scopes:   scopeRepo,
		Denylist: denyRepo,
	})

	return &Provider{
		BattleService:        battleSvc,
		SetService:           setSvc,
		SheetService:         sheetSvc,
		CredentialRepository: credRepo,
	}
}
