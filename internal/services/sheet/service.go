// Package sheet syncs battle reports into player stat sections on a
// spreadsheet.
package sheet

//go:generate mockgen -destination=mock/mock_service.go -package=mocksheet -source=service.go

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/clodbot/clodbot-discord/internal/clients/sheets"
	"github.com/clodbot/clodbot-discord/internal/entities"
	clerr "github.com/clodbot/clodbot-discord/internal/errors"
	"github.com/clodbot/clodbot-discord/internal/repositories/denylist"
	"github.com/clodbot/clodbot-discord/internal/repositories/scopes"
	"github.com/clodbot/clodbot-discord/internal/sheetgrid"
)

// gridRange covers every column a section can occupy.
const gridRange = "A1:U"

// Target names the spreadsheet an operation works on. An empty SheetURL
// falls back to the scope's default binding.
type Target struct {
	ScopeID  string
	SheetURL string
}

// Service defines the sheet sync interface
type Service interface {
	// SetDefault binds a sheet URL as the scope's default, returning its id
	SetDefault(ctx context.Context, scopeID, sheetURL string) (string, error)

	// GetDefault returns the scope's default sheet id, no_default when unset
	GetDefault(ctx context.Context, scopeID string) (string, error)

	// InsertReport writes fresh sections for both players of a report
	InsertReport(ctx context.Context, target Target, report *entities.BattleReport) error

	// UpdateReport folds a report into existing sections, inserting sections
	// for players that have none
	UpdateReport(ctx context.Context, target Target, report *entities.BattleReport) error

	// DeletePlayer blanks the named player's section
	DeletePlayer(ctx context.Context, target Target, playerName string) error

	// ListPlayers enumerates the player names of every valid section
	ListPlayers(ctx context.Context, target Target) ([]string, error)

	// ListPokemon enumerates the distinct species across every valid section
	ListPokemon(ctx context.Context, target Target) ([]string, error)
}

// service implements the Service interface
type service struct {
	sheets   sheets.Service
	scopes   scopes.Repository
	denylist denylist.Repository

	// mu guards locks; each sheet's mutex serializes its read-modify-write
	// spans.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Sheets   sheets.Service      // Required
	Scopes   scopes.Repository   // Required
	Denylist denylist.Repository // Required
}

// NewService creates a new sheet sync service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Sheets == nil {
		panic("sheets service is required")
	}
	if cfg.Scopes == nil {
		panic("scopes repository is required")
	}
	if cfg.Denylist == nil {
		panic("denylist repository is required")
	}

	return &service{
		sheets:   cfg.Sheets,
		scopes:   cfg.Scopes,
		denylist: cfg.Denylist,
		locks:    make(map[string]*sync.Mutex),
	}
}

func (s *service) SetDefault(ctx context.Context, scopeID, sheetURL string) (string, error) {
	if strings.TrimSpace(sheetURL) == "" {
		return "", clerr.BadArguments("sheet URL is required")
	}

	sheetID, err := sheets.ParseSheetID(sheetURL)
	if err != nil {
		return "", err
	}

	if err := s.scopes.SetDefault(ctx, scopeID, sheetID); err != nil {
		return "", err
	}
	return sheetID, nil
}

func (s *service) GetDefault(ctx context.Context, scopeID string) (string, error) {
	sheetID, err := s.scopes.GetDefault(ctx, scopeID)
	if err != nil {
		if clerr.IsNotFound(err) {
			return "", clerr.NoDefault("no default sheet configured for this scope")
		}
		return "", err
	}
	return sheetID, nil
}

func (s *service) InsertReport(ctx context.Context, target Target, report *entities.BattleReport) error {
	if report == nil {
		return clerr.BadArguments("report cannot be nil")
	}

	sheetID, err := s.resolveSheetID(ctx, target)
	if err != nil {
		return err
	}

	unlock := s.lockSheet(sheetID)
	defer unlock()

	for _, slot := range []entities.Slot{report.WinnerSlot, report.LoserSlot} {
		if err := s.insertSlot(ctx, sheetID, report.Players[slot], report.Teams[slot]); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) UpdateReport(ctx context.Context, target Target, report *entities.BattleReport) error {
	if report == nil {
		return clerr.BadArguments("report cannot be nil")
	}

	sheetID, err := s.resolveSheetID(ctx, target)
	if err != nil {
		return err
	}

	unlock := s.lockSheet(sheetID)
	defer unlock()

	for _, slot := range []entities.Slot{report.WinnerSlot, report.LoserSlot} {
		playerName := report.Players[slot]
		team := report.Teams[slot]

		values, err := s.readGrid(ctx, sheetID)
		if err != nil {
			return err
		}

		section, found := sheetgrid.FindSection(values, playerName)
		if !found {
			if err := s.insertSlot(ctx, sheetID, playerName, team); err != nil {
				return err
			}
			continue
		}

		plan, err := sheetgrid.SyncPlan(section, team)
		if err != nil {
			return err
		}

		data := make(map[string][][]any)
		for _, write := range append(plan.Updates, plan.Inserts...) {
			data[write.Range()] = [][]any{write.Values()}
		}
		if len(data) == 0 {
			continue
		}

		if err := s.sheets.BatchUpdateValues(ctx, sheetID, data); err != nil {
			return s.wrapSheetError(ctx, sheetID, err)
		}
	}
	return nil
}

func (s *service) DeletePlayer(ctx context.Context, target Target, playerName string) error {
	if strings.TrimSpace(playerName) == "" {
		return clerr.BadArguments("player name is required")
	}

	sheetID, err := s.resolveSheetID(ctx, target)
	if err != nil {
		return err
	}

	unlock := s.lockSheet(sheetID)
	defer unlock()

	values, err := s.readGrid(ctx, sheetID)
	if err != nil {
		return err
	}

	section, found := sheetgrid.FindSection(values, playerName)
	if !found {
		return clerr.NameDoesNotExistf("no section for player %q", playerName)
	}

	// Name, header and data rows; later sections are not re-packed.
	clearRange := sheetgrid.RangeRef(section.Col, section.TopRow, section.TopRow+sheetgrid.SectionHeight-2)
	if err := s.sheets.ClearValues(ctx, sheetID, []string{clearRange}); err != nil {
		return s.wrapSheetError(ctx, sheetID, err)
	}
	return nil
}

func (s *service) ListPlayers(ctx context.Context, target Target) ([]string, error) {
	sections, err := s.listSections(ctx, target)
	if err != nil {
		return nil, err
	}

	players := make([]string, 0, len(sections))
	for _, section := range sections {
		players = append(players, section.Name)
	}
	return players, nil
}

func (s *service) ListPokemon(ctx context.Context, target Target) ([]string, error) {
	sections, err := s.listSections(ctx, target)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var species []string
	for _, section := range sections {
		for _, row := range section.Rows {
			if seen[row.Species] {
				continue
			}
			seen[row.Species] = true
			species = append(species, row.Species)
		}
	}
	return species, nil
}

// insertSlot allocates the next free section and writes one player's full
// block: merged name row, header row and one line per Pokemon.
func (s *service) insertSlot(ctx context.Context, sheetID, playerName string, team []*entities.PokemonStat) error {
	values, err := s.readGrid(ctx, sheetID)
	if err != nil {
		return err
	}

	origin := sheetgrid.NextCell(values)
	plan, err := sheetgrid.NewInsertPlan(origin, playerName, team)
	if err != nil {
		return err
	}

	if err := s.sheets.MergeAndCenter(ctx, sheetID, plan.Merge); err != nil {
		return s.wrapSheetError(ctx, sheetID, err)
	}

	data := map[string][][]any{
		origin.String(): {{plan.Name}},
		headerRange(origin): {{
			sheetgrid.HeaderRow[0], sheetgrid.HeaderRow[1],
			sheetgrid.HeaderRow[2], sheetgrid.HeaderRow[3],
		}},
	}
	for _, write := range plan.Rows {
		data[write.Range()] = [][]any{write.Values()}
	}

	if err := s.sheets.BatchUpdateValues(ctx, sheetID, data); err != nil {
		return s.wrapSheetError(ctx, sheetID, err)
	}
	return nil
}

func (s *service) listSections(ctx context.Context, target Target) ([]*sheetgrid.Section, error) {
	sheetID, err := s.resolveSheetID(ctx, target)
	if err != nil {
		return nil, err
	}

	values, err := s.readGrid(ctx, sheetID)
	if err != nil {
		return nil, err
	}
	return sheetgrid.ListSections(values), nil
}

func (s *service) readGrid(ctx context.Context, sheetID string) ([][]string, error) {
	values, err := s.sheets.GetValues(ctx, sheetID, gridRange)
	if err != nil {
		return nil, s.wrapSheetError(ctx, sheetID, err)
	}
	return values, nil
}

// resolveSheetID turns a target into a sheet id, consulting the scope's
// default binding and the deny list.
func (s *service) resolveSheetID(ctx context.Context, target Target) (string, error) {
	var sheetID string
	if strings.TrimSpace(target.SheetURL) != "" {
		id, err := sheets.ParseSheetID(target.SheetURL)
		if err != nil {
			return "", err
		}
		sheetID = id
	} else {
		id, err := s.GetDefault(ctx, target.ScopeID)
		if err != nil {
			return "", err
		}
		sheetID = id
	}

	denied, err := s.denylist.Contains(ctx, sheetID)
	if err != nil {
		return "", err
	}
	if denied {
		return "", clerr.InvalidSheetURL("access to this sheet was previously denied")
	}
	return sheetID, nil
}

// wrapSheetError records permission failures in the deny list and converts
// them to invalid_sheet_url.
func (s *service) wrapSheetError(ctx context.Context, sheetID string, err error) error {
	if !sheets.IsPermissionDenied(err) {
		return err
	}

	if denyErr := s.denylist.Add(ctx, sheetID); denyErr != nil {
		log.Printf("failed to deny sheet %s: %v", sheetID, denyErr)
	}
	return clerr.WrapWithCode(err, clerr.CodeInvalidSheetURL, "access to this sheet was denied")
}

func (s *service) lockSheet(sheetID string) func() {
	s.mu.Lock()
	lock, exists := s.locks[sheetID]
	if !exists {
		lock = &sync.Mutex{}
		s.locks[sheetID] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

func headerRange(origin sheetgrid.Cell) string {
	return sheetgrid.Cell{Col: origin.Col, Row: origin.Row + 1}.String() +
		":" + sheetgrid.Cell{Col: origin.Col + 3, Row: origin.Row + 1}.String()
}
