package clodbot

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/clodbot/clodbot-discord/internal/replay"
	"github.com/clodbot/clodbot-discord/internal/services/battle"
	"github.com/clodbot/clodbot-discord/internal/services/sheet"
)

type SheetSetRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	SheetURL    string
}

type SheetDefaultRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
}

type SheetUpdateRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	SheetURL    string
	ReplayURL   string
}

type SheetDeleteRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	SheetURL    string
	PlayerName  string
}

type SheetListRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	SheetURL    string

	// What selects the listing, "players" or "pokemon"
	What string
}

type SheetHandler struct {
	sheetService  sheet.Service
	battleService battle.Service
}

type SheetHandlerConfig struct {
	SheetService  sheet.Service
	BattleService battle.Service
}

func NewSheetHandler(cfg *SheetHandlerConfig) *SheetHandler {
	return &SheetHandler{
		sheetService:  cfg.SheetService,
		battleService: cfg.BattleService,
	}
}

func (h *SheetHandler) HandleSet(req *SheetSetRequest) error {
	if err := acknowledge(req.Session, req.Interaction); err != nil {
		return err
	}

	sheetID, err := h.sheetService.SetDefault(context.Background(), ScopeID(req.Interaction), req.SheetURL)
	if err != nil {
		return editContent(req.Session, req.Interaction, userMessage(err))
	}

	return editContent(req.Session, req.Interaction,
		fmt.Sprintf("✅ Default sheet for this %s is now `%s`.", scopeNoun(req.Interaction), sheetID))
}

func (h *SheetHandler) HandleDefault(req *SheetDefaultRequest) error {
	if err := acknowledge(req.Session, req.Interaction); err != nil {
		return err
	}

	sheetID, err := h.sheetService.GetDefault(context.Background(), ScopeID(req.Interaction))
	if err != nil {
		return editContent(req.Session, req.Interaction, userMessage(err))
	}

	return editContent(req.Session, req.Interaction,
		fmt.Sprintf("The default sheet for this %s is https://docs.google.com/spreadsheets/d/%s", scopeNoun(req.Interaction), sheetID))
}

func (h *SheetHandler) HandleUpdate(req *SheetUpdateRequest) error {
	if err := acknowledge(req.Session, req.Interaction); err != nil {
		return err
	}

	report, err := h.battleService.Analyze(context.Background(), req.ReplayURL)
	if err != nil {
		return editContent(req.Session, req.Interaction, userMessage(err))
	}

	target := sheet.Target{ScopeID: ScopeID(req.Interaction), SheetURL: req.SheetURL}
	if err := h.sheetService.UpdateReport(context.Background(), target, report); err != nil {
		return editContent(req.Session, req.Interaction, userMessage(err))
	}

	return editContent(req.Session, req.Interaction,
		"✅ Sheet updated.\n```\n"+replay.Render(report)+"\n```")
}

func (h *SheetHandler) HandleDelete(req *SheetDeleteRequest) error {
	if err := acknowledge(req.Session, req.Interaction); err != nil {
		return err
	}

	target := sheet.Target{ScopeID: ScopeID(req.Interaction), SheetURL: req.SheetURL}
	err := h.sheetService.DeletePlayer(context.Background(), target, req.PlayerName)
	if err != nil {
		return editContent(req.Session, req.Interaction, userMessage(err))
	}

	return editContent(req.Session, req.Interaction,
		fmt.Sprintf("✅ Removed **%s** from the sheet.", req.PlayerName))
}

func (h *SheetHandler) HandleList(req *SheetListRequest) error {
	if err := acknowledge(req.Session, req.Interaction); err != nil {
		return err
	}

	target := sheet.Target{ScopeID: ScopeID(req.Interaction), SheetURL: req.SheetURL}

	var names []string
	var err error
	var noun string
	switch req.What {
	case "pokemon":
		names, err = h.sheetService.ListPokemon(context.Background(), target)
		noun = "Pokemon"
	default:
		names, err = h.sheetService.ListPlayers(context.Background(), target)
		noun = "Players"
	}
	if err != nil {
		return editContent(req.Session, req.Interaction, userMessage(err))
	}

	if len(names) == 0 {
		return editContent(req.Session, req.Interaction, fmt.Sprintf("%s: none yet.", noun))
	}
	return editContent(req.Session, req.Interaction,
		fmt.Sprintf("%s: %s", noun, strings.Join(names, ", ")))
}

func scopeNoun(i *discordgo.InteractionCreate) string {
	if i.GuildID != "" {
		return "server"
	}
	return "channel"
}

func acknowledge(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		return fmt.Errorf("failed to acknowledge interaction: %w", err)
	}
	return nil
}

func editContent(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &content,
	})
	return err
}
