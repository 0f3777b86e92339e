package clodbot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/clodbot/clodbot-discord/internal/replay"
	"github.com/clodbot/clodbot-discord/internal/services/battle"
)

type AnalyzeRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	ReplayURL   string
}

type AnalyzeHandler struct {
	battleService battle.Service
}

type AnalyzeHandlerConfig struct {
	BattleService battle.Service
}

func NewAnalyzeHandler(cfg *AnalyzeHandlerConfig) *AnalyzeHandler {
	return &AnalyzeHandler{
		battleService: cfg.BattleService,
	}
}

func (h *AnalyzeHandler) Handle(req *AnalyzeRequest) error {
	err := req.Session.InteractionRespond(req.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		return fmt.Errorf("failed to acknowledge interaction: %w", err)
	}

	report, err := h.battleService.Analyze(context.Background(), req.ReplayURL)
	if err != nil {
		content := userMessage(err)
		_, editErr := req.Session.InteractionResponseEdit(req.Interaction.Interaction, &discordgo.WebhookEdit{
			Content: &content,
		})
		return editErr
	}

	content := "```\n" + replay.Render(report) + "\n```"
	_, err = req.Session.InteractionResponseEdit(req.Interaction.Interaction, &discordgo.WebhookEdit{
		Content: &content,
	})
	return err
}
