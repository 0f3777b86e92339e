package clodbot

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/clodbot/clodbot-discord/internal/entities"
	"github.com/clodbot/clodbot-discord/internal/services/set"
)

type GivesetRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate

	// Pokemon is a comma-separated list, or the keyword "random"
	Pokemon    string
	Generation string
	Format     string

	// Count is the number of random samples, random mode only
	Count int
}

type GivesetHandler struct {
	setService set.Service
}

type GivesetHandlerConfig struct {
	SetService set.Service
}

func NewGivesetHandler(cfg *GivesetHandlerConfig) *GivesetHandler {
	return &GivesetHandler{
		setService: cfg.SetService,
	}
}

func (h *GivesetHandler) Handle(req *GivesetRequest) error {
	err := req.Session.InteractionRespond(req.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		return fmt.Errorf("failed to acknowledge interaction: %w", err)
	}

	if strings.EqualFold(strings.TrimSpace(req.Pokemon), "random") {
		return h.handleRandom(req)
	}
	return h.handleGrid(req)
}

func (h *GivesetHandler) handleRandom(req *GivesetRequest) error {
	blocks, err := h.setService.Random(context.Background(), req.Count)
	if err != nil {
		return h.editError(req, err)
	}

	content := "```\n" + blocks + "\n```"
	_, err = req.Session.InteractionResponseEdit(req.Interaction.Interaction, &discordgo.WebhookEdit{
		Content: &content,
	})
	return err
}

func (h *GivesetHandler) handleGrid(req *GivesetRequest) error {
	var requests []entities.SetRequest
	for _, name := range strings.Split(req.Pokemon, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		requests = append(requests, entities.SetRequest{
			Pokemon:    name,
			Generation: req.Generation,
			Format:     req.Format,
		})
	}

	state, err := h.setService.Open(context.Background(), &set.OpenInput{
		OwnerID:   InteractionUserID(req.Interaction),
		ChannelID: req.Interaction.ChannelID,
		Requests:  requests,
	})
	if err != nil {
		return h.editError(req, err)
	}

	labeled := len(state.Groups) > 1

	// The first grid rides on the interaction response, the rest follow up.
	for i, group := range state.Groups {
		content := fmt.Sprintf("Sets for **%s** (%s %s):", group.Pokemon, group.Generation, group.Format)
		rows := SetButtonRows(state.ID, i, group, labeled)
		if i == len(state.Groups)-1 {
			rows = append(rows, CloseButtonRow(state.ID))
		}

		var msg *discordgo.Message
		if i == 0 {
			msg, err = req.Session.InteractionResponseEdit(req.Interaction.Interaction, &discordgo.WebhookEdit{
				Content:    &content,
				Components: &rows,
			})
		} else {
			msg, err = req.Session.FollowupMessageCreate(req.Interaction.Interaction, true, &discordgo.WebhookParams{
				Content:    content,
				Components: rows,
			})
		}
		if err != nil {
			return err
		}

		if err := h.setService.SetGroupMessageID(state.ID, i, msg.ID); err != nil {
			return err
		}
	}

	return nil
}

func (h *GivesetHandler) editError(req *GivesetRequest, cause error) error {
	content := userMessage(cause)
	_, err := req.Session.InteractionResponseEdit(req.Interaction.Interaction, &discordgo.WebhookEdit{
		Content: &content,
	})
	return err
}
