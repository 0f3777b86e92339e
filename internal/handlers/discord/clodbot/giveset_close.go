package clodbot

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/clodbot/clodbot-discord/internal/services/set"
)

type CloseRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	SessionID   string
}

type CloseHandler struct {
	setService set.Service
}

type CloseHandlerConfig struct {
	SetService set.Service
}

func NewCloseHandler(cfg *CloseHandlerConfig) *CloseHandler {
	return &CloseHandler{
		setService: cfg.SetService,
	}
}

// Handle dismisses a selection session and removes its messages.
func (h *CloseHandler) Handle(req *CloseRequest) error {
	err := req.Session.InteractionRespond(req.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
	if err != nil {
		return fmt.Errorf("failed to acknowledge interaction: %w", err)
	}

	state, err := h.setService.Close(req.SessionID, InteractionUserID(req.Interaction))
	if err != nil {
		_, followErr := req.Session.FollowupMessageCreate(req.Interaction.Interaction, true, &discordgo.WebhookParams{
			Content: userMessage(err),
			Flags:   discordgo.MessageFlagsEphemeral,
		})
		return followErr
	}

	channelID := state.ChannelID
	if channelID == "" {
		channelID = req.Interaction.ChannelID
	}

	// Best effort cleanup, a missing message is not worth surfacing.
	for _, group := range state.Groups {
		if group.MessageID == "" {
			continue
		}
		if delErr := req.Session.ChannelMessageDelete(channelID, group.MessageID); delErr != nil {
			log.Printf("failed to delete grid message %s: %v", group.MessageID, delErr)
		}
	}
	if state.AggregateMessageID != "" {
		if delErr := req.Session.ChannelMessageDelete(channelID, state.AggregateMessageID); delErr != nil {
			log.Printf("failed to delete aggregate message %s: %v", state.AggregateMessageID, delErr)
		}
	}

	return nil
}
