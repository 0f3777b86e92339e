package clodbot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/clodbot/clodbot-discord/internal/services/set"
)

type ToggleRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	SessionID   string
	GroupIndex  int
	SetName     string
}

type ToggleHandler struct {
	setService set.Service
}

type ToggleHandlerConfig struct {
	SetService set.Service
}

func NewToggleHandler(cfg *ToggleHandlerConfig) *ToggleHandler {
	return &ToggleHandler{
		setService: cfg.SetService,
	}
}

func (h *ToggleHandler) Handle(req *ToggleRequest) error {
	// Acknowledge without touching the grid message yet.
	err := req.Session.InteractionRespond(req.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
	if err != nil {
		return fmt.Errorf("failed to acknowledge interaction: %w", err)
	}

	result, err := h.setService.Toggle(context.Background(), &set.ToggleInput{
		SessionID:  req.SessionID,
		UserID:     InteractionUserID(req.Interaction),
		GroupIndex: req.GroupIndex,
		SetName:    req.SetName,
	})
	if err != nil {
		_, followErr := req.Session.FollowupMessageCreate(req.Interaction.Interaction, true, &discordgo.WebhookParams{
			Content: userMessage(err),
			Flags:   discordgo.MessageFlagsEphemeral,
		})
		return followErr
	}

	state := result.State
	channelID := state.ChannelID
	if channelID == "" {
		channelID = req.Interaction.ChannelID
	}

	// Restyle the toggled group's buttons.
	group := state.Groups[req.GroupIndex]
	rows := SetButtonRows(state.ID, req.GroupIndex, group, len(state.Groups) > 1)
	if req.GroupIndex == len(state.Groups)-1 {
		rows = append(rows, CloseButtonRow(state.ID))
	}
	_, err = req.Session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		ID:         group.MessageID,
		Channel:    channelID,
		Components: &rows,
	})
	if err != nil {
		return err
	}

	return h.syncAggregate(req, channelID, result)
}

// syncAggregate creates, replaces or deletes the aggregate message so it
// always mirrors the current selection.
func (h *ToggleHandler) syncAggregate(req *ToggleRequest, channelID string, result *set.ToggleResult) error {
	state := result.State

	if result.Aggregate == "" {
		if state.AggregateMessageID == "" {
			return nil
		}
		if err := req.Session.ChannelMessageDelete(channelID, state.AggregateMessageID); err != nil {
			return err
		}
		return h.setService.SetAggregateMessageID(state.ID, "")
	}

	content := "```\n" + result.Aggregate + "\n```"
	if state.AggregateMessageID != "" {
		_, err := req.Session.ChannelMessageEdit(channelID, state.AggregateMessageID, content)
		return err
	}

	msg, err := req.Session.ChannelMessageSend(channelID, content)
	if err != nil {
		return err
	}
	return h.setService.SetAggregateMessageID(state.ID, msg.ID)
}
