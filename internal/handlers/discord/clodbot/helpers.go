package clodbot

import (
	"github.com/bwmarrin/discordgo"
)

// InteractionUserID returns the acting user's id. Member is nil for DMs.
func InteractionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

// ScopeID identifies where a default sheet binding lives. Guild commands
// share one binding per server, DM commands bind per channel.
func ScopeID(i *discordgo.InteractionCreate) string {
	if i.GuildID != "" {
		return i.GuildID
	}
	return i.ChannelID
}
