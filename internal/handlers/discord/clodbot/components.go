package clodbot

import (
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"

	"github.com/clodbot/clodbot-discord/internal/entities"
)

const buttonsPerRow = 5

// ToggleCustomID builds the component id of one set button, in the
// context:action:args convention the component dispatcher splits on.
func ToggleCustomID(sessionID string, groupIndex int, setName string) string {
	return fmt.Sprintf("giveset:toggle:%s:%d:%s", sessionID, groupIndex, setName)
}

// CloseCustomID builds the component id of a session's dismiss button.
func CloseCustomID(sessionID string) string {
	return "giveset:close:" + sessionID
}

// CloseButtonRow is the dismiss control, attached to the first grid message.
func CloseButtonRow(sessionID string) discordgo.MessageComponent {
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Done",
				Style:    discordgo.DangerButton,
				CustomID: CloseCustomID(sessionID),
			},
		},
	}
}

// SetButtonRows renders one group's toggle grid. When labeled, a disabled
// button naming the Pokemon leads the grid so multi-Pokemon commands stay
// readable.
func SetButtonRows(sessionID string, groupIndex int, group *entities.SetGroup, labeled bool) []discordgo.MessageComponent {
	var rows []discordgo.MessageComponent

	if labeled {
		rows = append(rows, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    group.Pokemon,
					Style:    discordgo.SecondaryButton,
					CustomID: "giveset:label:" + sessionID + ":" + strconv.Itoa(groupIndex),
					Disabled: true,
				},
			},
		})
	}

	current := make([]discordgo.MessageComponent, 0, buttonsPerRow)
	for _, setName := range group.SetNames {
		style := discordgo.SecondaryButton
		if group.IsSelected(setName) {
			style = discordgo.SuccessButton
		}

		current = append(current, discordgo.Button{
			Label:    setName,
			Style:    style,
			CustomID: ToggleCustomID(sessionID, groupIndex, setName),
		})

		if len(current) == buttonsPerRow {
			rows = append(rows, discordgo.ActionsRow{Components: current})
			current = make([]discordgo.MessageComponent, 0, buttonsPerRow)
		}
	}
	if len(current) > 0 {
		rows = append(rows, discordgo.ActionsRow{Components: current})
	}

	return rows
}
