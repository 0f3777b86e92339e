package replay

import (
	"fmt"
	"strings"

	"github.com/clodbot/clodbot-discord/internal/entities"
)

// Render formats a battle report as the chat-facing kill/death summary.
func Render(report *entities.BattleReport) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Winner: %s (%d-%d)\n", report.Winner(),
		report.Score.LoserFaints, report.Score.WinnerFaints)

	for _, slot := range []entities.Slot{report.WinnerSlot, report.LoserSlot} {
		fmt.Fprintf(&sb, "\n%s's team:\n", report.Players[slot])
		for _, row := range report.Teams[slot] {
			fmt.Fprintf(&sb, "  %s: %d kills, %d deaths\n",
				row.Species, row.Kills, row.Deaths)
		}
	}

	return sb.String()
}
