package clodbot

import (
	clerr "github.com/clodbot/clodbot-discord/internal/errors"
)

// userMessage maps every error kind to its single fixed user-facing string.
func userMessage(err error) string {
	switch clerr.GetCode(err) {
	case clerr.CodeMalformedLog:
		return "❌ That replay log could not be parsed."
	case clerr.CodeNotFound:
		return "❌ Nothing found for that request."
	case clerr.CodeUpstream:
		return "❌ The upstream service is unavailable, try again later."
	case clerr.CodeInvalidReplayURL:
		return "❌ That does not look like a Showdown replay URL."
	case clerr.CodeInvalidSheetURL:
		return "❌ That sheet cannot be used. Check the URL and the bot's access."
	case clerr.CodeNoDefault:
		return "❌ No default sheet is set here. Run `/clodbot sheet set` first."
	case clerr.CodeSectionFull:
		return "❌ That player's section has no room left."
	case clerr.CodeNameDoesNotExist:
		return "❌ No player with that name on the sheet."
	case clerr.CodeUnauthorized:
		return "❌ Only the user who started this selection can use its buttons."
	case clerr.CodeBadArguments:
		return "❌ I could not understand those arguments."
	default:
		return "❌ Something went wrong."
	}
}
