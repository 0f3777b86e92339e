package sheets

import (
	"net/url"
	"strings"

	clerr "github.com/clodbot/clodbot-discord/internal/errors"
)

// ParseSheetID extracts the spreadsheet id from a Google Sheets URL of the
// docs.google.com/spreadsheets/d/<id>/... shape. A bare id passes through.
func ParseSheetID(sheetURL string) (string, error) {
	sheetURL = strings.TrimSpace(sheetURL)
	if sheetURL == "" {
		return "", clerr.InvalidSheetURL("sheet URL is empty")
	}

	// Bare spreadsheet ids carry no scheme or slashes.
	if !strings.Contains(sheetURL, "/") {
		return sheetURL, nil
	}

	parsed, err := url.Parse(sheetURL)
	if err != nil {
		return "", clerr.InvalidSheetURL("sheet URL is not a URL")
	}
	if parsed.Host != "docs.google.com" {
		return "", clerr.InvalidSheetURL("sheet URL is not a Google Sheets URL")
	}

	parts := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	// Expected path: spreadsheets/d/<id>[/...]
	if len(parts) < 3 || parts[0] != "spreadsheets" || parts[1] != "d" || parts[2] == "" {
		return "", clerr.InvalidSheetURL("sheet URL does not name a spreadsheet")
	}

	return parts[2], nil
}
