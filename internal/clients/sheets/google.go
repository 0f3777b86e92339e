// Package sheets adapts the Google Sheets API to the narrow capability set
// the sync orchestrator needs.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	clerr "github.com/clodbot/clodbot-discord/internal/errors"
	"github.com/clodbot/clodbot-discord/internal/sheetgrid"
)

const userEntered = "USER_ENTERED"

type googleService struct {
	svc *sheets.Service
}

// Config holds configuration for the Google Sheets service
type Config struct {
	// CredentialsFile is the path to a service account JSON key
	CredentialsFile string
}

// New creates a Sheets service backed by the Google API
func New(ctx context.Context, cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, clerr.Internal("cfg is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, clerr.WrapWithCode(err, clerr.CodeUpstream, "failed to create sheets service")
	}

	return &googleService{svc: svc}, nil
}

func (g *googleService) GetValues(ctx context.Context, spreadsheetID, readRange string) ([][]string, error) {
	resp, err := g.svc.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, wrapGoogleError(err, "failed to read range")
	}

	values := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		values[i] = make([]string, len(row))
		for j, cell := range row {
			values[i][j] = fmt.Sprint(cell)
		}
	}
	return values, nil
}

func (g *googleService) UpdateValues(ctx context.Context, spreadsheetID, writeRange string, values [][]any) error {
	_, err := g.svc.Spreadsheets.Values.
		Update(spreadsheetID, writeRange, &sheets.ValueRange{Values: toInterfaceRows(values)}).
		ValueInputOption(userEntered).
		Context(ctx).
		Do()
	if err != nil {
		return wrapGoogleError(err, "failed to write range")
	}
	return nil
}

func (g *googleService) BatchUpdateValues(ctx context.Context, spreadsheetID string, data map[string][][]any) error {
	if len(data) == 0 {
		return nil
	}

	batch := &sheets.BatchUpdateValuesRequest{
		ValueInputOption: userEntered,
	}
	for writeRange, values := range data {
		batch.Data = append(batch.Data, &sheets.ValueRange{
			Range:  writeRange,
			Values: toInterfaceRows(values),
		})
	}

	_, err := g.svc.Spreadsheets.Values.
		BatchUpdate(spreadsheetID, batch).
		Context(ctx).
		Do()
	if err != nil {
		return wrapGoogleError(err, "failed to batch write ranges")
	}
	return nil
}

func (g *googleService) MergeAndCenter(ctx context.Context, spreadsheetID string, merge sheetgrid.MergePlan) error {
	gridRange := &sheets.GridRange{
		SheetId:          0,
		StartRowIndex:    int64(merge.Row - 1),
		EndRowIndex:      int64(merge.Row),
		StartColumnIndex: int64(merge.StartCol),
		EndColumnIndex:   int64(merge.EndCol + 1),
	}

	_, err := g.svc.Spreadsheets.BatchUpdate(spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				MergeCells: &sheets.MergeCellsRequest{
					Range:     gridRange,
					MergeType: "MERGE_ALL",
				},
			},
			{
				RepeatCell: &sheets.RepeatCellRequest{
					Range: gridRange,
					Cell: &sheets.CellData{
						UserEnteredFormat: &sheets.CellFormat{
							HorizontalAlignment: "CENTER",
						},
					},
					Fields: "userEnteredFormat.horizontalAlignment",
				},
			},
		},
	}).Context(ctx).Do()
	if err != nil {
		return wrapGoogleError(err, "failed to merge name row")
	}
	return nil
}

func (g *googleService) ClearValues(ctx context.Context, spreadsheetID string, ranges []string) error {
	_, err := g.svc.Spreadsheets.Values.
		BatchClear(spreadsheetID, &sheets.BatchClearValuesRequest{Ranges: ranges}).
		Context(ctx).
		Do()
	if err != nil {
		return wrapGoogleError(err, "failed to clear ranges")
	}
	return nil
}

func toInterfaceRows(values [][]any) [][]interface{} {
	rows := make([][]interface{}, len(values))
	for i, row := range values {
		rows[i] = append([]interface{}{}, row...)
	}
	return rows
}

// wrapGoogleError maps API failures onto our error kinds: missing sheets
// are invalid sheet URLs, access failures are flagged Upstream errors.
func wrapGoogleError(err error, message string) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusNotFound:
			return clerr.WrapWithCode(err, clerr.CodeInvalidSheetURL, "sheet does not exist")
		case http.StatusForbidden, http.StatusUnauthorized:
			return PermissionDenied(err, message)
		}
	}
	return clerr.WrapWithCode(err, clerr.CodeUpstream, message)
}
