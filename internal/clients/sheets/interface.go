package sheets

//go:generate mockgen -destination=mock/mock_service.go -package=mocksheets -source=interface.go

import (
	"context"

	clerr "github.com/clodbot/clodbot-discord/internal/errors"
	"github.com/clodbot/clodbot-discord/internal/sheetgrid"
)

// Service is the spreadsheet collaborator: read a rectangular range, write
// with user-entered parsing, batch disjoint writes atomically, merge a
// horizontal range, clear ranges. Implementations map permission failures
// to Upstream errors flagged with the permission_denied meta key.
type Service interface {
	// GetValues reads the populated cells of a range as strings
	GetValues(ctx context.Context, spreadsheetID, readRange string) ([][]string, error)

	// UpdateValues writes one range with user-entered parsing
	UpdateValues(ctx context.Context, spreadsheetID, writeRange string, values [][]any) error

	// BatchUpdateValues writes multiple disjoint ranges in one atomic request
	BatchUpdateValues(ctx context.Context, spreadsheetID string, data map[string][][]any) error

	// MergeAndCenter merges the plan's cells horizontally and centers them
	MergeAndCenter(ctx context.Context, spreadsheetID string, merge sheetgrid.MergePlan) error

	// ClearValues blanks every cell of the given ranges
	ClearValues(ctx context.Context, spreadsheetID string, ranges []string) error
}

// permissionDeniedMeta flags an Upstream error caused by missing access.
const permissionDeniedMeta = "permission_denied"

// PermissionDenied wraps an upstream error as an access failure.
func PermissionDenied(err error, message string) *clerr.Error {
	return clerr.WrapWithCode(err, clerr.CodeUpstream, message).
		WithMeta(permissionDeniedMeta, true)
}

// IsPermissionDenied reports whether the error is an access failure.
func IsPermissionDenied(err error) bool {
	if !clerr.IsUpstream(err) {
		return false
	}
	denied, _ := clerr.GetMeta(err)[permissionDeniedMeta].(bool)
	return denied
}
