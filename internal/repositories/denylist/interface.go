// Package denylist tracks spreadsheet ids the bot may no longer touch,
// typically because access was revoked.
package denylist

//go:generate mockgen -destination=mock/mock_repository.go -package=mockdenylist -source=interface.go

import "context"

// Repository defines the interface for the sheet deny list
type Repository interface {
	// Add records a spreadsheet id as denied
	Add(ctx context.Context, sheetID string) error

	// Contains reports whether a spreadsheet id is denied
	Contains(ctx context.Context, sheetID string) (bool, error)

	// Remove clears a spreadsheet id from the deny list
	Remove(ctx context.Context, sheetID string) error
}
