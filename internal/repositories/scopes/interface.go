// Package scopes stores the default spreadsheet binding of a scope. A scope
// is the Discord server, or the channel for direct messages.
package scopes

//go:generate mockgen -destination=mock/mock_repository.go -package=mockscopes -source=interface.go

import "context"

// Repository defines the interface for default sheet storage
type Repository interface {
	// SetDefault binds a spreadsheet id to a scope, replacing any previous binding
	SetDefault(ctx context.Context, scopeID, sheetID string) error

	// GetDefault returns the spreadsheet id bound to a scope, not_found when unset
	GetDefault(ctx context.Context, scopeID string) (string, error)

	// DeleteDefault removes the binding of a scope if present
	DeleteDefault(ctx context.Context, scopeID string) error
}
