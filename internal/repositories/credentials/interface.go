// Package credentials stores per-user upstream credential blobs. The blob
// is opaque to the repository, callers own its format.
package credentials

//go:generate mockgen -destination=mock/mock_repository.go -package=mockcredentials -source=interface.go

import "context"

// Repository defines the interface for credential storage
type Repository interface {
	// Set stores a user's credential blob, replacing any previous one
	Set(ctx context.Context, userID string, blob []byte) error

	// Get returns a user's credential blob, not_found when absent
	Get(ctx context.Context, userID string) ([]byte, error)

	// Delete removes a user's credential blob if present
	Delete(ctx context.Context, userID string) error
}
