package credentials

import (
	"context"
	"sync"

	clerr "github.com/clodbot/clodbot-discord/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewInMemoryRepository creates a new in-memory credential repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		blobs: make(map[string][]byte),
	}
}

func (r *inMemoryRepository) Set(ctx context.Context, userID string, blob []byte) error {
	if userID == "" {
		return clerr.BadArguments("user ID cannot be empty")
	}
	if len(blob) == 0 {
		return clerr.BadArguments("credential blob cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Copy to avoid external modifications
	r.blobs[userID] = append([]byte(nil), blob...)
	return nil
}

func (r *inMemoryRepository) Get(ctx context.Context, userID string) ([]byte, error) {
	if userID == "" {
		return nil, clerr.BadArguments("user ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	blob, exists := r.blobs[userID]
	if !exists {
		return nil, clerr.NotFoundf("no credentials for user %s", userID)
	}
	return append([]byte(nil), blob...), nil
}

func (r *inMemoryRepository) Delete(ctx context.Context, userID string) error {
	if userID == "" {
		return clerr.BadArguments("user ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.blobs, userID)
	return nil
}
