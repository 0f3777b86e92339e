package scopes

import (
	"context"
	"sync"

	clerr "github.com/clodbot/clodbot-discord/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu       sync.RWMutex
	defaults map[string]string
}

// NewInMemoryRepository creates a new in-memory scope repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		defaults: make(map[string]string),
	}
}

func (r *inMemoryRepository) SetDefault(ctx context.Context, scopeID, sheetID string) error {
	if scopeID == "" {
		return clerr.BadArguments("scope ID cannot be empty")
	}
	if sheetID == "" {
		return clerr.BadArguments("sheet ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.defaults[scopeID] = sheetID
	return nil
}

func (r *inMemoryRepository) GetDefault(ctx context.Context, scopeID string) (string, error) {
	if scopeID == "" {
		return "", clerr.BadArguments("scope ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	sheetID, exists := r.defaults[scopeID]
	if !exists {
		return "", clerr.NotFoundf("no default sheet for scope %s", scopeID)
	}
	return sheetID, nil
}

func (r *inMemoryRepository) DeleteDefault(ctx context.Context, scopeID string) error {
	if scopeID == "" {
		return clerr.BadArguments("scope ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.defaults, scopeID)
	return nil
}
