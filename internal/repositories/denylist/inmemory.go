package denylist

import (
	"context"
	"sync"

	clerr "github.com/clodbot/clodbot-discord/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu     sync.RWMutex
	denied map[string]bool
}

// NewInMemoryRepository creates a new in-memory deny list repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		denied: make(map[string]bool),
	}
}

func (r *inMemoryRepository) Add(ctx context.Context, sheetID string) error {
	if sheetID == "" {
		return clerr.BadArguments("sheet ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.denied[sheetID] = true
	return nil
}

func (r *inMemoryRepository) Contains(ctx context.Context, sheetID string) (bool, error) {
	if sheetID == "" {
		return false, clerr.BadArguments("sheet ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.denied[sheetID], nil
}

func (r *inMemoryRepository) Remove(ctx context.Context, sheetID string) error {
	if sheetID == "" {
		return clerr.BadArguments("sheet ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.denied, sheetID)
	return nil
}
