package drafts

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of DraftsRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Draft // userId -> current draft
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Draft),
	}
}

// SaveCurrent stores/overwrites the current draft for a user.
func (r *MemoryRepo) SaveCurrent(ctx context.Context, draft Draft) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[draft.UserID] = cloneDraft(draft)
	return nil
}

// GetCurrentByUser returns the current draft for a user.
func (r *MemoryRepo) GetCurrentByUser(ctx context.Context, userId string) (Draft, error) {
	if err := ctx.Err(); err != nil {
		return Draft{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	draft, ok := r.data[userId]
	if !ok {
		return Draft{}, ErrNotFound
	}
	return cloneDraft(draft), nil
}

func cloneDraft(draft Draft) Draft {
	out := draft
	out.Sections = append([]Section(nil), draft.Sections...)
	return out
}

var _ DraftsRepo = (*MemoryRepo)(nil)
