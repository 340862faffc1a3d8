package grid

import (
	"context"
	"errors"
	"sync"
)

var ErrInvalidInput = errors.New("invalid input")

// LayoutStore keeps per-user dashboard layouts in memory. Layout is
// deliberately ephemeral: it lives for the process lifetime and is
// never written to the database.
type LayoutStore struct {
	mu   sync.RWMutex
	data map[string][]Panel // userId -> panels
}

// NewLayoutStore constructs a LayoutStore.
func NewLayoutStore() *LayoutStore {
	return &LayoutStore{
		data: make(map[string][]Panel),
	}
}

// Get returns the user's layout, or an empty one.
func (s *LayoutStore) Get(ctx context.Context, userId string) ([]Panel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if userId == "" {
		return nil, ErrInvalidInput
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	panels := s.data[userId]
	out := make([]Panel, len(panels))
	copy(out, panels)
	return out, nil
}

// Put replaces the user's layout.
func (s *LayoutStore) Put(ctx context.Context, userId string, panels []Panel) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if userId == "" {
		return ErrInvalidInput
	}
	stored := make([]Panel, len(panels))
	copy(stored, panels)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[userId] = stored
	return nil
}
