package review

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of ReviewsRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Review // reviewId -> review
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Review),
	}
}

// Create stores a new review.
func (r *MemoryRepo) Create(ctx context.Context, rv Review) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[rv.ID] = cloneReview(rv)
	return nil
}

// GetByID returns a review by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userId, reviewId string) (Review, error) {
	if err := ctx.Err(); err != nil {
		return Review{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rv, ok := r.data[reviewId]
	if !ok || rv.UserID != userId {
		return Review{}, ErrNotFound
	}
	return cloneReview(rv), nil
}

// Update overwrites an existing review.
func (r *MemoryRepo) Update(ctx context.Context, rv Review) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.data[rv.ID]
	if !ok || existing.UserID != rv.UserID {
		return ErrNotFound
	}
	r.data[rv.ID] = cloneReview(rv)
	return nil
}

func cloneReview(rv Review) Review {
	out := rv
	out.Segments = append([]Segment(nil), rv.Segments...)
	out.Suggestions = append([]Suggestion(nil), rv.Suggestions...)
	return out
}

var _ ReviewsRepo = (*MemoryRepo)(nil)
