package review

import "context"

// ReviewsRepo persists annotation sessions.
type ReviewsRepo interface {
	Create(ctx context.Context, rv Review) error
	GetByID(ctx context.Context, userId, reviewId string) (Review, error)
	Update(ctx context.Context, rv Review) error
}
