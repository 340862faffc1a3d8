package drafts

import "context"

// DraftsRepo persists the working draft for each user.
type DraftsRepo interface {
	SaveCurrent(ctx context.Context, draft Draft) error
	GetCurrentByUser(ctx context.Context, userId string) (Draft, error)
}
