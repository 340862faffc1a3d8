package drafts

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements DraftsRepo using Postgres. One row per user holds
// the whole draft as JSONB.
type PGRepo struct {
	DB *sql.DB
}

// SaveCurrent upserts the current draft for a user.
func (r *PGRepo) SaveCurrent(ctx context.Context, draft Draft) error {
	const query = `
INSERT INTO drafts (user_id, contact, sections, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id)
DO UPDATE SET contact = $2, sections = $3, updated_at = $4`

	contact, err := json.Marshal(draft.Contact)
	if err != nil {
		return err
	}
	sections, err := json.Marshal(draft.Sections)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query, draft.UserID, contact, sections, draft.UpdatedAt)
	return err
}

// GetCurrentByUser returns the current draft for a user.
func (r *PGRepo) GetCurrentByUser(ctx context.Context, userId string) (Draft, error) {
	const query = `
SELECT user_id, contact, sections, updated_at
FROM drafts
WHERE user_id = $1
LIMIT 1`
	var draft Draft
	var contact []byte
	var sections []byte
	err := r.DB.QueryRowContext(ctx, query, userId).Scan(
		&draft.UserID,
		&contact,
		&sections,
		&draft.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Draft{}, ErrNotFound
		}
		return Draft{}, err
	}
	if err := json.Unmarshal(contact, &draft.Contact); err != nil {
		return Draft{}, err
	}
	if err := json.Unmarshal(sections, &draft.Sections); err != nil {
		return Draft{}, err
	}
	return draft, nil
}

var _ DraftsRepo = (*PGRepo)(nil)
