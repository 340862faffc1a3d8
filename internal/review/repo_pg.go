package review

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements ReviewsRepo using Postgres. Segments and the
// suggestion table are stored as JSONB columns.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new review.
func (r *PGRepo) Create(ctx context.Context, rv Review) error {
	const query = `
INSERT INTO reviews (
    id,
    user_id,
    document_id,
    generation,
    annotated_text,
    segments,
    suggestions,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	segments, err := json.Marshal(rv.Segments)
	if err != nil {
		return err
	}
	suggestions, err := json.Marshal(rv.Suggestions)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(
		ctx,
		query,
		rv.ID,
		rv.UserID,
		rv.DocumentID,
		rv.Generation,
		rv.AnnotatedText,
		segments,
		suggestions,
		rv.CreatedAt,
		rv.UpdatedAt,
	)
	return err
}

// GetByID fetches a review by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userId, reviewId string) (Review, error) {
	const query = `
SELECT id, user_id, document_id, generation, annotated_text, segments, suggestions, created_at, updated_at
FROM reviews
WHERE user_id = $1 AND id = $2
LIMIT 1`
	var rv Review
	var segments []byte
	var suggestions []byte
	err := r.DB.QueryRowContext(ctx, query, userId, reviewId).Scan(
		&rv.ID,
		&rv.UserID,
		&rv.DocumentID,
		&rv.Generation,
		&rv.AnnotatedText,
		&segments,
		&suggestions,
		&rv.CreatedAt,
		&rv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Review{}, ErrNotFound
		}
		return Review{}, err
	}
	if err := json.Unmarshal(segments, &rv.Segments); err != nil {
		return Review{}, err
	}
	if err := json.Unmarshal(suggestions, &rv.Suggestions); err != nil {
		return Review{}, err
	}
	return rv, nil
}

// Update overwrites the suggestion table and timestamps of a review.
func (r *PGRepo) Update(ctx context.Context, rv Review) error {
	const query = `
UPDATE reviews
SET segments = $1, suggestions = $2, updated_at = $3
WHERE user_id = $4 AND id = $5`

	segments, err := json.Marshal(rv.Segments)
	if err != nil {
		return err
	}
	suggestions, err := json.Marshal(rv.Suggestions)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx, query, segments, suggestions, rv.UpdatedAt, rv.UserID, rv.ID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ ReviewsRepo = (*PGRepo)(nil)
