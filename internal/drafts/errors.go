package drafts

import "errors"

var (
	ErrNotFound     = errors.New("draft not found")
	ErrInvalidInput = errors.New("invalid input")
)
