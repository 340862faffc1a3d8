package review

import "errors"

var (
	ErrNotFound          = errors.New("review not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnknownSuggestion = errors.New("unknown suggestion id")
	ErrSuperseded        = errors.New("review superseded by a newer request")
	ErrNoText            = errors.New("document has no extractable text")
)
