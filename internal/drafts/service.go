package drafts

import (
	"context"
	"strings"
	"time"

	"resume-editor-backend/internal/llm"
)

// Service contains business logic for structuring, scoring and
// persisting drafts.
type Service struct {
	Repo DraftsRepo
	LLM  llm.Client
}

// NewService constructs a Service.
func NewService(repo DraftsRepo, client llm.Client) *Service {
	return &Service{Repo: repo, LLM: client}
}

// Structure asks the model to convert flat text into a draft. Any
// model failure or unusable output degrades to heuristic segmentation,
// so the caller always receives a draft.
func (s *Service) Structure(ctx context.Context, userId, text string) (Draft, error) {
	if strings.TrimSpace(text) == "" {
		return Draft{}, ErrInvalidInput
	}

	raw, err := s.LLM.Structure(ctx, text)
	if err != nil {
		draft := FallbackDraft(text)
		draft.UserID = userId
		return draft, nil
	}

	draft, err := AssembleDraft(raw)
	if err != nil {
		draft = FallbackDraft(text)
	}
	draft.UserID = userId
	return draft, nil
}

// Score asks the model to rate flat text. Model failures and
// malformed output degrade to an explicit all-zero score.
func (s *Service) Score(ctx context.Context, text string) (Score, error) {
	if strings.TrimSpace(text) == "" {
		return Score{}, ErrInvalidInput
	}

	raw, err := s.LLM.Score(ctx, text)
	if err != nil {
		return zeroScore(), nil
	}
	return ParseScore(raw), nil
}

// SaveCurrent stores the user's working draft.
func (s *Service) SaveCurrent(ctx context.Context, userId string, draft Draft) (Draft, error) {
	if userId == "" {
		return Draft{}, ErrInvalidInput
	}
	draft.UserID = userId
	draft.UpdatedAt = time.Now().UTC()
	for i := range draft.Sections {
		draft.Sections[i].Type = normalizeSectionType(string(draft.Sections[i].Type))
	}
	if err := s.Repo.SaveCurrent(ctx, draft); err != nil {
		return Draft{}, err
	}
	return draft, nil
}

// Current returns the user's working draft.
func (s *Service) Current(ctx context.Context, userId string) (Draft, error) {
	if userId == "" {
		return Draft{}, ErrInvalidInput
	}
	return s.Repo.GetCurrentByUser(ctx, userId)
}
