package review

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"resume-editor-backend/internal/documents"
	"resume-editor-backend/internal/extract"
	"resume-editor-backend/internal/llm"
	"resume-editor-backend/internal/shared/metrics"
	"resume-editor-backend/internal/shared/storage/object"
)

// Service contains business logic for annotation sessions.
type Service struct {
	Repo  ReviewsRepo
	Docs  documents.DocumentsRepo
	Store object.ObjectStore
	LLM   llm.Client

	mu   sync.Mutex
	gens map[string]int64 // userId|documentId -> latest generation
}

// NewService constructs a Service.
func NewService(repo ReviewsRepo, docs documents.DocumentsRepo, store object.ObjectStore, client llm.Client) *Service {
	return &Service{
		Repo:  repo,
		Docs:  docs,
		Store: store,
		LLM:   client,
		gens:  make(map[string]int64),
	}
}

// Create extracts the document text, asks the model for inline edit
// markers, parses them and stores the resulting review. Each call
// bumps a per-document generation; if a newer call starts while the
// model is still responding, the older result is discarded.
func (s *Service) Create(ctx context.Context, userId, documentId string) (Review, error) {
	if userId == "" || documentId == "" {
		return Review{}, ErrInvalidInput
	}

	doc, err := s.Docs.GetByID(ctx, userId, documentId)
	if err != nil {
		if errors.Is(err, documents.ErrNotFound) {
			return Review{}, ErrNotFound
		}
		return Review{}, err
	}

	// Attachment is optional; providers without inline-document support
	// ignore it, so a missing original is not fatal.
	raw, rawErr := s.readObject(ctx, doc.StorageKey)
	if rawErr != nil {
		raw = nil
	}

	text, err := s.documentText(ctx, doc)
	if err != nil {
		return Review{}, err
	}
	if strings.TrimSpace(text) == "" {
		return Review{}, ErrNoText
	}

	gen := s.nextGeneration(userId, documentId)
	metrics.IncReviewStarted()
	started := time.Now()

	annotated, err := s.LLM.Annotate(ctx, llm.AnnotateInput{
		ResumeText:     text,
		Attachment:     raw,
		AttachmentMIME: doc.MimeType,
	})
	if err != nil {
		metrics.IncReviewFailed()
		return Review{}, fmt.Errorf("annotate: %w", err)
	}

	if s.currentGeneration(userId, documentId) != gen {
		metrics.IncReviewSuperseded()
		return Review{}, ErrSuperseded
	}

	parsed := Parse(annotated)
	now := time.Now().UTC()
	rv := Review{
		ID:            uuid.NewString(),
		UserID:        userId,
		DocumentID:    documentId,
		Generation:    gen,
		AnnotatedText: annotated,
		Segments:      parsed.Segments,
		Suggestions:   parsed.Suggestions,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Repo.Create(ctx, rv); err != nil {
		return Review{}, err
	}
	metrics.IncReviewCompleted()
	metrics.ObserveReviewDurationMs(float64(time.Since(started).Milliseconds()))
	return rv, nil
}

// Get returns a stored review.
func (s *Service) Get(ctx context.Context, userId, reviewId string) (Review, error) {
	if userId == "" || reviewId == "" {
		return Review{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userId, reviewId)
}

// Decide records an accept or reject for one suggestion and returns
// the updated review.
func (s *Service) Decide(ctx context.Context, userId, reviewId string, suggestionId int, accepted bool) (Review, error) {
	rv, err := s.Get(ctx, userId, reviewId)
	if err != nil {
		return Review{}, err
	}
	if err := rv.SetDecision(suggestionId, accepted); err != nil {
		return Review{}, err
	}
	rv.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, rv); err != nil {
		return Review{}, err
	}
	return rv, nil
}

// Reset returns every suggestion of a review to undecided.
func (s *Service) Reset(ctx context.Context, userId, reviewId string) (Review, error) {
	rv, err := s.Get(ctx, userId, reviewId)
	if err != nil {
		return Review{}, err
	}
	rv.ResetDecisions()
	rv.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, rv); err != nil {
		return Review{}, err
	}
	return rv, nil
}

// Resolved returns the review's flattened text with accepted
// suggestions applied.
func (s *Service) Resolved(ctx context.Context, userId, reviewId string) (string, error) {
	rv, err := s.Get(ctx, userId, reviewId)
	if err != nil {
		return "", err
	}
	return rv.ResolvedText(), nil
}

func (s *Service) readObject(ctx context.Context, key string) ([]byte, error) {
	body, err := s.Store.Open(ctx, key)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return io.ReadAll(body)
}

// documentText prefers the previously extracted copy; otherwise it
// extracts now and records the derived key on the document.
func (s *Service) documentText(ctx context.Context, doc documents.Document) (string, error) {
	if doc.ExtractedTextKey != "" {
		cached, err := s.readObject(ctx, doc.ExtractedTextKey)
		if err == nil {
			return string(cached), nil
		}
	}

	text, err := extract.ExtractText(ctx, s.Store, doc.StorageKey, doc.MimeType, doc.FileName)
	if err != nil {
		return "", fmt.Errorf("extract: %w", err)
	}
	if err := s.Docs.UpdateExtraction(ctx, doc.UserID, doc.ID, doc.StorageKey+".extracted.txt", time.Now().UTC()); err != nil {
		return "", err
	}
	return text, nil
}

func (s *Service) nextGeneration(userId, documentId string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := userId + "|" + documentId
	s.gens[key]++
	return s.gens[key]
}

func (s *Service) currentGeneration(userId, documentId string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gens[userId+"|"+documentId]
}
