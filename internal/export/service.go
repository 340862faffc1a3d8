package export

import (
	"context"
	"errors"
	"fmt"
	"image"

	"resume-editor-backend/internal/drafts"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNoDraft      = errors.New("no draft to export")
)

// Service turns snapshots and drafts into PDF documents.
type Service struct {
	Drafts  drafts.DraftsRepo
	Printer Printer
}

// NewService constructs a Service.
func NewService(draftsRepo drafts.DraftsRepo, printer Printer) *Service {
	return &Service{Drafts: draftsRepo, Printer: printer}
}

// ExportSnapshot paginates a rasterized snapshot across A4 pages and
// prints the result.
func (s *Service) ExportSnapshot(ctx context.Context, snapshot image.Image) ([]byte, error) {
	if snapshot == nil || snapshot.Bounds().Dx() == 0 || snapshot.Bounds().Dy() == 0 {
		return nil, ErrInvalidInput
	}

	pages := Paginate(snapshot)
	html, err := RenderSnapshotHTML(pages)
	if err != nil {
		return nil, fmt.Errorf("render snapshot: %w", err)
	}
	return s.Printer.PrintPDF(ctx, html)
}

// ExportDraft renders the user's current draft and prints it.
func (s *Service) ExportDraft(ctx context.Context, userId string) ([]byte, error) {
	if userId == "" {
		return nil, ErrInvalidInput
	}

	draft, err := s.Drafts.GetCurrentByUser(ctx, userId)
	if err != nil {
		if errors.Is(err, drafts.ErrNotFound) {
			return nil, ErrNoDraft
		}
		return nil, err
	}

	html, err := RenderDraftHTML(draft)
	if err != nil {
		return nil, fmt.Errorf("render draft: %w", err)
	}
	return s.Printer.PrintPDF(ctx, html)
}
