package export

import (
	"context"
	"errors"
	"image/color"
	"strings"
	"testing"

	"resume-editor-backend/internal/drafts"
)

type fakePrinter struct {
	lastHTML string
}

func (p *fakePrinter) PrintPDF(ctx context.Context, html string) ([]byte, error) {
	p.lastHTML = html
	return []byte("%PDF-fake"), nil
}

func TestExportDraftRendersDraft(t *testing.T) {
	repo := drafts.NewMemoryRepo()
	if err := repo.SaveCurrent(context.Background(), drafts.Draft{
		UserID:  "u1",
		Contact: drafts.Contact{Name: "Ada Lovelace", Email: "ada@example.com"},
		Sections: []drafts.Section{
			{ID: "s1", Type: drafts.SectionExperience, Title: "Engineer", Content: "Built the engine"},
		},
	}); err != nil {
		t.Fatalf("seed draft: %v", err)
	}

	printer := &fakePrinter{}
	svc := NewService(repo, printer)

	pdf, err := svc.ExportDraft(context.Background(), "u1")
	if err != nil {
		t.Fatalf("export draft: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("expected pdf bytes")
	}
	if !strings.Contains(printer.lastHTML, "Ada Lovelace") {
		t.Fatalf("rendered html missing contact name")
	}
	if !strings.Contains(printer.lastHTML, "Built the engine") {
		t.Fatalf("rendered html missing section content")
	}
}

func TestExportDraftMissing(t *testing.T) {
	svc := NewService(drafts.NewMemoryRepo(), &fakePrinter{})
	if _, err := svc.ExportDraft(context.Background(), "nobody"); !errors.Is(err, ErrNoDraft) {
		t.Fatalf("expected ErrNoDraft, got %v", err)
	}
}

func TestExportSnapshotRendersPages(t *testing.T) {
	printer := &fakePrinter{}
	svc := NewService(drafts.NewMemoryRepo(), printer)

	src := solidImage(PageWidth, PageHeight+1, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	pdf, err := svc.ExportSnapshot(context.Background(), src)
	if err != nil {
		t.Fatalf("export snapshot: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("expected pdf bytes")
	}
	if got := strings.Count(printer.lastHTML, `<div class="page">`); got != 2 {
		t.Fatalf("expected 2 page divs, got %d", got)
	}
}
