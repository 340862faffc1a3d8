package llm

import (
	"context"
	"errors"
)

// Client abstracts the hosted model behind the three capabilities the
// editor consumes.
type Client interface {
	// Annotate returns the resume text with inline [original]{suggestion}
	// edit markers embedded by the model.
	Annotate(ctx context.Context, input AnnotateInput) (string, error)
	// Structure returns a JSON object describing the resume as a
	// structured draft (contact + sections).
	Structure(ctx context.Context, resumeText string) (string, error)
	// Score returns a JSON quality score for the resume text.
	Score(ctx context.Context, resumeText string) (string, error)
}

// AnnotateInput carries the resume to critique. Attachment, when set,
// is forwarded to providers that accept inline documents; providers
// without attachment support fall back to ResumeText.
type AnnotateInput struct {
	ResumeText     string
	Attachment     []byte
	AttachmentMIME string
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm provider not configured")

// PlaceholderClient is a stub implementation used when no provider is
// configured.
type PlaceholderClient struct{}

func (PlaceholderClient) Annotate(ctx context.Context, input AnnotateInput) (string, error) {
	_ = ctx
	_ = input
	return "", ErrNotConfigured
}

func (PlaceholderClient) Structure(ctx context.Context, resumeText string) (string, error) {
	_ = ctx
	_ = resumeText
	return "", ErrNotConfigured
}

func (PlaceholderClient) Score(ctx context.Context, resumeText string) (string, error) {
	_ = ctx
	_ = resumeText
	return "", ErrNotConfigured
}

var _ Client = PlaceholderClient{}
