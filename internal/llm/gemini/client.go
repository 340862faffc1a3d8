package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"resume-editor-backend/internal/llm"
)

const defaultModel = "gemini-1.5-flash"

// Client implements llm.Client using the Gemini API.
type Client struct {
	genaiClient *genai.Client
	model       string
}

// NewClient constructs a Gemini client.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}
	genaiClient, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini client init: %w", err)
	}
	return &Client{genaiClient: genaiClient, model: model}, nil
}

// Close releases the underlying API connection.
func (c *Client) Close() error {
	return c.genaiClient.Close()
}

// Annotate asks the model for inline edit markers. When an attachment
// is present it is sent inline alongside the prompt so the model can
// read the original document directly.
func (c *Client) Annotate(ctx context.Context, input llm.AnnotateInput) (string, error) {
	model := c.genaiClient.GenerativeModel(c.model)
	model.SetTemperature(0.1)

	parts := []genai.Part{genai.Text(llm.AnnotatePrompt())}
	if len(input.Attachment) > 0 && input.AttachmentMIME != "" {
		parts = append(parts, genai.Blob{MIMEType: input.AttachmentMIME, Data: input.Attachment})
	} else {
		parts = append(parts, genai.Text(input.ResumeText))
	}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	return extractText(resp)
}

// Structure asks the model for the structured draft JSON.
func (c *Client) Structure(ctx context.Context, resumeText string) (string, error) {
	return c.completeJSON(ctx, llm.StructurePrompt(resumeText))
}

// Score asks the model for the quality score JSON.
func (c *Client) Score(ctx context.Context, resumeText string) (string, error) {
	return c.completeJSON(ctx, llm.ScorePrompt(resumeText))
}

func (c *Client) completeJSON(ctx context.Context, prompt string) (string, error) {
	model := c.genaiClient.GenerativeModel(c.model)
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	return extractText(resp)
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini response empty")
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", fmt.Errorf("gemini response empty content")
	}
	return out, nil
}

var _ llm.Client = (*Client)(nil)
