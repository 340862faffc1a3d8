package export

import (
	"bytes"
	"embed"
	"encoding/base64"
	"html/template"
	"image"
	"image/png"

	"resume-editor-backend/internal/drafts"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type snapshotPage struct {
	DataURI template.URL
}

// RenderSnapshotHTML composes paginated images into a print document,
// one full-bleed A4 page per image.
func RenderSnapshotHTML(pages []*image.RGBA) (string, error) {
	model := make([]snapshotPage, 0, len(pages))
	for _, page := range pages {
		var buf bytes.Buffer
		if err := png.Encode(&buf, page); err != nil {
			return "", err
		}
		model = append(model, snapshotPage{
			DataURI: template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())),
		})
	}

	var out bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&out, "snapshot.html", model); err != nil {
		return "", err
	}
	return out.String(), nil
}

// RenderDraftHTML lays out a structured draft as a print document.
func RenderDraftHTML(draft drafts.Draft) (string, error) {
	var out bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&out, "draft.html", draft); err != nil {
		return "", err
	}
	return out.String(), nil
}
