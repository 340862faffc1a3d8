package drafts

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"

	"resume-editor-backend/internal/llm"
)

var errUnusableOutput = errors.New("unusable structuring output")

type draftPayload struct {
	Contact  *Contact         `json:"contact"`
	Sections []sectionPayload `json:"sections"`
}

type sectionPayload struct {
	Type      string `json:"type"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Content   string `json:"content"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Location  string `json:"location"`
}

// AssembleDraft turns raw model output into a Draft. It strips code
// fences, tries a direct parse, then retries on the first balanced
// JSON object found by brace counting. Output without a contact object
// and a sections array is unusable and reported as an error so the
// caller can fall back to heuristic segmentation.
func AssembleDraft(raw string) (Draft, error) {
	cleaned := llm.CleanJSONBlock(raw)

	payload, ok := parsePayload(cleaned)
	if !ok {
		candidate, found := llm.ExtractJSONObject(cleaned)
		if found {
			payload, ok = parsePayload(candidate)
		}
	}
	if !ok {
		return Draft{}, errUnusableOutput
	}

	draft := Draft{
		Contact:  *payload.Contact,
		Sections: make([]Section, 0, len(payload.Sections)),
	}
	for _, s := range payload.Sections {
		draft.Sections = append(draft.Sections, Section{
			ID:        uuid.NewString(),
			Type:      normalizeSectionType(s.Type),
			Title:     s.Title,
			Subtitle:  s.Subtitle,
			Content:   s.Content,
			StartDate: s.StartDate,
			EndDate:   s.EndDate,
			Location:  s.Location,
		})
	}
	return draft, nil
}

func parsePayload(text string) (draftPayload, bool) {
	var payload draftPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return draftPayload{}, false
	}
	if payload.Contact == nil || payload.Sections == nil {
		return draftPayload{}, false
	}
	return payload, true
}

func normalizeSectionType(raw string) SectionType {
	switch SectionType(strings.ToLower(strings.TrimSpace(raw))) {
	case SectionExperience:
		return SectionExperience
	case SectionEducation:
		return SectionEducation
	case SectionSkills:
		return SectionSkills
	case SectionProjects:
		return SectionProjects
	case SectionCertifications:
		return SectionCertifications
	default:
		return SectionExperience
	}
}
