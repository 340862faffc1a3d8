package drafts

import (
	"strings"

	"github.com/google/uuid"
)

type heading struct {
	keyword string
	sType   SectionType
	title   string
}

// headingKeywords are checked in this fixed priority order; the first
// substring found in a fragment wins.
var headingKeywords = []heading{
	{"experience", SectionExperience, "Experience"},
	{"education", SectionEducation, "Education"},
	{"skills", SectionSkills, "Skills"},
}

// FallbackDraft partitions flat text into sections by keyword headings.
// Fragments before the first recognized heading are dropped. This is a
// last-resort segmentation: it only guarantees the builder gets some
// structure, not an accurate one.
func FallbackDraft(text string) Draft {
	draft := Draft{Sections: []Section{}}

	var current *Section
	for _, fragment := range strings.Split(text, "\n") {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}
		if h, ok := matchHeading(fragment); ok {
			draft.Sections = append(draft.Sections, Section{
				ID:      uuid.NewString(),
				Type:    h.sType,
				Title:   h.title,
				Content: fragment,
			})
			current = &draft.Sections[len(draft.Sections)-1]
			continue
		}
		if current == nil {
			continue
		}
		current.Content += "\n" + fragment
	}
	return draft
}

func matchHeading(fragment string) (heading, bool) {
	lower := strings.ToLower(fragment)
	for _, h := range headingKeywords {
		if strings.Contains(lower, h.keyword) {
			return h, true
		}
	}
	return heading{}, false
}
