package drafts

import "time"

// Contact is the header block of a draft.
type Contact struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// SectionType is the fixed tag set for draft sections.
type SectionType string

const (
	SectionExperience     SectionType = "experience"
	SectionEducation      SectionType = "education"
	SectionSkills         SectionType = "skills"
	SectionProjects       SectionType = "projects"
	SectionCertifications SectionType = "certifications"
)

// Section is one ordered block of the draft. IDs are generated locally
// when the draft is assembled; identifiers suggested by the model are
// discarded.
type Section struct {
	ID        string      `json:"id"`
	Type      SectionType `json:"type"`
	Title     string      `json:"title"`
	Subtitle  string      `json:"subtitle,omitempty"`
	Content   string      `json:"content"`
	StartDate string      `json:"startDate,omitempty"`
	EndDate   string      `json:"endDate,omitempty"`
	Location  string      `json:"location,omitempty"`
}

// Draft is the structured resume used by the builder and exporter.
type Draft struct {
	UserID    string    `json:"-"`
	Contact   Contact   `json:"contact"`
	Sections  []Section `json:"sections"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Criterion is one scored dimension of a resume.
type Criterion struct {
	Score   float64 `json:"score"`
	Comment string  `json:"comment"`
}

// ScoreCriteria are the fixed dimensions the scoring prompt asks for.
type ScoreCriteria struct {
	Content    Criterion `json:"content"`
	Formatting Criterion `json:"formatting"`
	Impact     Criterion `json:"impact"`
	Relevance  Criterion `json:"relevance"`
}

// Score is the quality assessment of a resume.
type Score struct {
	Overall  float64       `json:"overall"`
	Criteria ScoreCriteria `json:"criteria"`
}
