package review

import "time"

// SegmentKind distinguishes plain text from a highlighted span backed
// by a suggestion.
type SegmentKind string

const (
	SegmentRegular   SegmentKind = "regular"
	SegmentHighlight SegmentKind = "highlight"
)

// NoSuggestion is the SuggestionID of a regular segment.
const NoSuggestion = -1

// Segment is one display unit of the annotated resume text. A
// highlight segment's Text is the original span; its SuggestionID
// points into the review's suggestion table.
type Segment struct {
	Kind         SegmentKind `json:"kind"`
	Text         string      `json:"text"`
	SuggestionID int         `json:"suggestionId"`
}

// Decision is the tri-state status of a suggestion.
type Decision string

const (
	DecisionUndecided Decision = "undecided"
	DecisionAccepted  Decision = "accepted"
	DecisionRejected  Decision = "rejected"
)

// Suggestion is a proposed replacement for one span of original text.
// IDs are sequence numbers assigned left to right within one parse
// pass, starting at zero.
type Suggestion struct {
	ID         int      `json:"id"`
	Original   string   `json:"original"`
	Suggestion string   `json:"suggestion"`
	Decision   Decision `json:"decision"`
}

// Review is one annotation session over a document. Generation orders
// concurrent reviews of the same document so a stale model response
// never overwrites a newer one.
type Review struct {
	ID            string       `json:"reviewId"`
	UserID        string       `json:"-"`
	DocumentID    string       `json:"documentId"`
	Generation    int64        `json:"-"`
	AnnotatedText string       `json:"-"`
	Segments      []Segment    `json:"segments"`
	Suggestions   []Suggestion `json:"suggestions"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}
