package review

import "strings"

// SetDecision records an accept or reject for a suggestion. The id
// must exist in the current table; re-deciding overwrites.
func (rv *Review) SetDecision(id int, accepted bool) error {
	for i := range rv.Suggestions {
		if rv.Suggestions[i].ID == id {
			if accepted {
				rv.Suggestions[i].Decision = DecisionAccepted
			} else {
				rv.Suggestions[i].Decision = DecisionRejected
			}
			return nil
		}
	}
	return ErrUnknownSuggestion
}

// ResetDecisions returns every suggestion to undecided.
func (rv *Review) ResetDecisions() {
	for i := range rv.Suggestions {
		rv.Suggestions[i].Decision = DecisionUndecided
	}
}

// ResolvedText concatenates the segments in order, substituting the
// suggestion text for accepted highlights. Rejected and undecided
// highlights both keep their original text.
func (rv *Review) ResolvedText() string {
	byID := make(map[int]Suggestion, len(rv.Suggestions))
	for _, s := range rv.Suggestions {
		byID[s.ID] = s
	}
	var b strings.Builder
	for _, seg := range rv.Segments {
		if seg.Kind == SegmentHighlight {
			if s, ok := byID[seg.SuggestionID]; ok && s.Decision == DecisionAccepted {
				b.WriteString(s.Suggestion)
				continue
			}
		}
		b.WriteString(seg.Text)
	}
	return b.String()
}
