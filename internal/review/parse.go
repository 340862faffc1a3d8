package review

import (
	"regexp"
	"strings"
)

// markerPattern matches one non-nested [original]{suggestion} marker.
// Non-greedy captures close each pair at the nearest following ] and },
// so adjacent markers parse independently and unbalanced brackets fail
// to match and stay regular text.
var markerPattern = regexp.MustCompile(`(?s)\[(.*?)\]\{(.*?)\}`)

// ParseResult is the output of one parse pass: an ordered segment
// sequence covering the input and the suggestion table it references.
type ParseResult struct {
	Segments    []Segment
	Suggestions []Suggestion
}

// Parse scans annotated text left to right and splits it into regular
// and highlight segments. A marker whose trimmed original or trimmed
// suggestion is empty contributes no suggestion; its raw matched text
// passes through as a regular segment so concatenating segment text
// always reproduces the input. Empty segments are never emitted.
func Parse(input string) ParseResult {
	res := ParseResult{
		Segments:    []Segment{},
		Suggestions: []Suggestion{},
	}
	matches := markerPattern.FindAllStringSubmatchIndex(input, -1)
	last := 0
	nextID := 0
	for _, m := range matches {
		if m[0] > last {
			res.Segments = append(res.Segments, Segment{
				Kind:         SegmentRegular,
				Text:         input[last:m[0]],
				SuggestionID: NoSuggestion,
			})
		}
		original := strings.TrimSpace(input[m[2]:m[3]])
		replacement := strings.TrimSpace(input[m[4]:m[5]])
		if original == "" || replacement == "" {
			res.Segments = append(res.Segments, Segment{
				Kind:         SegmentRegular,
				Text:         input[m[0]:m[1]],
				SuggestionID: NoSuggestion,
			})
		} else {
			res.Suggestions = append(res.Suggestions, Suggestion{
				ID:         nextID,
				Original:   original,
				Suggestion: replacement,
				Decision:   DecisionUndecided,
			})
			res.Segments = append(res.Segments, Segment{
				Kind:         SegmentHighlight,
				Text:         original,
				SuggestionID: nextID,
			})
			nextID++
		}
		last = m[1]
	}
	if last < len(input) {
		res.Segments = append(res.Segments, Segment{
			Kind:         SegmentRegular,
			Text:         input[last:],
			SuggestionID: NoSuggestion,
		})
	}
	return res
}
