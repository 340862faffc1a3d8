package review

import (
	"strings"
	"testing"
)

func TestParseNoMarkers(t *testing.T) {
	res := Parse("just plain resume text")
	if len(res.Segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(res.Segments))
	}
	if res.Segments[0].Kind != SegmentRegular || res.Segments[0].Text != "just plain resume text" {
		t.Fatalf("unexpected segment: %+v", res.Segments[0])
	}
	if len(res.Suggestions) != 0 {
		t.Fatalf("expected empty suggestion table, got %d entries", len(res.Suggestions))
	}
}

func TestParseEmptyInput(t *testing.T) {
	res := Parse("")
	if len(res.Segments) != 0 {
		t.Fatalf("expected 0 segments, got %d", len(res.Segments))
	}
	if len(res.Suggestions) != 0 {
		t.Fatalf("expected 0 suggestions, got %d", len(res.Suggestions))
	}
}

func TestParseSingleMarker(t *testing.T) {
	res := Parse("A [x]{y} B")

	want := []Segment{
		{Kind: SegmentRegular, Text: "A ", SuggestionID: NoSuggestion},
		{Kind: SegmentHighlight, Text: "x", SuggestionID: 0},
		{Kind: SegmentRegular, Text: " B", SuggestionID: NoSuggestion},
	}
	if len(res.Segments) != len(want) {
		t.Fatalf("expected %d segments, got %d: %+v", len(want), len(res.Segments), res.Segments)
	}
	for i, seg := range res.Segments {
		if seg != want[i] {
			t.Fatalf("segment %d: got %+v want %+v", i, seg, want[i])
		}
	}

	if len(res.Suggestions) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(res.Suggestions))
	}
	s := res.Suggestions[0]
	if s.ID != 0 || s.Original != "x" || s.Suggestion != "y" || s.Decision != DecisionUndecided {
		t.Fatalf("unexpected suggestion: %+v", s)
	}
}

func TestParseAdjacentMarkers(t *testing.T) {
	res := Parse("[a]{b}[c]{d}")
	if len(res.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d: %+v", len(res.Segments), res.Segments)
	}
	if len(res.Suggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(res.Suggestions))
	}
	if res.Suggestions[0].ID != 0 || res.Suggestions[1].ID != 1 {
		t.Fatalf("ids not sequential: %+v", res.Suggestions)
	}
	if res.Segments[0].SuggestionID != 0 || res.Segments[1].SuggestionID != 1 {
		t.Fatalf("segments reference wrong ids: %+v", res.Segments)
	}
}

func TestParseMultilineCaptures(t *testing.T) {
	res := Parse("[line one\nline two]{replacement\ntext}")
	if len(res.Suggestions) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(res.Suggestions))
	}
	if res.Suggestions[0].Original != "line one\nline two" {
		t.Fatalf("unexpected original: %q", res.Suggestions[0].Original)
	}
	if res.Suggestions[0].Suggestion != "replacement\ntext" {
		t.Fatalf("unexpected suggestion: %q", res.Suggestions[0].Suggestion)
	}
}

func TestParseEmptyCapturesPassThrough(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"both empty", "before []{} after"},
		{"empty suggestion", "before [x]{} after"},
		{"empty original", "before []{y} after"},
		{"whitespace only", "before [  ]{  } after"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := Parse(tc.input)
			if len(res.Suggestions) != 0 {
				t.Fatalf("expected no suggestions, got %+v", res.Suggestions)
			}
			var b strings.Builder
			for _, seg := range res.Segments {
				if seg.Kind != SegmentRegular {
					t.Fatalf("expected only regular segments, got %+v", seg)
				}
				b.WriteString(seg.Text)
			}
			if b.String() != tc.input {
				t.Fatalf("concatenation mismatch: got %q want %q", b.String(), tc.input)
			}
		})
	}
}

func TestParseUnbalancedBracketsStayRegular(t *testing.T) {
	tests := []string{
		"open [only no close",
		"no braces [a] just brackets",
		"brace without bracket {b}",
		"[a]{unclosed",
	}
	for _, input := range tests {
		res := Parse(input)
		if len(res.Suggestions) != 0 {
			t.Fatalf("input %q: expected no suggestions, got %+v", input, res.Suggestions)
		}
		if len(res.Segments) != 1 || res.Segments[0].Text != input {
			t.Fatalf("input %q: expected single regular segment, got %+v", input, res.Segments)
		}
	}
}

func TestParseTrimsCaptures(t *testing.T) {
	res := Parse("[ spaced original ]{ spaced suggestion }")
	if len(res.Suggestions) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(res.Suggestions))
	}
	if res.Suggestions[0].Original != "spaced original" {
		t.Fatalf("original not trimmed: %q", res.Suggestions[0].Original)
	}
	if res.Suggestions[0].Suggestion != "spaced suggestion" {
		t.Fatalf("suggestion not trimmed: %q", res.Suggestions[0].Suggestion)
	}
	if res.Segments[0].Text != "spaced original" {
		t.Fatalf("highlight text not trimmed: %q", res.Segments[0].Text)
	}
}

func TestParseNoEmptySegments(t *testing.T) {
	res := Parse("[a]{b} middle [c]{d}")
	for i, seg := range res.Segments {
		if seg.Text == "" {
			t.Fatalf("segment %d is empty: %+v", i, res.Segments)
		}
	}
}

func TestParseEveryHighlightReferencesTable(t *testing.T) {
	res := Parse("x [a]{b} y [c]{d} z [e]{f}")
	refs := make(map[int]int)
	for _, seg := range res.Segments {
		if seg.Kind == SegmentHighlight {
			refs[seg.SuggestionID]++
		}
	}
	if len(refs) != len(res.Suggestions) {
		t.Fatalf("reference count %d != table size %d", len(refs), len(res.Suggestions))
	}
	for _, s := range res.Suggestions {
		if refs[s.ID] != 1 {
			t.Fatalf("suggestion %d referenced %d times", s.ID, refs[s.ID])
		}
	}
}

func TestParseConcatenationCoversInput(t *testing.T) {
	// Segment text joins back to the underlying document text: marker
	// syntax is removed, original spans are kept in place.
	tests := []struct {
		input string
		want  string
	}{
		{"plain text no markers", "plain text no markers"},
		{"A [x]{y} B", "A x B"},
		{"[a]{b}[c]{d}", "ac"},
		{"before []{} after", "before []{} after"},
		{"mixed [good]{better} then [broken", "mixed good then [broken"},
	}
	for _, tc := range tests {
		res := Parse(tc.input)
		got := ""
		for _, seg := range res.Segments {
			got += seg.Text
		}
		if got != tc.want {
			t.Fatalf("input %q: concatenated %q want %q", tc.input, got, tc.want)
		}
	}
}
