package llm

import (
	_ "embed"
	"strings"
)

var (
	//go:embed prompts/annotate.txt
	annotatePrompt string
	//go:embed prompts/structure.txt
	structurePrompt string
	//go:embed prompts/score.txt
	scorePrompt string
)

// AnnotatePrompt returns the inline-edit critique prompt.
func AnnotatePrompt() string {
	return strings.TrimSpace(annotatePrompt)
}

// StructurePrompt returns the structuring prompt with the resume text
// appended.
func StructurePrompt(resumeText string) string {
	return strings.TrimSpace(structurePrompt) + "\n\nResume text:\n" + resumeText
}

// ScorePrompt returns the scoring prompt with the resume text appended.
func ScorePrompt(resumeText string) string {
	return strings.TrimSpace(scorePrompt) + "\n\nResume text:\n" + resumeText
}
