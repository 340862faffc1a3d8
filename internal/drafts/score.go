package drafts

import (
	"encoding/json"

	"resume-editor-backend/internal/llm"
)

const scoreUnavailable = "score unavailable: model returned malformed output"

// ParseScore turns raw model output into a Score using the same
// recovery ladder as draft assembly. Malformed output never surfaces
// as an error: it degrades to an explicit all-zero score with an
// explanatory comment per criterion.
func ParseScore(raw string) Score {
	cleaned := llm.CleanJSONBlock(raw)

	var score Score
	if err := json.Unmarshal([]byte(cleaned), &score); err != nil {
		candidate, found := llm.ExtractJSONObject(cleaned)
		if !found {
			return zeroScore()
		}
		if err := json.Unmarshal([]byte(candidate), &score); err != nil {
			return zeroScore()
		}
	}

	score.Overall = clampScore(score.Overall)
	score.Criteria.Content.Score = clampScore(score.Criteria.Content.Score)
	score.Criteria.Formatting.Score = clampScore(score.Criteria.Formatting.Score)
	score.Criteria.Impact.Score = clampScore(score.Criteria.Impact.Score)
	score.Criteria.Relevance.Score = clampScore(score.Criteria.Relevance.Score)
	return score
}

func zeroScore() Score {
	unavailable := Criterion{Score: 0, Comment: scoreUnavailable}
	return Score{
		Overall: 0,
		Criteria: ScoreCriteria{
			Content:    unavailable,
			Formatting: unavailable,
			Impact:     unavailable,
			Relevance:  unavailable,
		},
	}
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
