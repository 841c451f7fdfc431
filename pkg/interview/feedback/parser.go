package feedback

import (
	"encoding/json"
	"strings"
)

// Evaluation is the structured assessment the evaluation phase asks the
// backend to produce. Scores are on a 1-10 scale.
type Evaluation struct {
	OverallScore        int      `json:"overallScore"`
	TechnicalScore      int      `json:"technicalScore"`
	CommunicationScore  int      `json:"communicationScore"`
	ProblemSolvingScore int      `json:"problemSolvingScore"`
	Summary             string   `json:"summary"`
	Improvements        []string `json:"improvements"`
	Strengths           []string `json:"strengths"`
}

const fallbackScore = 5

// Parse turns raw backend text into an Evaluation. It never fails: when
// the text is not the requested JSON shape, a neutral fallback carrying
// the raw text as its summary is returned instead.
func Parse(raw string) *Evaluation {
	cleaned := StripFences(raw)

	var eval Evaluation
	if err := json.Unmarshal([]byte(cleaned), &eval); err != nil {
		return fallbackEvaluation(raw)
	}
	return &eval
}

// StripFences removes a surrounding markdown code fence (with or without
// a language tag) and surrounding whitespace. Pure string transform.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)

	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	// Drop a language tag on the opening fence line, e.g. ```json
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		firstLine := strings.TrimSpace(s[:idx])
		if firstLine != "" && !strings.ContainsAny(firstLine, "{}[]") {
			s = s[idx+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")

	return strings.TrimSpace(s)
}

func fallbackEvaluation(raw string) *Evaluation {
	return &Evaluation{
		OverallScore:        fallbackScore,
		TechnicalScore:      fallbackScore,
		CommunicationScore:  fallbackScore,
		ProblemSolvingScore: fallbackScore,
		Summary:             raw,
		Improvements:        []string{"Unable to parse detailed feedback"},
		Strengths:           []string{},
	}
}
