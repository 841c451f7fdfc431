package feedback

import (
	"testing"
)

const validJSON = `{
  "overallScore": 8,
  "technicalScore": 7,
  "communicationScore": 9,
  "problemSolvingScore": 8,
  "summary": "Strong performance overall.",
  "improvements": ["Discuss complexity earlier", "Test edge cases", "Name variables better"],
  "strengths": ["Clear communication", "Good instincts"]
}`

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", `{"a":1}`, `{"a":1}`},
		{"surrounding whitespace", "  {\"a\":1}\n", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"json language tag", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fence glued to content", "```{\"a\":1}```", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripFences(tt.in); got != tt.want {
				t.Errorf("StripFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseValidJSON(t *testing.T) {
	eval := Parse(validJSON)

	if eval.OverallScore != 8 || eval.TechnicalScore != 7 ||
		eval.CommunicationScore != 9 || eval.ProblemSolvingScore != 8 {
		t.Errorf("scores not parsed as-is: %+v", eval)
	}
	if eval.Summary != "Strong performance overall." {
		t.Errorf("Summary = %q", eval.Summary)
	}
	if len(eval.Improvements) != 3 || len(eval.Strengths) != 2 {
		t.Errorf("lists not parsed: %d improvements, %d strengths", len(eval.Improvements), len(eval.Strengths))
	}
}

func TestParseFencedJSON(t *testing.T) {
	eval := Parse("```json\n" + validJSON + "\n```")

	if eval.OverallScore != 8 {
		t.Errorf("fenced JSON not parsed, got fallback: %+v", eval)
	}
}

func TestParseProseFallback(t *testing.T) {
	raw := "The candidate did quite well, I would say around a seven."
	eval := Parse(raw)

	for name, score := range map[string]int{
		"overall":        eval.OverallScore,
		"technical":      eval.TechnicalScore,
		"communication":  eval.CommunicationScore,
		"problemSolving": eval.ProblemSolvingScore,
	} {
		if score != 5 {
			t.Errorf("%s score = %d, want neutral 5", name, score)
		}
	}

	if eval.Summary != raw {
		t.Errorf("Summary = %q, want the raw input", eval.Summary)
	}
	if len(eval.Improvements) != 1 {
		t.Errorf("Improvements = %v, want one placeholder entry", eval.Improvements)
	}
	if eval.Strengths == nil || len(eval.Strengths) != 0 {
		t.Errorf("Strengths = %v, want empty non-nil slice", eval.Strengths)
	}
}
