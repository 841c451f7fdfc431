package prompt

import (
	"strings"
	"testing"
)

var twoSum = Problem{
	Title:       "Two Sum",
	Difficulty:  "easy",
	Description: "Find two numbers that add up to a target.",
}

func TestIntroBuilder(t *testing.T) {
	got := NewIntroBuilder(twoSum).Build()

	wants := []string{
		`"Two Sum"`,
		"Difficulty: easy",
		"Find two numbers that add up to a target.",
		"3-4 sentences",
		"clarifying questions",
	}
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("intro prompt missing %q", want)
		}
	}
}

func TestTurnBuilder(t *testing.T) {
	tests := []struct {
		name        string
		history     []Turn
		currentCode string
		userMessage string
		wantSystem  []string
	}{
		{
			name: "history and code rendered literally",
			history: []Turn{
				{Role: "ai", Content: "Welcome!"},
				{Role: "user", Content: "I'll use a hash map"},
			},
			currentCode: "func twoSum() {}",
			userMessage: "I'll use a hash map",
			wantSystem: []string{
				"AI: Welcome!",
				"USER: I'll use a hash map",
				"func twoSum() {}",
				`USER JUST SAID: "I'll use a hash map"`,
			},
		},
		{
			name:        "empty code gets placeholder",
			history:     []Turn{{Role: "ai", Content: "Welcome!"}},
			userMessage: "hi",
			wantSystem:  []string{"No code written yet"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			composed := NewTurnBuilder(twoSum, tt.history, tt.currentCode, tt.userMessage).Build()

			if composed.Prompt != tt.userMessage {
				t.Errorf("Prompt = %q, want the literal user message %q", composed.Prompt, tt.userMessage)
			}
			for _, want := range tt.wantSystem {
				if !strings.Contains(composed.System, want) {
					t.Errorf("system instruction missing %q", want)
				}
			}
		})
	}
}

func TestTurnBuilderIsPure(t *testing.T) {
	history := []Turn{{Role: "user", Content: "hello"}}
	b := NewTurnBuilder(twoSum, history, "", "hello")

	first := b.Build()
	second := b.Build()

	if first != second {
		t.Error("Build is not deterministic for identical inputs")
	}
}

func TestEvaluationBuilder(t *testing.T) {
	history := []Turn{
		{Role: "ai", Content: "Welcome!"},
		{Role: "user", Content: "Done."},
	}

	t.Run("with final code", func(t *testing.T) {
		got := NewEvaluationBuilder(twoSum, history, "function twoSum(){}").Build()

		wants := []string{
			`"Two Sum"`,
			"AI: Welcome!",
			"USER: Done.",
			"function twoSum(){}",
			`"overallScore"`,
			`"technicalScore"`,
			`"communicationScore"`,
			`"problemSolvingScore"`,
			`"improvements"`,
			`"strengths"`,
			"no markdown, just raw JSON",
		}
		for _, want := range wants {
			if !strings.Contains(got, want) {
				t.Errorf("evaluation prompt missing %q", want)
			}
		}
	})

	t.Run("without final code", func(t *testing.T) {
		got := NewEvaluationBuilder(twoSum, history, "").Build()
		if !strings.Contains(got, "No code submitted") {
			t.Error("evaluation prompt missing the no-code placeholder")
		}
	})
}
