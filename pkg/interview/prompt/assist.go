package prompt

import (
	"fmt"
	"strings"
)

// Assist builders produce the instruction/prompt pairs for the
// standalone code-assist operations. Unlike the interview phases they
// carry no conversation; each call is a single exchange about a piece
// of code.

// ReviewBuilder produces the full-review prompt for a code submission.
type ReviewBuilder struct {
	code         string
	language     string
	problemTitle string
}

func NewReviewBuilder(code, language, problemTitle string) *ReviewBuilder {
	return &ReviewBuilder{
		code:         code,
		language:     language,
		problemTitle: problemTitle,
	}
}

func (b *ReviewBuilder) Build() Composed {
	var system strings.Builder
	system.WriteString("You are an expert code reviewer and programming mentor. Analyze the provided code and give constructive feedback. Be concise but helpful.\n\n")
	system.WriteString("Focus on:\n")
	system.WriteString("1. **Correctness**: Does it solve the problem correctly?\n")
	system.WriteString("2. **Time Complexity**: What's the Big O complexity?\n")
	system.WriteString("3. **Space Complexity**: Memory usage analysis\n")
	system.WriteString("4. **Code Quality**: Readability, naming, structure\n")
	system.WriteString("5. **Improvements**: Specific suggestions to make it better\n\n")
	system.WriteString("Format your response with clear sections using markdown. Be encouraging but honest.")

	var prompt strings.Builder
	fmt.Fprintf(&prompt, "Review this %s code", b.language)
	if b.problemTitle != "" {
		fmt.Fprintf(&prompt, " for the %q problem", b.problemTitle)
	}
	prompt.WriteString(":\n\n")
	writeCodeBlock(&prompt, b.language, b.code)
	prompt.WriteString("\n\nProvide a brief but comprehensive code review.")

	return Composed{Prompt: prompt.String(), System: system.String()}
}

// HintBuilder produces a nudge prompt that must not reveal the solution.
type HintBuilder struct {
	code               string
	language           string
	problemTitle       string
	problemDescription string
}

func NewHintBuilder(code, language, problemTitle, problemDescription string) *HintBuilder {
	return &HintBuilder{
		code:               code,
		language:           language,
		problemTitle:       problemTitle,
		problemDescription: problemDescription,
	}
}

func (b *HintBuilder) Build() Composed {
	var system strings.Builder
	system.WriteString("You are a helpful programming tutor. Give a hint to help the student progress WITHOUT giving away the solution directly.\n\n")
	system.WriteString("Rules:\n")
	system.WriteString("- Be encouraging and supportive\n")
	system.WriteString("- Point them in the right direction\n")
	system.WriteString("- Ask guiding questions\n")
	system.WriteString("- Never write the actual solution code\n")
	system.WriteString("- Keep hints concise (2-3 sentences max)")

	var prompt strings.Builder
	fmt.Fprintf(&prompt, "Problem: %s\n", b.problemTitle)
	fmt.Fprintf(&prompt, "Description: %s\n\n", b.problemDescription)
	fmt.Fprintf(&prompt, "Current code (%s):\n", b.language)
	writeCodeBlock(&prompt, b.language, b.code)
	prompt.WriteString("\n\nGive a helpful hint to guide them forward.")

	return Composed{Prompt: prompt.String(), System: system.String()}
}

// ExplainBuilder produces the plain-terms walkthrough prompt.
type ExplainBuilder struct {
	code     string
	language string
}

func NewExplainBuilder(code, language string) *ExplainBuilder {
	return &ExplainBuilder{
		code:     code,
		language: language,
	}
}

func (b *ExplainBuilder) Build() Composed {
	system := "You are a patient programming teacher. Explain code in simple terms that anyone can understand. Use analogies when helpful. Keep explanations clear and concise."

	var prompt strings.Builder
	fmt.Fprintf(&prompt, "Explain this %s code step by step:\n\n", b.language)
	writeCodeBlock(&prompt, b.language, b.code)

	return Composed{Prompt: prompt.String(), System: system}
}

func writeCodeBlock(w *strings.Builder, language, code string) {
	fmt.Fprintf(w, "```%s\n%s\n```", language, code)
}
