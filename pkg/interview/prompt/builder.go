package prompt

import (
	"fmt"
	"strings"
)

// Problem carries the metadata every phase embeds into its prompt.
type Problem struct {
	Title       string
	Difficulty  string
	Description string
}

// Turn is one conversational entry, ordered as spoken.
type Turn struct {
	Role    string
	Content string
}

// Composed pairs the system instruction with the immediate prompt.
// For the turn phase the instruction carries all context and the prompt
// is the user's literal latest message.
type Composed struct {
	Prompt string
	System string
}

const (
	noCodeWrittenPlaceholder   = "No code written yet"
	noCodeSubmittedPlaceholder = "No code submitted"
)

// IntroBuilder produces the opening prompt of an interview.
type IntroBuilder struct {
	problem Problem
}

func NewIntroBuilder(problem Problem) *IntroBuilder {
	return &IntroBuilder{problem: problem}
}

func (b *IntroBuilder) Build() string {
	var prompt strings.Builder

	prompt.WriteString("You are a friendly technical interviewer starting a DSA interview session.\n\n")
	prompt.WriteString("TASK: Introduce yourself and present the problem naturally, as if you're on a phone call.\n\n")

	prompt.WriteString("PROBLEM:\n")
	fmt.Fprintf(&prompt, "- Title: %q\n", b.problem.Title)
	fmt.Fprintf(&prompt, "- Difficulty: %s\n", b.problem.Difficulty)
	fmt.Fprintf(&prompt, "- Description: %s\n\n", b.problem.Description)

	prompt.WriteString("YOUR INTRODUCTION SHOULD:\n")
	prompt.WriteString("1. Greet warmly (like \"Hi! Thanks for joining me today\")\n")
	prompt.WriteString("2. Briefly introduce yourself as an AI technical interviewer\n")
	prompt.WriteString("3. Mention the problem name and difficulty\n")
	prompt.WriteString("4. Explain the problem clearly in simple terms\n")
	prompt.WriteString("5. Ask if they have any clarifying questions before starting\n\n")

	prompt.WriteString("Keep it conversational and friendly - speak like you're having a real conversation. About 3-4 sentences total.")

	return prompt.String()
}

// TurnBuilder produces the instruction/prompt pair for one exchange.
type TurnBuilder struct {
	problem     Problem
	history     []Turn
	currentCode string
	userMessage string
}

func NewTurnBuilder(problem Problem, history []Turn, currentCode, userMessage string) *TurnBuilder {
	return &TurnBuilder{
		problem:     problem,
		history:     history,
		currentCode: currentCode,
		userMessage: userMessage,
	}
}

func (b *TurnBuilder) Build() Composed {
	var system strings.Builder

	b.writeRules(&system)
	b.writeFlow(&system)
	b.writeProblem(&system)
	b.writeHistory(&system)
	b.writeCode(&system, noCodeWrittenPlaceholder)
	b.writeTrigger(&system)

	return Composed{
		Prompt: b.userMessage,
		System: system.String(),
	}
}

func (b *TurnBuilder) writeRules(system *strings.Builder) {
	system.WriteString("You are an experienced and friendly DSA interviewer conducting a technical interview. Your goal is to help the candidate demonstrate their problem-solving skills while making them feel comfortable.\n\n")
	system.WriteString("CRITICAL RULES:\n")
	system.WriteString("1. ALWAYS respond to what the user says - NEVER say you can't process something\n")
	system.WriteString("2. If they greet you (hi, hello, etc), respond warmly and ask if they're ready to start\n")
	system.WriteString("3. If they give short answers, ask follow-up questions to understand their thinking\n")
	system.WriteString("4. Acknowledge their input before asking the next question\n")
	system.WriteString("5. Be conversational and natural - this is a voice/chat interview\n\n")
}

func (b *TurnBuilder) writeFlow(system *strings.Builder) {
	system.WriteString("INTERVIEW FLOW:\n")
	system.WriteString("- Start: Greet warmly, present problem, ask if they have clarifying questions\n")
	system.WriteString("- During: Listen to their approach, provide feedback, ask about edge cases/complexity\n")
	system.WriteString("- Coding: Observe their code, point out potential issues via questions\n")
	system.WriteString("- Cross-question: \"What if X?\", \"How would you optimize?\", \"What's the time complexity?\"\n")
	system.WriteString("- Never give direct solutions - guide with hints and questions\n\n")
}

func (b *TurnBuilder) writeProblem(system *strings.Builder) {
	system.WriteString("PROBLEM:\n")
	fmt.Fprintf(system, "Title: %s\n", b.problem.Title)
	fmt.Fprintf(system, "Difficulty: %s\n", b.problem.Difficulty)
	fmt.Fprintf(system, "Description: %s\n\n", b.problem.Description)
}

func (b *TurnBuilder) writeHistory(system *strings.Builder) {
	system.WriteString("CONVERSATION HISTORY:\n")
	system.WriteString(renderHistory(b.history))
	system.WriteString("\n\n")
}

func (b *TurnBuilder) writeCode(system *strings.Builder, placeholder string) {
	system.WriteString("USER'S CODE:\n```\n")
	if b.currentCode == "" {
		system.WriteString(placeholder)
	} else {
		system.WriteString(b.currentCode)
	}
	system.WriteString("\n```\n\n")
}

func (b *TurnBuilder) writeTrigger(system *strings.Builder) {
	fmt.Fprintf(system, "USER JUST SAID: %q\n\n", b.userMessage)
	system.WriteString("RESPOND AS THE INTERVIEWER:\n")
	system.WriteString("- Be warm and encouraging\n")
	system.WriteString("- Acknowledge what they said\n")
	system.WriteString("- Give quick feedback if applicable\n")
	system.WriteString("- Ask a follow-up question to keep the interview flowing\n")
	system.WriteString("- Keep it conversational (2-3 sentences)\n")
	system.WriteString("- Speak naturally like you're on a phone call")
}

// EvaluationBuilder produces the end-of-interview scoring instruction.
type EvaluationBuilder struct {
	problem   Problem
	history   []Turn
	finalCode string
}

func NewEvaluationBuilder(problem Problem, history []Turn, finalCode string) *EvaluationBuilder {
	return &EvaluationBuilder{
		problem:   problem,
		history:   history,
		finalCode: finalCode,
	}
}

func (b *EvaluationBuilder) Build() string {
	var prompt strings.Builder

	fmt.Fprintf(&prompt, "You are evaluating a completed DSA interview for the %q problem.\n\n", b.problem.Title)

	prompt.WriteString("FULL INTERVIEW TRANSCRIPT:\n")
	prompt.WriteString(renderHistory(b.history))
	prompt.WriteString("\n\n")

	prompt.WriteString("FINAL CODE:\n```\n")
	if b.finalCode == "" {
		prompt.WriteString(noCodeSubmittedPlaceholder)
	} else {
		prompt.WriteString(b.finalCode)
	}
	prompt.WriteString("\n```\n\n")

	prompt.WriteString("Evaluate the candidate and respond in EXACTLY this JSON format (no markdown, just raw JSON):\n")
	prompt.WriteString(`{
  "overallScore": <number 1-10>,
  "technicalScore": <number 1-10>,
  "communicationScore": <number 1-10>,
  "problemSolvingScore": <number 1-10>,
  "summary": "<2-3 sentence overall assessment>",
  "improvements": ["<improvement 1>", "<improvement 2>", "<improvement 3>"],
  "strengths": ["<strength 1>", "<strength 2>"]
}`)
	prompt.WriteString("\n\n")

	prompt.WriteString("SCORING GUIDE:\n")
	prompt.WriteString("- 9-10: Exceptional, would get a strong hire\n")
	prompt.WriteString("- 7-8: Good performance, minor areas to improve\n")
	prompt.WriteString("- 5-6: Average, needs improvement\n")
	prompt.WriteString("- 3-4: Below expectations, significant gaps\n")
	prompt.WriteString("- 1-2: Did not demonstrate competency")

	return prompt.String()
}

func renderHistory(history []Turn) string {
	lines := make([]string, 0, len(history))
	for _, t := range history {
		lines = append(lines, fmt.Sprintf("%s: %s", strings.ToUpper(t.Role), t.Content))
	}
	return strings.Join(lines, "\n")
}
