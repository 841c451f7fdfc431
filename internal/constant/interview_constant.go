package constant

const (
	TurnRoleUser = "user"
	TurnRoleAI   = "ai"

	SessionTypeHuman = "human"
	SessionTypeAI    = "ai"

	SessionStatusActive    = "active"
	SessionStatusCompleted = "completed"

	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Event type codes published on the NATS bus.
const (
	EventSessionCreated   = "SESSION_CREATED"
	EventSessionCompleted = "SESSION_COMPLETED"
)

// Watermill topic for the internal stats pipeline.
const SessionCompletedTopic = "SESSION_COMPLETED"

// Deterministic fallback content used when the language backend is
// unavailable. Creation and turn-taking must never fail because of it.
const (
	// FallbackIntroTemplate takes the problem title.
	FallbackIntroTemplate = `Welcome to your DSA interview! Today we'll be working on the "%s" problem. Take your time to read the problem description, and let me know when you're ready to discuss your approach.`

	// FallbackTurnTemplate takes the user's message, quoted back.
	FallbackTurnTemplate = `I heard you say "%s". Let me think about that... Can you tell me more about your approach to this problem?`

	// FallbackFeedbackSummary is applied when a parsed evaluation carries no summary.
	FallbackFeedbackSummary = "Interview completed."
)

func IsValidDifficulty(d string) bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}
