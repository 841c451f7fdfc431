package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConversationTurn is one entry of an AI interview conversation.
// Slice order is the conversational order and must be preserved.
type ConversationTurn struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// InterviewFeedback is the structured evaluation attached at completion.
type InterviewFeedback struct {
	OverallScore        int      `json:"overallScore"`
	TechnicalScore      int      `json:"technicalScore"`
	CommunicationScore  int      `json:"communicationScore"`
	ProblemSolvingScore int      `json:"problemSolvingScore"`
	Improvements        []string `json:"improvements"`
	Summary             string   `json:"summary"`
}

// Session is the persisted record of one interview attempt, either the
// "human" peer variant or the "ai" interviewer variant. Only the AI
// variant carries a conversation and feedback.
type Session struct {
	Id               uuid.UUID
	Problem          string
	Difficulty       string
	Host             uuid.UUID
	Participant      *uuid.UUID
	Status           string
	SessionType      string
	CallId           string
	InterviewerNotes string
	Rating           int
	RecordingUrl     string
	CodeSnapshot     string
	Language         string
	AiConversation   []ConversationTurn
	AiFeedback       *InterviewFeedback
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}

// AppendTurn preserves causal order: callers append the user turn before
// initiating the backend call that produces the AI turn.
func (s *Session) AppendTurn(role, content string, at time.Time) {
	s.AiConversation = append(s.AiConversation, ConversationTurn{
		Role:      role,
		Content:   content,
		Timestamp: at,
	})
}
