package dto

import (
	"time"

	"github.com/google/uuid"
)

// SessionDTO is the outward shape of a session, shared by the human and
// AI variants. AI-only fields are omitted when empty.
type SessionDTO struct {
	Id               uuid.UUID    `json:"id"`
	Problem          string       `json:"problem"`
	Difficulty       string       `json:"difficulty"`
	Host             uuid.UUID    `json:"host"`
	Participant      *uuid.UUID   `json:"participant,omitempty"`
	Status           string       `json:"status"`
	SessionType      string       `json:"session_type"`
	CallId           string       `json:"call_id,omitempty"`
	InterviewerNotes string       `json:"interviewer_notes,omitempty"`
	Rating           int          `json:"rating"`
	RecordingUrl     string       `json:"recording_url,omitempty"`
	CodeSnapshot     string       `json:"code_snapshot,omitempty"`
	Language         string       `json:"language"`
	AiConversation   []TurnDTO    `json:"ai_conversation,omitempty"`
	AiFeedback       *FeedbackDTO `json:"ai_feedback,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        *time.Time   `json:"updated_at,omitempty"`
}

type CreateSessionRequest struct {
	Problem    string `json:"problem" validate:"required"`
	Difficulty string `json:"difficulty" validate:"required,oneof=easy medium hard"`
}

type UpdateSessionRequest struct {
	InterviewerNotes *string `json:"interviewer_notes,omitempty"`
	Rating           *int    `json:"rating,omitempty"`
	CodeSnapshot     *string `json:"code_snapshot,omitempty"`
	Language         *string `json:"language,omitempty"`
}

type SessionListResponse struct {
	Sessions []*SessionDTO `json:"sessions"`
}
