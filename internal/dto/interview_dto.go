package dto

import (
	"time"

	"github.com/google/uuid"
)

type StartInterviewRequest struct {
	Problem            string `json:"problem" validate:"required"`
	Difficulty         string `json:"difficulty" validate:"required,oneof=easy medium hard"`
	ProblemDescription string `json:"problem_description,omitempty"`
}

type SendTurnRequest struct {
	SessionId   uuid.UUID `json:"session_id" validate:"required"`
	Message     string    `json:"message" validate:"required"`
	CurrentCode string    `json:"current_code,omitempty"`
}

type EndInterviewRequest struct {
	SessionId uuid.UUID `json:"session_id" validate:"required"`
	FinalCode string    `json:"final_code,omitempty"`
}

type TurnDTO struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type FeedbackDTO struct {
	OverallScore        int      `json:"overall_score"`
	TechnicalScore      int      `json:"technical_score"`
	CommunicationScore  int      `json:"communication_score"`
	ProblemSolvingScore int      `json:"problem_solving_score"`
	Improvements        []string `json:"improvements"`
	Summary             string   `json:"summary"`
}

type StartInterviewResponse struct {
	Session *SessionDTO `json:"session"`
}

type SendTurnResponse struct {
	Response     string    `json:"response"`
	Conversation []TurnDTO `json:"conversation"`
}

type EndInterviewResponse struct {
	Session  *SessionDTO  `json:"session"`
	Feedback *FeedbackDTO `json:"feedback,omitempty"`
}

type GetInterviewResponse struct {
	Session *SessionDTO `json:"session"`
}
