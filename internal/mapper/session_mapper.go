package mapper

import (
	"encoding/json"
	"time"

	"ai-interview-be/internal/entity"
	"ai-interview-be/internal/model"

	"gorm.io/datatypes"
)

type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

func (m *SessionMapper) ToEntity(s *model.Session) *entity.Session {
	if s == nil {
		return nil
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	// Stored JSON is produced by ToModel; on corruption we fall back to
	// empty values rather than failing the read.
	conversation := make([]entity.ConversationTurn, 0)
	if len(s.AiConversation) > 0 {
		_ = json.Unmarshal(s.AiConversation, &conversation)
	}

	var aiFeedback *entity.InterviewFeedback
	if len(s.AiFeedback) > 0 {
		var fb entity.InterviewFeedback
		if err := json.Unmarshal(s.AiFeedback, &fb); err == nil {
			aiFeedback = &fb
		}
	}

	return &entity.Session{
		Id:               s.Id,
		Problem:          s.Problem,
		Difficulty:       s.Difficulty,
		Host:             s.Host,
		Participant:      s.Participant,
		Status:           s.Status,
		SessionType:      s.SessionType,
		CallId:           s.CallId,
		InterviewerNotes: s.InterviewerNotes,
		Rating:           s.Rating,
		RecordingUrl:     s.RecordingUrl,
		CodeSnapshot:     s.CodeSnapshot,
		Language:         s.Language,
		AiConversation:   conversation,
		AiFeedback:       aiFeedback,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        updatedAt,
	}
}

func (m *SessionMapper) ToModel(s *entity.Session) *model.Session {
	if s == nil {
		return nil
	}

	conversation := s.AiConversation
	if conversation == nil {
		conversation = make([]entity.ConversationTurn, 0)
	}
	conversationJSON, _ := json.Marshal(conversation)

	var feedbackJSON datatypes.JSON
	if s.AiFeedback != nil {
		b, _ := json.Marshal(s.AiFeedback)
		feedbackJSON = b
	}

	out := &model.Session{
		Id:               s.Id,
		Problem:          s.Problem,
		Difficulty:       s.Difficulty,
		Host:             s.Host,
		Participant:      s.Participant,
		Status:           s.Status,
		SessionType:      s.SessionType,
		CallId:           s.CallId,
		InterviewerNotes: s.InterviewerNotes,
		Rating:           s.Rating,
		RecordingUrl:     s.RecordingUrl,
		CodeSnapshot:     s.CodeSnapshot,
		Language:         s.Language,
		AiConversation:   conversationJSON,
		AiFeedback:       feedbackJSON,
		CreatedAt:        s.CreatedAt,
	}
	if s.UpdatedAt != nil {
		out.UpdatedAt = *s.UpdatedAt
	}
	return out
}

func (m *SessionMapper) StatsToEntity(s *model.PracticeStats) *entity.PracticeStats {
	if s == nil {
		return nil
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.PracticeStats{
		UserId:              s.UserId,
		SessionsCompleted:   s.SessionsCompleted,
		AISessionsCompleted: s.AISessionsCompleted,
		TotalRating:         s.TotalRating,
		AverageRating:       s.AverageRating,
		LastCompletedAt:     s.LastCompletedAt,
		UpdatedAt:           updatedAt,
	}
}

func (m *SessionMapper) StatsToModel(s *entity.PracticeStats) *model.PracticeStats {
	if s == nil {
		return nil
	}

	return &model.PracticeStats{
		UserId:              s.UserId,
		SessionsCompleted:   s.SessionsCompleted,
		AISessionsCompleted: s.AISessionsCompleted,
		TotalRating:         s.TotalRating,
		AverageRating:       s.AverageRating,
		LastCompletedAt:     s.LastCompletedAt,
	}
}
