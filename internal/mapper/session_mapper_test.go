package mapper

import (
	"testing"
	"time"

	"ai-interview-be/internal/constant"
	"ai-interview-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRoundTrip(t *testing.T) {
	m := NewSessionMapper()
	now := time.Now().Truncate(time.Second).UTC()

	in := &entity.Session{
		Id:          uuid.New(),
		Problem:     "Two Sum",
		Difficulty:  constant.DifficultyEasy,
		Host:        uuid.New(),
		Status:      constant.SessionStatusActive,
		SessionType: constant.SessionTypeAI,
		Language:    "javascript",
		AiConversation: []entity.ConversationTurn{
			{Role: constant.TurnRoleAI, Content: "Welcome!", Timestamp: now},
			{Role: constant.TurnRoleUser, Content: "Hi", Timestamp: now},
		},
		AiFeedback: &entity.InterviewFeedback{
			OverallScore:        8,
			TechnicalScore:      7,
			CommunicationScore:  9,
			ProblemSolvingScore: 8,
			Improvements:        []string{"test edge cases"},
			Summary:             "Solid.",
		},
		CreatedAt: now,
	}

	out := m.ToEntity(m.ToModel(in))
	require.NotNil(t, out)

	assert.Equal(t, in.Id, out.Id)
	assert.Equal(t, in.Problem, out.Problem)
	assert.Equal(t, in.SessionType, out.SessionType)
	require.Len(t, out.AiConversation, 2)
	assert.Equal(t, "Welcome!", out.AiConversation[0].Content)
	assert.Equal(t, constant.TurnRoleUser, out.AiConversation[1].Role)
	require.NotNil(t, out.AiFeedback)
	assert.Equal(t, 8, out.AiFeedback.OverallScore)
	assert.Equal(t, []string{"test edge cases"}, out.AiFeedback.Improvements)
}

func TestSessionWithoutFeedback(t *testing.T) {
	m := NewSessionMapper()

	in := &entity.Session{
		Id:          uuid.New(),
		Problem:     "Two Sum",
		Difficulty:  constant.DifficultyEasy,
		Host:        uuid.New(),
		Status:      constant.SessionStatusActive,
		SessionType: constant.SessionTypeHuman,
	}

	mod := m.ToModel(in)
	assert.Nil(t, mod.AiFeedback, "absent feedback must stay NULL, not empty JSON")

	out := m.ToEntity(mod)
	assert.Nil(t, out.AiFeedback)
	assert.NotNil(t, out.AiConversation)
	assert.Empty(t, out.AiConversation)
}
