// FILE: internal/service/ai_interview_service_test.go
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"ai-interview-be/internal/apperror"
	"ai-interview-be/internal/constant"
	"ai-interview-be/internal/dto"
	"ai-interview-be/internal/entity"
	"ai-interview-be/internal/repository/contract"
	"ai-interview-be/internal/repository/memory"
	"ai-interview-be/internal/repository/specification"
	"ai-interview-be/internal/repository/unitofwork"
	"ai-interview-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory doubles

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uuid.UUID]*entity.Session)}
}

func cloneSession(s *entity.Session) *entity.Session {
	out := *s
	out.AiConversation = append([]entity.ConversationTurn(nil), s.AiConversation...)
	if s.AiFeedback != nil {
		fb := *s.AiFeedback
		fb.Improvements = append([]string(nil), s.AiFeedback.Improvements...)
		out.AiFeedback = &fb
	}
	return &out
}

func (r *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.Id] = cloneSession(session)
	return nil
}

func (r *fakeSessionRepo) Update(_ context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[session.Id]; !ok {
		return fmt.Errorf("session %s not stored", session.Id)
	}
	r.sessions[session.Id] = cloneSession(session)
	return nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

func (r *fakeSessionRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, spec := range specs {
		if byID, ok := spec.(specification.ByID); ok {
			if s, found := r.sessions[byID.ID]; found {
				return cloneSession(s), nil
			}
			return nil, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Session
	for _, s := range r.sessions {
		out = append(out, cloneSession(s))
	}
	return out, nil
}

func (r *fakeSessionRepo) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.sessions)), nil
}

func (r *fakeSessionRepo) stored(id uuid.UUID) *entity.Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[id]; ok {
		return cloneSession(s)
	}
	return nil
}

type fakeStatsRepo struct {
	mu    sync.Mutex
	stats map[uuid.UUID]*entity.PracticeStats
}

func newFakeStatsRepo() *fakeStatsRepo {
	return &fakeStatsRepo{stats: make(map[uuid.UUID]*entity.PracticeStats)}
}

func (r *fakeStatsRepo) Upsert(_ context.Context, stats *entity.PracticeStats) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *stats
	r.stats[stats.UserId] = &copied
	return nil
}

func (r *fakeStatsRepo) FindByUserId(_ context.Context, userId uuid.UUID) (*entity.PracticeStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.stats[userId]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, nil
}

type fakeUnitOfWork struct {
	sessions *fakeSessionRepo
	stats    *fakeStatsRepo
}

func (u *fakeUnitOfWork) Begin(context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error               { return nil }
func (u *fakeUnitOfWork) Rollback() error             { return nil }
func (u *fakeUnitOfWork) SessionRepository() contract.SessionRepository {
	return u.sessions
}
func (u *fakeUnitOfWork) PracticeStatsRepository() contract.PracticeStatsRepository {
	return u.stats
}

type fakeUowFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeUowFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork {
	return f.uow
}

// stubProvider returns queued responses, or a fixed error when failing.
// A cancelled context classifies as backend unavailability, matching the
// HTTP providers.
type stubProvider struct {
	mu        sync.Mutex
	responses []string
	err       error
	calls     int
}

func (p *stubProvider) Generate(ctx context.Context, prompt string, _ ...llm.Option) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", llm.ErrBackendUnavailable, err)
	}
	if p.err != nil {
		return "", p.err
	}
	if len(p.responses) == 0 {
		return "Sounds good, walk me through your approach.", nil
	}
	resp := p.responses[0]
	if len(p.responses) > 1 {
		p.responses = p.responses[1:]
	}
	return resp, nil
}

func (p *stubProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	return p.Generate(ctx, "", opts...)
}

type capturingPublisher struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (p *capturingPublisher) Publish(_ context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, payload)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

type interviewFixture struct {
	svc       IAIInterviewService
	repo      *fakeSessionRepo
	provider  *stubProvider
	publisher *capturingPublisher
}

func newInterviewFixture(provider *stubProvider) *interviewFixture {
	repo := newFakeSessionRepo()
	publisher := &capturingPublisher{}
	factory := &fakeUowFactory{uow: &fakeUnitOfWork{sessions: repo, stats: newFakeStatsRepo()}}
	svc := NewAIInterviewService(factory, provider, publisher, nil, memory.NewSessionCache(), nopLogger{})
	return &interviewFixture{svc: svc, repo: repo, provider: provider, publisher: publisher}
}

// Tests

func TestStartSessionValidation(t *testing.T) {
	fx := newInterviewFixture(&stubProvider{})
	host := uuid.New()

	tests := []struct {
		name string
		req  dto.StartInterviewRequest
	}{
		{"missing problem", dto.StartInterviewRequest{Difficulty: "easy"}},
		{"missing difficulty", dto.StartInterviewRequest{Problem: "Two Sum"}},
		{"bad difficulty", dto.StartInterviewRequest{Problem: "Two Sum", Difficulty: "brutal"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.svc.StartSession(context.Background(), host, &tt.req)
			require.Error(t, err)
			assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
		})
	}
}

func TestStartSessionAppendsIntro(t *testing.T) {
	provider := &stubProvider{responses: []string{"Hi! Ready to work on Two Sum today?"}}
	fx := newInterviewFixture(provider)
	host := uuid.New()

	resp, err := fx.svc.StartSession(context.Background(), host, &dto.StartInterviewRequest{
		Problem: "Two Sum", Difficulty: "easy",
	})
	require.NoError(t, err)

	require.Len(t, resp.Session.AiConversation, 1)
	assert.Equal(t, constant.TurnRoleAI, resp.Session.AiConversation[0].Role)
	assert.Equal(t, "Hi! Ready to work on Two Sum today?", resp.Session.AiConversation[0].Content)
	assert.Equal(t, constant.SessionStatusActive, resp.Session.Status)
	assert.Equal(t, constant.SessionTypeAI, resp.Session.SessionType)

	stored := fx.repo.stored(resp.Session.Id)
	require.NotNil(t, stored)
	assert.Len(t, stored.AiConversation, 1)
}

func TestStartSessionBackendFailureUsesFallback(t *testing.T) {
	provider := &stubProvider{err: llm.ErrBackendUnavailable}
	fx := newInterviewFixture(provider)

	resp, err := fx.svc.StartSession(context.Background(), uuid.New(), &dto.StartInterviewRequest{
		Problem: "Reverse Linked List", Difficulty: "medium",
	})
	require.NoError(t, err)

	require.Len(t, resp.Session.AiConversation, 1)
	assert.Contains(t, resp.Session.AiConversation[0].Content, "Reverse Linked List")
	assert.Equal(t, constant.SessionStatusActive, resp.Session.Status)
}

func TestSendMessageAppendOrder(t *testing.T) {
	fx := newInterviewFixture(&stubProvider{responses: []string{"intro"}})
	host := uuid.New()

	start, err := fx.svc.StartSession(context.Background(), host, &dto.StartInterviewRequest{
		Problem: "Two Sum", Difficulty: "easy",
	})
	require.NoError(t, err)

	messages := []string{"I'd use brute force first", "Then a hash map", "That gives O(n)"}
	for _, m := range messages {
		_, err := fx.svc.SendMessage(context.Background(), host, &dto.SendTurnRequest{
			SessionId: start.Session.Id, Message: m,
		})
		require.NoError(t, err)
	}

	stored := fx.repo.stored(start.Session.Id)
	require.Len(t, stored.AiConversation, 1+2*len(messages))
	assert.Equal(t, constant.TurnRoleAI, stored.AiConversation[0].Role)
	for i, m := range messages {
		userTurn := stored.AiConversation[1+2*i]
		aiTurn := stored.AiConversation[2+2*i]
		assert.Equal(t, constant.TurnRoleUser, userTurn.Role)
		assert.Equal(t, m, userTurn.Content)
		assert.Equal(t, constant.TurnRoleAI, aiTurn.Role)
		assert.NotEmpty(t, aiTurn.Content)
	}
}

func TestSendMessageBackendFailureKeepsUserTurn(t *testing.T) {
	fx := newInterviewFixture(&stubProvider{responses: []string{"intro"}})
	host := uuid.New()

	start, err := fx.svc.StartSession(context.Background(), host, &dto.StartInterviewRequest{
		Problem: "Two Sum", Difficulty: "easy",
	})
	require.NoError(t, err)

	fx.provider.err = errors.New("connection refused")
	resp, err := fx.svc.SendMessage(context.Background(), host, &dto.SendTurnRequest{
		SessionId: start.Session.Id, Message: "I would sort the array first",
	})
	require.NoError(t, err)

	assert.Contains(t, resp.Response, "I would sort the array first")

	stored := fx.repo.stored(start.Session.Id)
	require.Len(t, stored.AiConversation, 3)
	assert.Equal(t, "I would sort the array first", stored.AiConversation[1].Content)
	assert.Equal(t, resp.Response, stored.AiConversation[2].Content)
}

func TestSendMessageRejectedOnCompletedSession(t *testing.T) {
	fx := newInterviewFixture(&stubProvider{})
	host := uuid.New()

	start, err := fx.svc.StartSession(context.Background(), host, &dto.StartInterviewRequest{
		Problem: "Two Sum", Difficulty: "easy",
	})
	require.NoError(t, err)

	_, err = fx.svc.EndSession(context.Background(), host, "", &dto.EndInterviewRequest{SessionId: start.Session.Id})
	require.NoError(t, err)

	before := fx.repo.stored(start.Session.Id)
	_, err = fx.svc.SendMessage(context.Background(), host, &dto.SendTurnRequest{
		SessionId: start.Session.Id, Message: "one more thing",
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindState, apperror.KindOf(err))

	after := fx.repo.stored(start.Session.Id)
	assert.Equal(t, before, after)
}

func TestAuthorizationBoundary(t *testing.T) {
	fx := newInterviewFixture(&stubProvider{})
	host := uuid.New()
	stranger := uuid.New()

	start, err := fx.svc.StartSession(context.Background(), host, &dto.StartInterviewRequest{
		Problem: "Two Sum", Difficulty: "easy",
	})
	require.NoError(t, err)
	before := fx.repo.stored(start.Session.Id)

	_, err = fx.svc.SendMessage(context.Background(), stranger, &dto.SendTurnRequest{
		SessionId: start.Session.Id, Message: "hello",
	})
	assert.Equal(t, apperror.KindAuthorization, apperror.KindOf(err))

	_, err = fx.svc.EndSession(context.Background(), stranger, "", &dto.EndInterviewRequest{SessionId: start.Session.Id})
	assert.Equal(t, apperror.KindAuthorization, apperror.KindOf(err))

	_, err = fx.svc.GetSession(context.Background(), stranger, start.Session.Id)
	assert.Equal(t, apperror.KindAuthorization, apperror.KindOf(err))

	after := fx.repo.stored(start.Session.Id)
	assert.Equal(t, before, after)
}

func TestSendMessageSessionNotFound(t *testing.T) {
	fx := newInterviewFixture(&stubProvider{})
	_, err := fx.svc.SendMessage(context.Background(), uuid.New(), &dto.SendTurnRequest{
		SessionId: uuid.New(), Message: "hello",
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestEndSessionParsesFeedback(t *testing.T) {
	evalJSON := `{"overallScore":9,"technicalScore":8,"communicationScore":9,"problemSolvingScore":8,"summary":"Strong performance.","improvements":["Edge cases","Naming","Testing"],"strengths":["Clarity","Speed"]}`
	fx := newInterviewFixture(&stubProvider{responses: []string{"intro", evalJSON}})
	host := uuid.New()

	start, err := fx.svc.StartSession(context.Background(), host, &dto.StartInterviewRequest{
		Problem: "Two Sum", Difficulty: "easy",
	})
	require.NoError(t, err)

	resp, err := fx.svc.EndSession(context.Background(), host, "", &dto.EndInterviewRequest{
		SessionId: start.Session.Id, FinalCode: "function twoSum(){}",
	})
	require.NoError(t, err)

	require.NotNil(t, resp.Feedback)
	assert.Equal(t, 9, resp.Feedback.OverallScore)
	assert.Equal(t, "Strong performance.", resp.Feedback.Summary)
	assert.Equal(t, constant.SessionStatusCompleted, resp.Session.Status)
	assert.Equal(t, "function twoSum(){}", resp.Session.CodeSnapshot)
	assert.Equal(t, 5, resp.Session.Rating) // round(9/2)

	stored := fx.repo.stored(start.Session.Id)
	require.NotNil(t, stored.AiFeedback)
	assert.Equal(t, 9, stored.AiFeedback.OverallScore)
}

func TestEndSessionBackendFailureLeavesFeedbackUnset(t *testing.T) {
	fx := newInterviewFixture(&stubProvider{responses: []string{"intro"}})
	host := uuid.New()

	start, err := fx.svc.StartSession(context.Background(), host, &dto.StartInterviewRequest{
		Problem: "Two Sum", Difficulty: "easy",
	})
	require.NoError(t, err)

	fx.provider.err = llm.ErrBackendUnavailable
	resp, err := fx.svc.EndSession(context.Background(), host, "", &dto.EndInterviewRequest{SessionId: start.Session.Id})
	require.NoError(t, err)

	assert.Nil(t, resp.Feedback)
	assert.Equal(t, constant.SessionStatusCompleted, resp.Session.Status)

	stored := fx.repo.stored(start.Session.Id)
	assert.Nil(t, stored.AiFeedback)
	assert.Equal(t, constant.SessionStatusCompleted, stored.Status)
}

func TestEndSessionAppliesFeedbackDefaults(t *testing.T) {
	// Scores missing entirely, no summary, no improvements.
	fx := newInterviewFixture(&stubProvider{responses: []string{"intro", `{"technicalScore":7}`}})
	host := uuid.New()

	start, err := fx.svc.StartSession(context.Background(), host, &dto.StartInterviewRequest{
		Problem: "Two Sum", Difficulty: "easy",
	})
	require.NoError(t, err)

	resp, err := fx.svc.EndSession(context.Background(), host, "", &dto.EndInterviewRequest{SessionId: start.Session.Id})
	require.NoError(t, err)

	require.NotNil(t, resp.Feedback)
	assert.Equal(t, 5, resp.Feedback.OverallScore)
	assert.Equal(t, 7, resp.Feedback.TechnicalScore)
	assert.Equal(t, 5, resp.Feedback.CommunicationScore)
	assert.Equal(t, 5, resp.Feedback.ProblemSolvingScore)
	assert.Equal(t, "Interview completed.", resp.Feedback.Summary)
	assert.NotNil(t, resp.Feedback.Improvements)
	assert.Empty(t, resp.Feedback.Improvements)
	assert.Equal(t, 3, resp.Session.Rating) // round(5/2)
}

func TestEndSessionOnCompletedIsTolerated(t *testing.T) {
	evalJSON := `{"overallScore":6,"technicalScore":6,"communicationScore":6,"problemSolvingScore":6,"summary":"Fine.","improvements":["a","b","c"],"strengths":["x","y"]}`
	fx := newInterviewFixture(&stubProvider{responses: []string{"intro", evalJSON, evalJSON}})
	host := uuid.New()

	start, err := fx.svc.StartSession(context.Background(), host, &dto.StartInterviewRequest{
		Problem: "Two Sum", Difficulty: "easy",
	})
	require.NoError(t, err)

	_, err = fx.svc.EndSession(context.Background(), host, "", &dto.EndInterviewRequest{SessionId: start.Session.Id})
	require.NoError(t, err)

	resp, err := fx.svc.EndSession(context.Background(), host, "", &dto.EndInterviewRequest{SessionId: start.Session.Id})
	require.NoError(t, err)
	assert.Equal(t, constant.SessionStatusCompleted, resp.Session.Status)
	require.NotNil(t, resp.Feedback)
	assert.Equal(t, 6, resp.Feedback.OverallScore)
}

func TestEndSessionTwicePublishesStatsOnce(t *testing.T) {
	evalJSON := `{"overallScore":6,"technicalScore":6,"communicationScore":6,"problemSolvingScore":6,"summary":"Fine.","improvements":["a"],"strengths":["x"]}`
	fx := newInterviewFixture(&stubProvider{responses: []string{"intro", evalJSON, evalJSON}})
	host := uuid.New()

	start, err := fx.svc.StartSession(context.Background(), host, &dto.StartInterviewRequest{
		Problem: "Two Sum", Difficulty: "easy",
	})
	require.NoError(t, err)

	_, err = fx.svc.EndSession(context.Background(), host, "", &dto.EndInterviewRequest{SessionId: start.Session.Id})
	require.NoError(t, err)
	_, err = fx.svc.EndSession(context.Background(), host, "", &dto.EndInterviewRequest{SessionId: start.Session.Id})
	require.NoError(t, err)

	// A retried end must not double-count the session downstream.
	assert.Len(t, fx.publisher.payloads, 1)
}

func TestEndSessionReleasesTurnLock(t *testing.T) {
	fx := newInterviewFixture(&stubProvider{responses: []string{"intro", `{"overallScore":8}`}})
	host := uuid.New()

	start, err := fx.svc.StartSession(context.Background(), host, &dto.StartInterviewRequest{
		Problem: "Two Sum", Difficulty: "easy",
	})
	require.NoError(t, err)

	_, err = fx.svc.SendMessage(context.Background(), host, &dto.SendTurnRequest{
		SessionId: start.Session.Id, Message: "hash map",
	})
	require.NoError(t, err)

	impl := fx.svc.(*aiInterviewService)
	_, held := impl.sessionLocks.Load(start.Session.Id)
	assert.True(t, held, "active session should hold a lock entry")

	_, err = fx.svc.EndSession(context.Background(), host, "", &dto.EndInterviewRequest{SessionId: start.Session.Id})
	require.NoError(t, err)

	_, held = impl.sessionLocks.Load(start.Session.Id)
	assert.False(t, held, "terminal session should not retain a lock entry")
}

func TestSendMessageCancelledRequestKeepsUserTurn(t *testing.T) {
	fx := newInterviewFixture(&stubProvider{responses: []string{"intro"}})
	host := uuid.New()

	start, err := fx.svc.StartSession(context.Background(), host, &dto.StartInterviewRequest{
		Problem: "Two Sum", Difficulty: "easy",
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := fx.svc.SendMessage(ctx, host, &dto.SendTurnRequest{
		SessionId: start.Session.Id, Message: "I'd try two pointers",
	})
	require.NoError(t, err)
	assert.Contains(t, resp.Response, "I'd try two pointers")

	stored := fx.repo.stored(start.Session.Id)
	require.Len(t, stored.AiConversation, 3)
	assert.Equal(t, constant.TurnRoleUser, stored.AiConversation[1].Role)
	assert.Equal(t, "I'd try two pointers", stored.AiConversation[1].Content)
	assert.Equal(t, constant.TurnRoleAI, stored.AiConversation[2].Role)
}

func TestRatingDerivation(t *testing.T) {
	tests := []struct {
		overall int
		rating  int
	}{
		{10, 5},
		{9, 5},
		{6, 3},
		{5, 3},
		{1, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.rating, ratingFromScore(tt.overall), "overall %d", tt.overall)
	}
}

func TestGetSessionServesCompletedFromCache(t *testing.T) {
	fx := newInterviewFixture(&stubProvider{responses: []string{"intro", `{"overallScore":8}`}})
	host := uuid.New()

	start, err := fx.svc.StartSession(context.Background(), host, &dto.StartInterviewRequest{
		Problem: "Two Sum", Difficulty: "easy",
	})
	require.NoError(t, err)
	_, err = fx.svc.EndSession(context.Background(), host, "", &dto.EndInterviewRequest{SessionId: start.Session.Id})
	require.NoError(t, err)

	// Remove from the store; the cached copy must still answer.
	require.NoError(t, fx.repo.Delete(context.Background(), start.Session.Id))

	resp, err := fx.svc.GetSession(context.Background(), host, start.Session.Id)
	require.NoError(t, err)
	assert.Equal(t, constant.SessionStatusCompleted, resp.Session.Status)
}

func TestEndToEndScenario(t *testing.T) {
	evalJSON := `{"overallScore":7,"technicalScore":7,"communicationScore":8,"problemSolvingScore":7,"summary":"Solid.","improvements":["a","b","c"],"strengths":["x","y"]}`
	fx := newInterviewFixture(&stubProvider{responses: []string{
		"Hi, let's talk about Two Sum.",
		"A hash map is a good direction. What's the complexity?",
		evalJSON,
	}})
	host := uuid.New()

	start, err := fx.svc.StartSession(context.Background(), host, &dto.StartInterviewRequest{
		Problem: "Two Sum", Difficulty: "easy",
	})
	require.NoError(t, err)
	assert.Len(t, start.Session.AiConversation, 1)
	assert.Equal(t, constant.SessionStatusActive, start.Session.Status)

	turn, err := fx.svc.SendMessage(context.Background(), host, &dto.SendTurnRequest{
		SessionId: start.Session.Id, Message: "I'll use a hash map",
	})
	require.NoError(t, err)
	assert.Len(t, turn.Conversation, 3)

	end, err := fx.svc.EndSession(context.Background(), host, "", &dto.EndInterviewRequest{
		SessionId: start.Session.Id, FinalCode: "function twoSum(){}",
	})
	require.NoError(t, err)
	assert.Equal(t, constant.SessionStatusCompleted, end.Session.Status)
	assert.Equal(t, "function twoSum(){}", end.Session.CodeSnapshot)
	require.NotNil(t, end.Feedback)
	for _, score := range []int{
		end.Feedback.OverallScore,
		end.Feedback.TechnicalScore,
		end.Feedback.CommunicationScore,
		end.Feedback.ProblemSolvingScore,
	} {
		assert.GreaterOrEqual(t, score, 1)
		assert.LessOrEqual(t, score, 10)
	}
	assert.GreaterOrEqual(t, end.Session.Rating, 0)
	assert.LessOrEqual(t, end.Session.Rating, 5)

	// Completion feeds the stats pipeline.
	assert.Len(t, fx.publisher.payloads, 1)
}
