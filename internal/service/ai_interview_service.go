// FILE: internal/service/ai_interview_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sync"
	"time"

	"ai-interview-be/internal/apperror"
	"ai-interview-be/internal/constant"
	"ai-interview-be/internal/dto"
	"ai-interview-be/internal/entity"
	"ai-interview-be/internal/pkg/logger"
	"ai-interview-be/internal/repository/memory"
	"ai-interview-be/internal/repository/specification"
	"ai-interview-be/internal/repository/unitofwork"
	"ai-interview-be/pkg/events"
	"ai-interview-be/pkg/interview/feedback"
	"ai-interview-be/pkg/interview/prompt"
	"ai-interview-be/pkg/llm"
	pktNats "ai-interview-be/pkg/nats"

	"github.com/google/uuid"
)

type IAIInterviewService interface {
	StartSession(ctx context.Context, hostId uuid.UUID, req *dto.StartInterviewRequest) (*dto.StartInterviewResponse, error)
	SendMessage(ctx context.Context, callerId uuid.UUID, req *dto.SendTurnRequest) (*dto.SendTurnResponse, error)
	EndSession(ctx context.Context, callerId uuid.UUID, callerEmail string, req *dto.EndInterviewRequest) (*dto.EndInterviewResponse, error)
	GetSession(ctx context.Context, callerId uuid.UUID, sessionId uuid.UUID) (*dto.GetInterviewResponse, error)
}

type aiInterviewService struct {
	uowFactory       unitofwork.RepositoryFactory
	llmProvider      llm.LLMProvider
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	sessionCache     *memory.SessionCache
	logger           logger.ILogger

	// Overlapping SendMessage calls against one session would interleave
	// turn appends; a lock keyed by session id serializes them.
	sessionLocks sync.Map // uuid.UUID -> *sync.Mutex
}

func NewAIInterviewService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	sessionCache *memory.SessionCache,
	log logger.ILogger,
) IAIInterviewService {
	return &aiInterviewService{
		uowFactory:       uowFactory,
		llmProvider:      llmProvider,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		sessionCache:     sessionCache,
		logger:           log,
	}
}

func (s *aiInterviewService) lockSession(id uuid.UUID) func() {
	v, _ := s.sessionLocks.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (s *aiInterviewService) StartSession(ctx context.Context, hostId uuid.UUID, req *dto.StartInterviewRequest) (*dto.StartInterviewResponse, error) {
	if req.Problem == "" || req.Difficulty == "" {
		return nil, apperror.Validation("Problem and difficulty are required")
	}
	if !constant.IsValidDifficulty(req.Difficulty) {
		return nil, apperror.Validation("Difficulty must be easy, medium or hard")
	}

	now := time.Now()
	session := entity.Session{
		Id:          uuid.New(),
		Problem:     req.Problem,
		Difficulty:  req.Difficulty,
		Host:        hostId,
		Status:      constant.SessionStatusActive,
		SessionType: constant.SessionTypeAI,
		CallId:      fmt.Sprintf("ai_session_%d", now.UnixMilli()),
		Language:    "javascript",
		CreatedAt:   now,
	}

	introPrompt := prompt.NewIntroBuilder(prompt.Problem{
		Title:       req.Problem,
		Difficulty:  req.Difficulty,
		Description: req.ProblemDescription,
	}).Build()

	intro, err := s.llmProvider.Generate(ctx, introPrompt, llm.WithTemperature(0.7))
	if err != nil {
		// Creation never fails because of the backend. The session opens
		// with a canned greeting naming the problem instead.
		s.logger.Warn("AIInterviewService", "Intro generation failed, using fallback", map[string]interface{}{
			"session_id": session.Id,
			"error":      err.Error(),
		})
		intro = fmt.Sprintf(constant.FallbackIntroTemplate, req.Problem)
	}
	session.AppendTurn(constant.TurnRoleAI, intro, time.Now())

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SessionRepository().Create(ctx, &session); err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "Failed to create session", err)
	}

	s.publishEvent(ctx, events.NewBaseEvent(constant.EventSessionCreated, map[string]interface{}{
		"session_id":   session.Id.String(),
		"host_id":      hostId.String(),
		"session_type": session.SessionType,
		"problem":      session.Problem,
	}))

	return &dto.StartInterviewResponse{Session: toSessionDTO(&session)}, nil
}

func (s *aiInterviewService) SendMessage(ctx context.Context, callerId uuid.UUID, req *dto.SendTurnRequest) (*dto.SendTurnResponse, error) {
	if req.SessionId == uuid.Nil || req.Message == "" {
		return nil, apperror.Validation("Session id and message are required")
	}

	unlock := s.lockSession(req.SessionId)
	defer unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.resolveAISession(ctx, uow, callerId, req.SessionId)
	if err != nil {
		return nil, err
	}
	if session.Status != constant.SessionStatusActive {
		return nil, apperror.State("Interview session is no longer active")
	}

	// The user's utterance is preserved even if generation fails below.
	session.AppendTurn(constant.TurnRoleUser, req.Message, time.Now())

	currentCode := session.CodeSnapshot
	if req.CurrentCode != "" {
		currentCode = req.CurrentCode
	}

	composed := prompt.NewTurnBuilder(
		prompt.Problem{Title: session.Problem, Difficulty: session.Difficulty},
		toPromptTurns(session.AiConversation),
		currentCode,
		req.Message,
	).Build()

	aiText, err := s.llmProvider.Generate(ctx, composed.Prompt, llm.WithSystemPrompt(composed.System), llm.WithTemperature(0.7))
	if err != nil {
		s.logger.Warn("AIInterviewService", "Turn generation failed, using fallback", map[string]interface{}{
			"session_id": session.Id,
			"error":      err.Error(),
		})
		aiText = fmt.Sprintf(constant.FallbackTurnTemplate, req.Message)
	}
	session.AppendTurn(constant.TurnRoleAI, aiText, time.Now())

	if req.CurrentCode != "" {
		session.CodeSnapshot = req.CurrentCode
	}
	now := time.Now()
	session.UpdatedAt = &now

	if err := uow.SessionRepository().Update(ctx, session); err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "Failed to save session", err)
	}

	return &dto.SendTurnResponse{
		Response:     aiText,
		Conversation: toTurnDTOs(session.AiConversation),
	}, nil
}

func (s *aiInterviewService) EndSession(ctx context.Context, callerId uuid.UUID, callerEmail string, req *dto.EndInterviewRequest) (*dto.EndInterviewResponse, error) {
	if req.SessionId == uuid.Nil {
		return nil, apperror.Validation("Session id is required")
	}

	unlock := s.lockSession(req.SessionId)
	defer unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.resolveAISession(ctx, uow, callerId, req.SessionId)
	if err != nil {
		return nil, err
	}
	// Ending an already-completed session is tolerated: the evaluation
	// re-runs and overwrites the previous feedback. Completion side
	// effects (stats message, notification event, report mail) fire only
	// on the first active -> completed transition so a client retry does
	// not double-count.
	firstCompletion := session.Status != constant.SessionStatusCompleted

	finalCode := req.FinalCode
	if finalCode == "" {
		finalCode = session.CodeSnapshot
	}

	evalPrompt := prompt.NewEvaluationBuilder(
		prompt.Problem{Title: session.Problem, Difficulty: session.Difficulty},
		toPromptTurns(session.AiConversation),
		finalCode,
	).Build()

	raw, err := s.llmProvider.Generate(ctx, evalPrompt, llm.WithTemperature(0.3), llm.WithMaxTokens(2048))
	if err != nil {
		// The session still completes; it just carries no feedback from
		// this call.
		s.logger.Warn("AIInterviewService", "Evaluation generation failed, completing without feedback", map[string]interface{}{
			"session_id": session.Id,
			"error":      err.Error(),
		})
	} else {
		eval := feedback.Parse(raw)
		session.AiFeedback = buildFeedback(eval)
		session.Rating = ratingFromScore(session.AiFeedback.OverallScore)
	}

	if req.FinalCode != "" {
		session.CodeSnapshot = req.FinalCode
	}
	session.Status = constant.SessionStatusCompleted
	now := time.Now()
	session.UpdatedAt = &now

	if err := uow.SessionRepository().Update(ctx, session); err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "Failed to save session", err)
	}

	// Completed sessions are read-only, safe to serve from memory.
	s.sessionCache.Put(session)

	if firstCompletion {
		s.publishCompletion(ctx, session, callerEmail)
	}

	// The session is terminal; its turn lock will never be needed again.
	s.sessionLocks.Delete(session.Id)

	resp := &dto.EndInterviewResponse{Session: toSessionDTO(session)}
	if session.AiFeedback != nil {
		resp.Feedback = toFeedbackDTO(session.AiFeedback)
	}
	return resp, nil
}

func (s *aiInterviewService) GetSession(ctx context.Context, callerId uuid.UUID, sessionId uuid.UUID) (*dto.GetInterviewResponse, error) {
	if cached, found := s.sessionCache.Get(sessionId); found && cached.SessionType == constant.SessionTypeAI {
		if cached.Host != callerId {
			return nil, apperror.Authorization("You do not have access to this session")
		}
		return &dto.GetInterviewResponse{Session: toSessionDTO(cached)}, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.resolveAISession(ctx, uow, callerId, sessionId)
	if err != nil {
		return nil, err
	}
	return &dto.GetInterviewResponse{Session: toSessionDTO(session)}, nil
}

// resolveAISession loads a session and applies the shared guards: it must
// exist, be the AI variant, and belong to the caller. A wrong session
// type reads as not found so the human variant is never exposed here.
func (s *aiInterviewService) resolveAISession(ctx context.Context, uow unitofwork.UnitOfWork, callerId, sessionId uuid.UUID) (*entity.Session, error) {
	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "Failed to load session", err)
	}
	if session == nil || session.SessionType != constant.SessionTypeAI {
		return nil, apperror.NotFound("Session not found")
	}
	if session.Host != callerId {
		return nil, apperror.Authorization("You do not have access to this session")
	}
	return session, nil
}

func (s *aiInterviewService) publishCompletion(ctx context.Context, session *entity.Session, hostEmail string) {
	msg := dto.SessionCompletedMessage{
		SessionId:   session.Id,
		HostId:      session.Host,
		SessionType: session.SessionType,
		Rating:      session.Rating,
	}
	if payload, err := json.Marshal(msg); err == nil {
		if err := s.publisherService.Publish(ctx, payload); err != nil {
			s.logger.Warn("AIInterviewService", "Failed to publish stats message", map[string]interface{}{"error": err.Error()})
		}
	}

	data := map[string]interface{}{
		"session_id":   session.Id.String(),
		"host_id":      session.Host.String(),
		"host_email":   hostEmail,
		"session_type": session.SessionType,
		"problem":      session.Problem,
		"rating":       session.Rating,
	}
	if session.AiFeedback != nil {
		data["feedback"] = map[string]interface{}{
			"overallScore":        session.AiFeedback.OverallScore,
			"technicalScore":      session.AiFeedback.TechnicalScore,
			"communicationScore":  session.AiFeedback.CommunicationScore,
			"problemSolvingScore": session.AiFeedback.ProblemSolvingScore,
			"summary":             session.AiFeedback.Summary,
			"improvements":        session.AiFeedback.Improvements,
		}
	}
	s.publishEvent(ctx, events.NewBaseEvent(constant.EventSessionCompleted, data))
}

// publishEvent logs but never fails the request; notifications are auxiliary.
func (s *aiInterviewService) publishEvent(ctx context.Context, evt events.BaseEvent) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("AIInterviewService", fmt.Sprintf("Failed to publish %s event", evt.Type), map[string]interface{}{"error": err.Error()})
	}
}

// buildFeedback applies the neutral defaults: missing or zero scores
// become 5 (the scale midpoint, never 0, so infrastructure failures do
// not read as a failed interview).
func buildFeedback(eval *feedback.Evaluation) *entity.InterviewFeedback {
	fb := &entity.InterviewFeedback{
		OverallScore:        defaultScore(eval.OverallScore),
		TechnicalScore:      defaultScore(eval.TechnicalScore),
		CommunicationScore:  defaultScore(eval.CommunicationScore),
		ProblemSolvingScore: defaultScore(eval.ProblemSolvingScore),
		Improvements:        eval.Improvements,
		Summary:             eval.Summary,
	}
	if fb.Improvements == nil {
		fb.Improvements = []string{}
	}
	if fb.Summary == "" {
		fb.Summary = constant.FallbackFeedbackSummary
	}
	return fb
}

func defaultScore(score int) int {
	if score == 0 {
		return 5
	}
	return score
}

// ratingFromScore converts the 0-10 overall score to a 0-5 star rating,
// rounding half up.
func ratingFromScore(overall int) int {
	return int(math.Round(float64(overall) / 2))
}

// DTO mapping helpers shared by the AI and human session services.

func toSessionDTO(s *entity.Session) *dto.SessionDTO {
	out := &dto.SessionDTO{
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
		AiConversation:   toTurnDTOs(s.AiConversation),
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
	if s.AiFeedback != nil {
		out.AiFeedback = toFeedbackDTO(s.AiFeedback)
	}
	return out
}

func toTurnDTOs(turns []entity.ConversationTurn) []dto.TurnDTO {
	out := make([]dto.TurnDTO, 0, len(turns))
	for _, t := range turns {
		out = append(out, dto.TurnDTO{Role: t.Role, Content: t.Content, Timestamp: t.Timestamp})
	}
	return out
}

func toFeedbackDTO(fb *entity.InterviewFeedback) *dto.FeedbackDTO {
	return &dto.FeedbackDTO{
		OverallScore:        fb.OverallScore,
		TechnicalScore:      fb.TechnicalScore,
		CommunicationScore:  fb.CommunicationScore,
		ProblemSolvingScore: fb.ProblemSolvingScore,
		Improvements:        fb.Improvements,
		Summary:             fb.Summary,
	}
}

func toPromptTurns(turns []entity.ConversationTurn) []prompt.Turn {
	out := make([]prompt.Turn, 0, len(turns))
	for _, t := range turns {
		out = append(out, prompt.Turn{Role: t.Role, Content: t.Content})
	}
	return out
}
