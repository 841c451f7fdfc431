// FILE: internal/service/session_service.go
package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"ai-interview-be/internal/apperror"
	"ai-interview-be/internal/constant"
	"ai-interview-be/internal/dto"
	"ai-interview-be/internal/entity"
	"ai-interview-be/internal/pkg/logger"
	"ai-interview-be/internal/repository/specification"
	"ai-interview-be/internal/repository/unitofwork"
	"ai-interview-be/pkg/events"
	pktNats "ai-interview-be/pkg/nats"

	"github.com/google/uuid"
)

// ISessionService covers the human peer-interview variant. These sessions
// carry no conversation or feedback; the realtime call transport lives
// outside this service and is referenced only by callId.
type ISessionService interface {
	Create(ctx context.Context, hostId uuid.UUID, req *dto.CreateSessionRequest) (*dto.SessionDTO, error)
	ListActive(ctx context.Context) ([]*dto.SessionDTO, error)
	ListMyRecent(ctx context.Context, userId uuid.UUID) ([]*dto.SessionDTO, error)
	Get(ctx context.Context, sessionId uuid.UUID) (*dto.SessionDTO, error)
	Join(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.SessionDTO, error)
	End(ctx context.Context, callerId uuid.UUID, sessionId uuid.UUID) (*dto.SessionDTO, error)
	Update(ctx context.Context, callerId uuid.UUID, sessionId uuid.UUID, req *dto.UpdateSessionRequest) (*dto.SessionDTO, error)
}

const activeListLimit = 20

type sessionService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewSessionService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher, log logger.ILogger) ISessionService {
	return &sessionService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *sessionService) Create(ctx context.Context, hostId uuid.UUID, req *dto.CreateSessionRequest) (*dto.SessionDTO, error) {
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
		SessionType: constant.SessionTypeHuman,
		CallId:      fmt.Sprintf("session_%d_%06d", now.UnixMilli(), rand.Intn(1000000)),
		Language:    "javascript",
		CreatedAt:   now,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SessionRepository().Create(ctx, &session); err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "Failed to create session", err)
	}

	if s.eventPublisher != nil {
		evt := events.NewBaseEvent(constant.EventSessionCreated, map[string]interface{}{
			"session_id":   session.Id.String(),
			"host_id":      hostId.String(),
			"session_type": session.SessionType,
			"problem":      session.Problem,
		})
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("SessionService", "Failed to publish SESSION_CREATED event", map[string]interface{}{"error": err.Error()})
		}
	}

	return toSessionDTO(&session), nil
}

// ListActive returns joinable sessions, newest first.
func (s *sessionService) ListActive(ctx context.Context) ([]*dto.SessionDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sessions, err := uow.SessionRepository().FindAll(ctx,
		specification.ByStatus{Status: constant.SessionStatusActive},
		specification.BySessionType{SessionType: constant.SessionTypeHuman},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: activeListLimit},
	)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "Failed to list sessions", err)
	}
	return toSessionDTOs(sessions), nil
}

// ListMyRecent returns the caller's completed sessions, as host or as
// participant, newest first.
func (s *sessionService) ListMyRecent(ctx context.Context, userId uuid.UUID) ([]*dto.SessionDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sessions, err := uow.SessionRepository().FindAll(ctx,
		specification.ParticipatedIn{UserID: userId},
		specification.ByStatus{Status: constant.SessionStatusCompleted},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: activeListLimit},
	)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "Failed to list sessions", err)
	}
	return toSessionDTOs(sessions), nil
}

func (s *sessionService) Get(ctx context.Context, sessionId uuid.UUID) (*dto.SessionDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.findHumanSession(ctx, uow, sessionId)
	if err != nil {
		return nil, err
	}
	return toSessionDTO(session), nil
}

func (s *sessionService) Join(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.SessionDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.findHumanSession(ctx, uow, sessionId)
	if err != nil {
		return nil, err
	}
	if session.Status != constant.SessionStatusActive {
		return nil, apperror.State("Session is no longer active")
	}

	// Rejoining as the host or the existing participant is a no-op.
	if session.Host == userId || (session.Participant != nil && *session.Participant == userId) {
		return toSessionDTO(session), nil
	}
	if session.Participant != nil {
		return nil, apperror.State("Session is full")
	}

	session.Participant = &userId
	now := time.Now()
	session.UpdatedAt = &now

	if err := uow.SessionRepository().Update(ctx, session); err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "Failed to join session", err)
	}
	return toSessionDTO(session), nil
}

func (s *sessionService) End(ctx context.Context, callerId uuid.UUID, sessionId uuid.UUID) (*dto.SessionDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.findHumanSession(ctx, uow, sessionId)
	if err != nil {
		return nil, err
	}
	if session.Host != callerId {
		return nil, apperror.Authorization("Only the host can end this session")
	}
	if session.Status == constant.SessionStatusCompleted {
		return nil, apperror.State("Session is already completed")
	}

	session.Status = constant.SessionStatusCompleted
	now := time.Now()
	session.UpdatedAt = &now

	if err := uow.SessionRepository().Update(ctx, session); err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "Failed to end session", err)
	}

	if s.eventPublisher != nil {
		evt := events.NewBaseEvent(constant.EventSessionCompleted, map[string]interface{}{
			"session_id":   session.Id.String(),
			"host_id":      session.Host.String(),
			"session_type": session.SessionType,
			"problem":      session.Problem,
			"rating":       session.Rating,
		})
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("SessionService", "Failed to publish SESSION_COMPLETED event", map[string]interface{}{"error": err.Error()})
		}
	}

	return toSessionDTO(session), nil
}

func (s *sessionService) Update(ctx context.Context, callerId uuid.UUID, sessionId uuid.UUID, req *dto.UpdateSessionRequest) (*dto.SessionDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.findHumanSession(ctx, uow, sessionId)
	if err != nil {
		return nil, err
	}
	if session.Host != callerId {
		return nil, apperror.Authorization("Only the host can update this session")
	}

	if req.InterviewerNotes != nil {
		session.InterviewerNotes = *req.InterviewerNotes
	}
	if req.Rating != nil {
		session.Rating = clampRating(*req.Rating)
	}
	if req.CodeSnapshot != nil {
		session.CodeSnapshot = *req.CodeSnapshot
	}
	if req.Language != nil {
		session.Language = *req.Language
	}
	now := time.Now()
	session.UpdatedAt = &now

	if err := uow.SessionRepository().Update(ctx, session); err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "Failed to update session", err)
	}
	return toSessionDTO(session), nil
}

func (s *sessionService) findHumanSession(ctx context.Context, uow unitofwork.UnitOfWork, sessionId uuid.UUID) (*entity.Session, error) {
	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "Failed to load session", err)
	}
	if session == nil || session.SessionType != constant.SessionTypeHuman {
		return nil, apperror.NotFound("Session not found")
	}
	return session, nil
}

func toSessionDTOs(sessions []*entity.Session) []*dto.SessionDTO {
	out := make([]*dto.SessionDTO, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, toSessionDTO(s))
	}
	return out
}

func clampRating(r int) int {
	if r < 0 {
		return 0
	}
	if r > 5 {
		return 5
	}
	return r
}
