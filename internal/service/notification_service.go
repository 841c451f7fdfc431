package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ai-interview-be/internal/constant"
	"ai-interview-be/internal/entity"
	"ai-interview-be/internal/pkg/logger"
	"ai-interview-be/internal/pkg/mailer"
	"ai-interview-be/internal/websocket"
	"ai-interview-be/pkg/events"
	pktNats "ai-interview-be/pkg/nats" // Renamed to avoid collision

	"github.com/google/uuid"
)

// NotificationDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification websocket.Notification)
}

type NotificationService struct {
	subscriber *pktNats.Subscriber
	delivery   NotificationDelivery
	mailer     mailer.IEmailService
	logger     logger.ILogger
}

func NewNotificationService(sub *pktNats.Subscriber, delivery NotificationDelivery, mail mailer.IEmailService, log logger.ILogger) *NotificationService {
	return &NotificationService{
		subscriber: sub,
		delivery:   delivery,
		mailer:     mail,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("interview.>", "notif-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to interview.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	typeCode := strings.TrimPrefix(event.EventType(), "interview.")
	s.logger.Info("NotificationService", fmt.Sprintf("Processing event: %s", typeCode), map[string]interface{}{"type": typeCode})

	payload := event.Payload()
	hostID, ok := parseUserID(payload)
	if !ok {
		s.logger.Warn("NotificationService", fmt.Sprintf("No host_id in payload for event %s", typeCode), nil)
		return nil
	}
	problem, _ := payload["problem"].(string)
	sessionID, _ := payload["session_id"].(string)

	switch typeCode {
	case constant.EventSessionCreated:
		s.push(hostID, websocket.Notification{
			Type:      typeCode,
			Title:     "Interview Started",
			Message:   fmt.Sprintf("Your interview session for \"%s\" is ready.", problem),
			SessionId: sessionID,
			CreatedAt: time.Now(),
		})

	case constant.EventSessionCompleted:
		s.push(hostID, websocket.Notification{
			Type:      typeCode,
			Title:     "Interview Completed",
			Message:   fmt.Sprintf("Your interview for \"%s\" has been evaluated.", problem),
			SessionId: sessionID,
			CreatedAt: time.Now(),
		})
		s.sendReport(payload, problem)

	default:
		// Unknown events are acked, not retried.
	}

	return nil
}

func (s *NotificationService) push(userID uuid.UUID, notif websocket.Notification) {
	if s.delivery != nil {
		s.delivery.Send(userID, notif)
	}
}

// sendReport emails the feedback summary when the event carries both an
// address and an evaluation. Mail failures are logged, never retried.
func (s *NotificationService) sendReport(payload map[string]interface{}, problem string) {
	if s.mailer == nil {
		return
	}
	email, _ := payload["host_email"].(string)
	if email == "" {
		return
	}
	fb := parseFeedback(payload)
	if fb == nil {
		return
	}
	if err := s.mailer.SendFeedbackReport(email, problem, fb); err != nil {
		s.logger.Warn("NotificationService", "Failed to send feedback report", map[string]interface{}{"error": err.Error()})
	}
}

func parseUserID(payload map[string]interface{}) (uuid.UUID, bool) {
	uidStr, ok := payload["host_id"].(string)
	if !ok {
		return uuid.Nil, false
	}
	uid, err := uuid.Parse(uidStr)
	if err != nil {
		return uuid.Nil, false
	}
	return uid, true
}

func parseFeedback(payload map[string]interface{}) *entity.InterviewFeedback {
	raw, ok := payload["feedback"].(map[string]interface{})
	if !ok {
		return nil
	}
	fb := &entity.InterviewFeedback{
		OverallScore:        asInt(raw["overallScore"]),
		TechnicalScore:      asInt(raw["technicalScore"]),
		CommunicationScore:  asInt(raw["communicationScore"]),
		ProblemSolvingScore: asInt(raw["problemSolvingScore"]),
	}
	fb.Summary, _ = raw["summary"].(string)
	if items, ok := raw["improvements"].([]interface{}); ok {
		for _, item := range items {
			if str, ok := item.(string); ok {
				fb.Improvements = append(fb.Improvements, str)
			}
		}
	}
	return fb
}

// asInt tolerates the float64 numbers a JSON round-trip produces.
func asInt(v interface{}) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}
