// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"time"

	"ai-interview-be/internal/constant"
	"ai-interview-be/internal/dto"
	"ai-interview-be/internal/entity"
	"ai-interview-be/internal/pkg/logger"
	"ai-interview-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// statsConsumerService keeps the per-user PracticeStats aggregate in sync
// with completed sessions, off the request path.
type statsConsumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewStatsConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IConsumerService {
	return &statsConsumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (cs *statsConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *statsConsumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.SessionCompletedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("StatsConsumer", "Failed to unmarshal message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	stats, err := uow.PracticeStatsRepository().FindByUserId(ctx, payload.HostId)
	if err != nil {
		cs.logger.Error("StatsConsumer", "Failed to load stats", map[string]interface{}{"user_id": payload.HostId, "error": err.Error()})
		msg.Nack()
		return
	}
	if stats == nil {
		stats = &entity.PracticeStats{UserId: payload.HostId}
	}

	stats.SessionsCompleted++
	if payload.SessionType == constant.SessionTypeAI {
		stats.AISessionsCompleted++
	}
	stats.TotalRating += payload.Rating
	stats.AverageRating = float64(stats.TotalRating) / float64(stats.SessionsCompleted)
	now := time.Now()
	stats.LastCompletedAt = &now
	stats.UpdatedAt = &now

	if err := uow.PracticeStatsRepository().Upsert(ctx, stats); err != nil {
		cs.logger.Error("StatsConsumer", "Failed to upsert stats", map[string]interface{}{"user_id": payload.HostId, "error": err.Error()})
		msg.Nack()
		return
	}

	cs.logger.Info("StatsConsumer", "Stats updated", map[string]interface{}{
		"user_id":            payload.HostId,
		"sessions_completed": stats.SessionsCompleted,
	})
	msg.Ack()
}
