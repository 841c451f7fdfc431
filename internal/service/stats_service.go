// FILE: internal/service/stats_service.go
package service

import (
	"context"

	"ai-interview-be/internal/apperror"
	"ai-interview-be/internal/dto"
	"ai-interview-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IStatsService interface {
	GetMyStats(ctx context.Context, userId uuid.UUID) (*dto.PracticeStatsResponse, error)
}

type statsService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewStatsService(uowFactory unitofwork.RepositoryFactory) IStatsService {
	return &statsService{uowFactory: uowFactory}
}

func (s *statsService) GetMyStats(ctx context.Context, userId uuid.UUID) (*dto.PracticeStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	stats, err := uow.PracticeStatsRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "Failed to load stats", err)
	}
	if stats == nil {
		// No completed sessions yet; the zero value is the answer.
		return &dto.PracticeStatsResponse{}, nil
	}
	return &dto.PracticeStatsResponse{
		SessionsCompleted:   stats.SessionsCompleted,
		AISessionsCompleted: stats.AISessionsCompleted,
		AverageRating:       stats.AverageRating,
		LastCompletedAt:     stats.LastCompletedAt,
	}, nil
}
