package contract

import (
	"context"

	"ai-interview-be/internal/entity"

	"github.com/google/uuid"
)

type PracticeStatsRepository interface {
	// Upsert creates or replaces the aggregate row for stats.UserId.
	Upsert(ctx context.Context, stats *entity.PracticeStats) error
	FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.PracticeStats, error)
}
