package implementation

import (
	"context"
	"errors"

	"ai-interview-be/internal/entity"
	"ai-interview-be/internal/mapper"
	"ai-interview-be/internal/model"
	"ai-interview-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PracticeStatsRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SessionMapper
}

func NewPracticeStatsRepository(db *gorm.DB) contract.PracticeStatsRepository {
	return &PracticeStatsRepositoryImpl{
		db:     db,
		mapper: mapper.NewSessionMapper(),
	}
}

func (r *PracticeStatsRepositoryImpl) Upsert(ctx context.Context, stats *entity.PracticeStats) error {
	m := r.mapper.StatsToModel(stats)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(m).Error
	if err != nil {
		return err
	}
	*stats = *r.mapper.StatsToEntity(m)
	return nil
}

func (r *PracticeStatsRepositoryImpl) FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.PracticeStats, error) {
	var m model.PracticeStats
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.StatsToEntity(&m), nil
}
