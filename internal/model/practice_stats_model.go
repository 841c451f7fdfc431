package model

import (
	"time"

	"github.com/google/uuid"
)

type PracticeStats struct {
	UserId              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SessionsCompleted   int        `gorm:"not null;default:0"`
	AISessionsCompleted int        `gorm:"not null;default:0"`
	TotalRating         int        `gorm:"not null;default:0"`
	AverageRating       float64    `gorm:"not null;default:0"`
	LastCompletedAt     *time.Time `gorm:""`
	UpdatedAt           time.Time  `gorm:"autoUpdateTime"`
}

func (PracticeStats) TableName() string {
	return "practice_stats"
}
