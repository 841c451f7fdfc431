package entity

import (
	"time"

	"github.com/google/uuid"
)

// PracticeStats is the per-user aggregate maintained asynchronously by
// the stats consumer whenever a session completes.
type PracticeStats struct {
	UserId              uuid.UUID
	SessionsCompleted   int
	AISessionsCompleted int
	TotalRating         int
	AverageRating       float64
	LastCompletedAt     *time.Time
	UpdatedAt           *time.Time
}
