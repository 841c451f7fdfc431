package dto

import "time"

type PracticeStatsResponse struct {
	SessionsCompleted   int        `json:"sessions_completed"`
	AISessionsCompleted int        `json:"ai_sessions_completed"`
	AverageRating       float64    `json:"average_rating"`
	LastCompletedAt     *time.Time `json:"last_completed_at,omitempty"`
}
