package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByStatus filters sessions by lifecycle status
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// BySessionType filters by "human" or "ai"
type BySessionType struct {
	SessionType string
}

func (s BySessionType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_type = ?", s.SessionType)
}

// HostedBy filters sessions owned by a user
type HostedBy struct {
	UserID uuid.UUID
}

func (s HostedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("host = ?", s.UserID)
}

// ParticipatedIn matches sessions where the user is host or participant
type ParticipatedIn struct {
	UserID uuid.UUID
}

func (s ParticipatedIn) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("host = ? OR participant = ?", s.UserID, s.UserID)
}
