package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Session struct {
	Id               uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Problem          string         `gorm:"type:text;not null"`
	Difficulty       string         `gorm:"type:varchar(16);not null"`
	Host             uuid.UUID      `gorm:"type:uuid;not null;index"`
	Participant      *uuid.UUID     `gorm:"type:uuid;index"`
	Status           string         `gorm:"type:varchar(16);not null;default:'active';index"`
	SessionType      string         `gorm:"type:varchar(16);not null;default:'human'"`
	CallId           string         `gorm:"type:text;not null;default:''"`
	InterviewerNotes string         `gorm:"type:text;not null;default:''"`
	Rating           int            `gorm:"not null;default:0"`
	RecordingUrl     string         `gorm:"type:text;not null;default:''"`
	CodeSnapshot     string         `gorm:"type:text;not null;default:''"`
	Language         string         `gorm:"type:varchar(32);not null;default:'javascript'"`
	AiConversation   datatypes.JSON `gorm:"type:jsonb"`
	AiFeedback       datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt        time.Time      `gorm:"autoCreateTime"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime"`
}

func (Session) TableName() string {
	return "sessions"
}
