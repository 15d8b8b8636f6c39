package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// InterviewSession persists the whole session document. The levels tree is
// a single jsonb column: the engine reads and writes the session as one
// record, so normalizing questions into rows would only add join traffic.
type InterviewSession struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OwnerId      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Context      datatypes.JSON `gorm:"type:jsonb;not null"`
	Levels       datatypes.JSON `gorm:"type:jsonb;not null"`
	CurrentLevel int            `gorm:"not null;default:1"`
	TotalScore   float64        `gorm:"not null;default:0"`
	IsCompleted  bool           `gorm:"not null;default:false;index"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
}

func (InterviewSession) TableName() string {
	return "interview_sessions"
}
