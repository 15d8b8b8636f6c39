package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Resume struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title       string         `gorm:"type:varchar(255);not null"`
	Summary     string         `gorm:"type:text"`
	Skills      datatypes.JSON `gorm:"type:jsonb"`
	Experiences datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
}

func (Resume) TableName() string {
	return "resumes"
}
