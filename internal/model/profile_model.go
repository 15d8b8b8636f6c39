package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CandidateProfile struct {
	Id              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId          uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	Headline        string         `gorm:"type:varchar(255)"`
	TargetRole      string         `gorm:"type:varchar(255)"`
	TargetCompany   string         `gorm:"type:varchar(255)"`
	ExperienceLevel string         `gorm:"type:varchar(50)"`
	Skills          datatypes.JSON `gorm:"type:jsonb"`
	FocusAreas      datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
}

func (CandidateProfile) TableName() string {
	return "candidate_profiles"
}
