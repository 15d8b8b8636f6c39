package model

import (
	"time"

	"github.com/google/uuid"
)

type Course struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Track       string    `gorm:"type:varchar(50);index"`
	IsPublished bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Course) TableName() string {
	return "courses"
}

type Enrollment struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;index:idx_enrollments_user_course,unique"`
	CourseId   uuid.UUID `gorm:"type:uuid;not null;index:idx_enrollments_user_course,unique"`
	EnrolledAt time.Time `gorm:"autoCreateTime"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
