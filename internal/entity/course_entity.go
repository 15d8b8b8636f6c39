package entity

import (
	"time"

	"github.com/google/uuid"
)

type Course struct {
	Id          uuid.UUID
	Title       string
	Description string
	Track       string // e.g. "backend", "frontend", "data"
	IsPublished bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

type Enrollment struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	CourseId   uuid.UUID
	EnrolledAt time.Time
}
