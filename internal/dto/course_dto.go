package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCourseRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Track       string `json:"track" validate:"required,oneof=backend frontend data devops mobile"`
	IsPublished bool   `json:"is_published"`
}

type UpdateCourseRequest struct {
	Id          uuid.UUID
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Track       string `json:"track" validate:"required,oneof=backend frontend data devops mobile"`
	IsPublished bool   `json:"is_published"`
}

type CourseResponse struct {
	Id          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Track       string     `json:"track"`
	IsPublished bool       `json:"is_published"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type EnrollmentResponse struct {
	Id         uuid.UUID       `json:"id"`
	CourseId   uuid.UUID       `json:"course_id"`
	Course     *CourseResponse `json:"course,omitempty"`
	EnrolledAt time.Time       `json:"enrolled_at"`
}
