package dto

import (
	"time"

	"github.com/google/uuid"
)

type ResumeExperienceDTO struct {
	Company     string `json:"company" validate:"required"`
	Title       string `json:"title" validate:"required"`
	StartYear   int    `json:"start_year" validate:"required,gte=1950"`
	EndYear     int    `json:"end_year" validate:"omitempty,gtefield=StartYear"`
	Description string `json:"description"`
}

type CreateResumeRequest struct {
	Title       string                `json:"title" validate:"required"`
	Summary     string                `json:"summary"`
	Skills      []string              `json:"skills"`
	Experiences []ResumeExperienceDTO `json:"experiences" validate:"dive"`
}

type UpdateResumeRequest struct {
	Id          uuid.UUID
	Title       string                `json:"title" validate:"required"`
	Summary     string                `json:"summary"`
	Skills      []string              `json:"skills"`
	Experiences []ResumeExperienceDTO `json:"experiences" validate:"dive"`
}

type ResumeResponse struct {
	Id          uuid.UUID             `json:"id"`
	Title       string                `json:"title"`
	Summary     string                `json:"summary"`
	Skills      []string              `json:"skills"`
	Experiences []ResumeExperienceDTO `json:"experiences"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   *time.Time            `json:"updated_at,omitempty"`
}
