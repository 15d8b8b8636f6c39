package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpdateProfileRequest struct {
	Headline        string   `json:"headline"`
	TargetRole      string   `json:"target_role" validate:"required"`
	TargetCompany   string   `json:"target_company"`
	ExperienceLevel string   `json:"experience_level" validate:"required"`
	Skills          []string `json:"skills" validate:"required,min=1"`
	FocusAreas      []string `json:"focus_areas"`
}

type ProfileResponse struct {
	Id              uuid.UUID  `json:"id"`
	Headline        string     `json:"headline"`
	TargetRole      string     `json:"target_role"`
	TargetCompany   string     `json:"target_company"`
	ExperienceLevel string     `json:"experience_level"`
	Skills          []string   `json:"skills"`
	FocusAreas      []string   `json:"focus_areas"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

type UserProfileResponse struct {
	Id        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
