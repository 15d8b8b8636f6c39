package entity

import (
	"time"

	"github.com/google/uuid"
)

type ResumeExperience struct {
	Company     string `json:"company"`
	Title       string `json:"title"`
	StartYear   int    `json:"start_year"`
	EndYear     int    `json:"end_year,omitempty"`
	Description string `json:"description"`
}

type Resume struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Title       string
	Summary     string
	Skills      []string
	Experiences []ResumeExperience
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
