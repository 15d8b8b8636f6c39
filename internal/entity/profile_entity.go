package entity

import (
	"time"

	"github.com/google/uuid"
)

// CandidateProfile holds what the candidate is preparing for. It seeds the
// default interview context when a session is started without overrides.
type CandidateProfile struct {
	Id              uuid.UUID
	UserId          uuid.UUID
	Headline        string
	TargetRole      string
	TargetCompany   string
	ExperienceLevel string
	Skills          []string
	FocusAreas      []string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}
