package contract

import (
	"context"

	"interview-prep-be/internal/entity"
	"interview-prep-be/internal/repository/specification"
)

type ProfileRepository interface {
	Upsert(ctx context.Context, profile *entity.CandidateProfile) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CandidateProfile, error)
}
