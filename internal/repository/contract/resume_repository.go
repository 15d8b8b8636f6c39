package contract

import (
	"context"

	"github.com/google/uuid"

	"interview-prep-be/internal/entity"
	"interview-prep-be/internal/repository/specification"
)

type ResumeRepository interface {
	Create(ctx context.Context, resume *entity.Resume) error
	Update(ctx context.Context, resume *entity.Resume) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Resume, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Resume, error)
}
