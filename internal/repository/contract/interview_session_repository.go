package contract

import (
	"context"

	"github.com/google/uuid"

	"interview-prep-be/internal/repository/specification"
	"interview-prep-be/pkg/interview"
)

// InterviewSessionRepository persists whole session documents. Get and Put
// satisfy interview.SessionStore so the engine can use either this or one of
// the lighter stores interchangeably.
type InterviewSessionRepository interface {
	interview.SessionStore
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*interview.Session, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
