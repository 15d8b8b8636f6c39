package interview

import (
	"context"

	"github.com/google/uuid"
)

// SessionStore persists sessions as whole documents keyed by id.
// Implementations must be strongly consistent: a Get after a Put on the
// same id observes that Put. The engine serializes writers per session
// (see SessionLocker), so stores do not need their own write coordination.
type SessionStore interface {
	// Get returns the session or a NOT_FOUND error.
	Get(ctx context.Context, id uuid.UUID) (*Session, error)

	// Put writes the full session record, replacing any previous version.
	Put(ctx context.Context, session *Session) error
}
