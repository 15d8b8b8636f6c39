package memory

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"interview-prep-be/pkg/interview"
)

// SessionStore keeps session documents in process memory. It backs local
// development and tests; sessions vanish on restart, so the postgres store
// stays the default outside of those.
type SessionStore struct {
	cache *cache.Cache
}

func NewSessionStore() *SessionStore {
	// Sessions linger for a day so an abandoned interview can still be
	// resumed within the same deployment.
	c := cache.New(24*time.Hour, 10*time.Minute)
	return &SessionStore{
		cache: c,
	}
}

func (s *SessionStore) Get(ctx context.Context, id uuid.UUID) (*interview.Session, error) {
	x, found := s.cache.Get(id.String())
	if !found {
		return nil, interview.NewNotFoundError("session %s not found", id)
	}
	return decodeSession(x.([]byte))
}

func (s *SessionStore) Put(ctx context.Context, session *interview.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	s.cache.Set(session.Id.String(), raw, cache.DefaultExpiration)
	return nil
}

// Sessions are stored JSON-encoded so callers never share mutable state
// with the cache.
func decodeSession(raw []byte) (*interview.Session, error) {
	var session interview.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, err
	}
	return &session, nil
}
