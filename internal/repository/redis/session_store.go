package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"interview-prep-be/pkg/interview"
)

const keyPrefix = "interview:session:"

// SessionStore persists session documents as JSON values in Redis. Keys
// never expire: an interview session stays resumable until it is deleted.
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(addr, password string, db int) (*SessionStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &SessionStore{
		client: client,
	}, nil
}

func sessionKey(id uuid.UUID) string {
	return keyPrefix + id.String()
}

func (s *SessionStore) Get(ctx context.Context, id uuid.UUID) (*interview.Session, error) {
	raw, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, interview.NewNotFoundError("session %s not found", id)
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var session interview.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &session, nil
}

func (s *SessionStore) Put(ctx context.Context, session *interview.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(session.Id), raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

func (s *SessionStore) Close() error {
	return s.client.Close()
}
