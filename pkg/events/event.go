package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "SESSION_COMPLETED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Event type codes published on the audit bus.
const (
	TypeUserRegistered   = "USER_REGISTERED"
	TypeSessionStarted   = "INTERVIEW_SESSION_STARTED"
	TypeLevelCompleted   = "INTERVIEW_LEVEL_COMPLETED"
	TypeSessionCompleted = "INTERVIEW_SESSION_COMPLETED"
)

func NewUserRegistered(userId, email string) Event {
	return BaseEvent{
		Type:       TypeUserRegistered,
		Data:       map[string]interface{}{"user_id": userId, "email": email},
		OccurredAt: time.Now(),
	}
}

func NewSessionStarted(sessionId, userId, role string) Event {
	return BaseEvent{
		Type: TypeSessionStarted,
		Data: map[string]interface{}{
			"session_id": sessionId,
			"user_id":    userId,
			"role":       role,
		},
		OccurredAt: time.Now(),
	}
}

func NewLevelCompleted(sessionId string, levelNumber int, averageScore float64) Event {
	return BaseEvent{
		Type: TypeLevelCompleted,
		Data: map[string]interface{}{
			"session_id":    sessionId,
			"level":         levelNumber,
			"average_score": averageScore,
		},
		OccurredAt: time.Now(),
	}
}

func NewSessionCompleted(sessionId, userId string, totalScore float64) Event {
	return BaseEvent{
		Type: TypeSessionCompleted,
		Data: map[string]interface{}{
			"session_id":  sessionId,
			"user_id":     userId,
			"total_score": totalScore,
		},
		OccurredAt: time.Now(),
	}
}
