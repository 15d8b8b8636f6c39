package mapper

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"interview-prep-be/internal/model"
	"interview-prep-be/pkg/interview"
)

type InterviewSessionMapper struct{}

func NewInterviewSessionMapper() *InterviewSessionMapper {
	return &InterviewSessionMapper{}
}

func (m *InterviewSessionMapper) ToSession(record *model.InterviewSession) (*interview.Session, error) {
	if record == nil {
		return nil, nil
	}

	var ictx interview.Context
	if err := json.Unmarshal(record.Context, &ictx); err != nil {
		return nil, fmt.Errorf("decode session context: %w", err)
	}

	var levels []*interview.Level
	if err := json.Unmarshal(record.Levels, &levels); err != nil {
		return nil, fmt.Errorf("decode session levels: %w", err)
	}

	var updatedAt *time.Time
	if !record.UpdatedAt.IsZero() {
		t := record.UpdatedAt
		updatedAt = &t
	}

	return &interview.Session{
		Id:           record.Id,
		OwnerId:      record.OwnerId,
		Context:      ictx,
		Levels:       levels,
		CurrentLevel: record.CurrentLevel,
		TotalScore:   record.TotalScore,
		IsCompleted:  record.IsCompleted,
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    updatedAt,
	}, nil
}

func (m *InterviewSessionMapper) ToModel(session *interview.Session) (*model.InterviewSession, error) {
	if session == nil {
		return nil, nil
	}

	ctxJson, err := json.Marshal(session.Context)
	if err != nil {
		return nil, fmt.Errorf("encode session context: %w", err)
	}
	levelsJson, err := json.Marshal(session.Levels)
	if err != nil {
		return nil, fmt.Errorf("encode session levels: %w", err)
	}

	var updatedAt time.Time
	if session.UpdatedAt != nil {
		updatedAt = *session.UpdatedAt
	}

	return &model.InterviewSession{
		Id:           session.Id,
		OwnerId:      session.OwnerId,
		Context:      datatypes.JSON(ctxJson),
		Levels:       datatypes.JSON(levelsJson),
		CurrentLevel: session.CurrentLevel,
		TotalScore:   session.TotalScore,
		IsCompleted:  session.IsCompleted,
		CreatedAt:    session.CreatedAt,
		UpdatedAt:    updatedAt,
	}, nil
}

func (m *InterviewSessionMapper) ToSessions(records []*model.InterviewSession) ([]*interview.Session, error) {
	sessions := make([]*interview.Session, 0, len(records))
	for _, record := range records {
		session, err := m.ToSession(record)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}
