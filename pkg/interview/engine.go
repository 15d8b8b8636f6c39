package interview

import (
	"strings"

	"github.com/google/uuid"
)

// Transition methods. Each validates the current state, applies its change
// completely or not at all, and leaves the document consistent with the
// invariants in session.go. Callers persist the session after a successful
// transition; on error the document is unchanged.

// AttachQuestion appends a freshly generated question to the open level
// (AwaitingQuestion -> AwaitingAnswer). The caller performs the provider
// call first, so a failed generation never touches the session.
func (s *Session) AttachQuestion(text string) (*Question, error) {
	if state := s.State(); state != StateAwaitingQuestion {
		return nil, NewInvalidStateError("cannot attach a question in state %s", state)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, NewValidationError("question text is empty")
	}

	q := &Question{
		Id:   uuid.New(),
		Text: text,
	}
	level := s.OpenLevel()
	level.Questions = append(level.Questions, q)
	s.touch()
	return q, nil
}

// RecordAnswer sets the answer on the open question
// (AwaitingAnswer -> AwaitingQuestion | AwaitingBatchFeedback).
func (s *Session) RecordAnswer(questionId uuid.UUID, answer string) (State, error) {
	if state := s.State(); state != StateAwaitingAnswer {
		return "", NewInvalidStateError("cannot submit an answer in state %s", state)
	}
	if strings.TrimSpace(answer) == "" {
		return "", NewValidationError("answer is empty")
	}

	open := s.OpenQuestion()
	if open == nil {
		return "", NewInvalidStateError("no open question")
	}
	if open.Id != questionId {
		if s.FindQuestion(questionId) == nil {
			return "", NewNotFoundError("question %s not found", questionId)
		}
		return "", NewInvalidStateError("question %s is not the open question", questionId)
	}

	open.Answer = &answer
	s.touch()
	return s.State(), nil
}

// ApplyLevelFeedback commits a full batch of feedback to the open level
// (AwaitingBatchFeedback -> LevelSummary): scores every question, marks the
// level complete, and recomputes the session total. The write is
// all-or-nothing; a bad batch leaves every question unscored.
func (s *Session) ApplyLevelFeedback(items []FeedbackItem) (*Level, error) {
	if state := s.State(); state != StateAwaitingBatchFeedback {
		return nil, NewInvalidStateError("cannot apply feedback in state %s", state)
	}
	level := s.OpenLevel()
	if len(items) != len(level.Questions) {
		return nil, NewFeedbackError("feedback batch size mismatch", nil)
	}
	for _, item := range items {
		if item.Score < 1 || item.Score > 10 {
			return nil, NewFeedbackError("feedback score out of range", nil)
		}
	}

	for i, q := range level.Questions {
		item := items[i]
		q.Score = item.Score
		q.Feedback = item.Feedback
		q.Suggestions = item.Suggestions
		q.CorrectAnswer = item.CorrectAnswer
		q.TopicsToRevise = item.TopicsToRevise
	}
	level.AverageScore = LevelAverage(level.Questions)
	level.IsCompleted = true
	s.TotalScore = SessionTotalScore(s.Levels)
	s.touch()
	return level, nil
}

// Advance moves past a level summary: either opens the next level
// (LevelSummary -> AwaitingQuestion) or, after level 5, completes the
// session (LevelSummary -> FinalSummary).
func (s *Session) Advance() (State, error) {
	if state := s.State(); state != StateLevelSummary {
		return "", NewInvalidStateError("cannot advance in state %s", state)
	}
	if s.CurrentLevel == NumLevels {
		s.IsCompleted = true
	} else {
		s.CurrentLevel++
	}
	s.touch()
	return s.State(), nil
}
