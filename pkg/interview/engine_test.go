package interview

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
)

func newTestSession() *Session {
	return NewSession(uuid.New(), Context{
		Role:       "Backend Engineer",
		Company:    "Acme",
		Experience: "Mid",
		Skills:     []string{"Go", "SQL"},
	})
}

func fullFeedback(score int) []FeedbackItem {
	items := make([]FeedbackItem, QuestionsPerLevel)
	for i := range items {
		items[i] = FeedbackItem{
			Score:          score,
			Feedback:       "solid",
			Suggestions:    []string{"more detail"},
			CorrectAnswer:  "a model answer",
			TopicsToRevise: []string{"indexes"},
		}
	}
	return items
}

// answerLevel drives the open level through 5 question+answer rounds.
func answerLevel(t *testing.T, s *Session) {
	t.Helper()
	for i := 0; i < QuestionsPerLevel; i++ {
		q, err := s.AttachQuestion(fmt.Sprintf("question %d of level %d", i+1, s.CurrentLevel))
		if err != nil {
			t.Fatalf("AttachQuestion: %v", err)
		}
		if _, err := s.RecordAnswer(q.Id, "my answer"); err != nil {
			t.Fatalf("RecordAnswer: %v", err)
		}
	}
}

func TestNewSessionInitialState(t *testing.T) {
	s := newTestSession()

	if s.CurrentLevel != 1 {
		t.Errorf("CurrentLevel = %d, want 1", s.CurrentLevel)
	}
	if got := s.State(); got != StateAwaitingQuestion {
		t.Errorf("State = %s, want %s", got, StateAwaitingQuestion)
	}
	if len(s.Levels) != NumLevels {
		t.Fatalf("len(Levels) = %d, want %d", len(s.Levels), NumLevels)
	}
	if s.OpenLevel().Difficulty != "Starter" {
		t.Errorf("level 1 difficulty = %q, want Starter", s.OpenLevel().Difficulty)
	}
	if len(s.OpenLevel().Questions) != 0 {
		t.Errorf("level 1 should start empty, has %d questions", len(s.OpenLevel().Questions))
	}
	if s.IsCompleted || s.TotalScore != 0 {
		t.Error("new session must be incomplete with zero total score")
	}
}

func TestDifficultyForLevel(t *testing.T) {
	want := map[int]string{1: "Starter", 2: "Easy", 3: "Medium", 4: "Hard", 5: "Excellent", 0: "", 6: ""}
	for level, label := range want {
		if got := DifficultyForLevel(level); got != label {
			t.Errorf("DifficultyForLevel(%d) = %q, want %q", level, got, label)
		}
	}
}

func TestAttachAndAnswerCycle(t *testing.T) {
	s := newTestSession()

	q, err := s.AttachQuestion("What is a goroutine?")
	if err != nil {
		t.Fatalf("AttachQuestion: %v", err)
	}
	if got := s.State(); got != StateAwaitingAnswer {
		t.Fatalf("State after attach = %s, want %s", got, StateAwaitingAnswer)
	}

	// A second question cannot open while one is unanswered.
	if _, err := s.AttachQuestion("another"); !IsKind(err, KindInvalidState) {
		t.Errorf("AttachQuestion while awaiting answer: err = %v, want INVALID_STATE", err)
	}

	state, err := s.RecordAnswer(q.Id, "a lightweight thread")
	if err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	if state != StateAwaitingQuestion {
		t.Errorf("state after first answer = %s, want %s", state, StateAwaitingQuestion)
	}
}

func TestRecordAnswerValidation(t *testing.T) {
	s := newTestSession()
	q, _ := s.AttachQuestion("q1")

	if _, err := s.RecordAnswer(q.Id, "   "); !IsKind(err, KindValidation) {
		t.Errorf("empty answer: err = %v, want VALIDATION", err)
	}
	if _, err := s.RecordAnswer(uuid.New(), "answer"); !IsKind(err, KindNotFound) {
		t.Errorf("unknown question id: err = %v, want NOT_FOUND", err)
	}

	if _, err := s.RecordAnswer(q.Id, "real answer"); err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	// Answers are set exactly once.
	if _, err := s.RecordAnswer(q.Id, "second answer"); !IsKind(err, KindInvalidState) {
		t.Errorf("double answer: err = %v, want INVALID_STATE", err)
	}
}

func TestFifthAnswerTriggersBatchFeedbackState(t *testing.T) {
	s := newTestSession()
	answerLevel(t, s)

	if got := s.State(); got != StateAwaitingBatchFeedback {
		t.Fatalf("State after 5 answers = %s, want %s", got, StateAwaitingBatchFeedback)
	}
	// No more questions fit in the level.
	if _, err := s.AttachQuestion("sixth"); !IsKind(err, KindInvalidState) {
		t.Errorf("sixth question: err = %v, want INVALID_STATE", err)
	}
	if got := len(s.OpenLevel().Questions); got != QuestionsPerLevel {
		t.Errorf("level size = %d, want %d", got, QuestionsPerLevel)
	}
}

func TestApplyLevelFeedback(t *testing.T) {
	s := newTestSession()
	answerLevel(t, s)

	level, err := s.ApplyLevelFeedback(fullFeedback(8))
	if err != nil {
		t.Fatalf("ApplyLevelFeedback: %v", err)
	}

	if !level.IsCompleted {
		t.Error("level not marked completed")
	}
	if level.AverageScore != 8 {
		t.Errorf("AverageScore = %v, want 8", level.AverageScore)
	}
	if s.TotalScore != 80 {
		t.Errorf("TotalScore = %v, want 80", s.TotalScore)
	}
	if got := s.State(); got != StateLevelSummary {
		t.Errorf("State = %s, want %s", got, StateLevelSummary)
	}
	for _, q := range level.Questions {
		if !q.Scored() || q.Feedback == "" {
			t.Errorf("question %s missing score or feedback", q.Id)
		}
	}
}

func TestApplyLevelFeedbackAtomicity(t *testing.T) {
	s := newTestSession()
	answerLevel(t, s)

	// Short batch must be rejected without touching any question.
	short := fullFeedback(8)[:3]
	if _, err := s.ApplyLevelFeedback(short); !IsKind(err, KindFeedback) {
		t.Fatalf("short batch: err = %v, want FEEDBACK", err)
	}

	for _, q := range s.OpenLevel().Questions {
		if q.Scored() {
			t.Errorf("question %s has a score after a failed batch", q.Id)
		}
	}
	if s.OpenLevel().IsCompleted {
		t.Error("level marked completed after a failed batch")
	}
	if got := s.State(); got != StateAwaitingBatchFeedback {
		t.Errorf("State = %s, want %s (retryable)", got, StateAwaitingBatchFeedback)
	}

	// The retry from the same state succeeds.
	if _, err := s.ApplyLevelFeedback(fullFeedback(6)); err != nil {
		t.Fatalf("retry ApplyLevelFeedback: %v", err)
	}
}

func TestApplyLevelFeedbackRejectsOutOfRangeScores(t *testing.T) {
	s := newTestSession()
	answerLevel(t, s)

	bad := fullFeedback(8)
	bad[2].Score = 0
	if _, err := s.ApplyLevelFeedback(bad); !IsKind(err, KindFeedback) {
		t.Errorf("score 0: err = %v, want FEEDBACK", err)
	}

	bad = fullFeedback(8)
	bad[4].Score = 11
	if _, err := s.ApplyLevelFeedback(bad); !IsKind(err, KindFeedback) {
		t.Errorf("score 11: err = %v, want FEEDBACK", err)
	}
}

func TestAdvanceOpensNextLevel(t *testing.T) {
	s := newTestSession()
	answerLevel(t, s)
	if _, err := s.ApplyLevelFeedback(fullFeedback(7)); err != nil {
		t.Fatalf("ApplyLevelFeedback: %v", err)
	}

	state, err := s.Advance()
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if state != StateAwaitingQuestion {
		t.Errorf("state after advance = %s, want %s", state, StateAwaitingQuestion)
	}
	if s.CurrentLevel != 2 {
		t.Errorf("CurrentLevel = %d, want 2", s.CurrentLevel)
	}
	if s.OpenLevel().Difficulty != "Easy" {
		t.Errorf("level 2 difficulty = %q, want Easy", s.OpenLevel().Difficulty)
	}
	if len(s.OpenLevel().Questions) != 0 {
		t.Error("new level must open empty")
	}
}

func TestFullSessionLifecycle(t *testing.T) {
	s := newTestSession()
	scores := []int{8, 6, 10, 4, 2}

	for i := 0; i < NumLevels; i++ {
		answerLevel(t, s)
		if _, err := s.ApplyLevelFeedback(fullFeedback(scores[i])); err != nil {
			t.Fatalf("level %d feedback: %v", i+1, err)
		}
		if _, err := s.Advance(); err != nil {
			t.Fatalf("level %d advance: %v", i+1, err)
		}
	}

	if !s.IsCompleted {
		t.Fatal("session not completed after level 5 advance")
	}
	if got := s.State(); got != StateFinalSummary {
		t.Errorf("State = %s, want %s", got, StateFinalSummary)
	}
	if s.TotalScore != 60 {
		t.Errorf("TotalScore = %v, want 60", s.TotalScore)
	}
	if s.CurrentLevel != NumLevels {
		t.Errorf("CurrentLevel = %d, want %d", s.CurrentLevel, NumLevels)
	}

	// Terminal state: nothing else is permitted.
	if _, err := s.AttachQuestion("more"); !IsKind(err, KindInvalidState) {
		t.Errorf("AttachQuestion on completed session: err = %v, want INVALID_STATE", err)
	}
	if _, err := s.Advance(); !IsKind(err, KindInvalidState) {
		t.Errorf("Advance on completed session: err = %v, want INVALID_STATE", err)
	}
}

func TestCurrentLevelNeverDecreases(t *testing.T) {
	s := newTestSession()
	seen := s.CurrentLevel

	for i := 0; i < NumLevels; i++ {
		answerLevel(t, s)
		if _, err := s.ApplyLevelFeedback(fullFeedback(5)); err != nil {
			t.Fatalf("feedback: %v", err)
		}
		if _, err := s.Advance(); err != nil {
			t.Fatalf("advance: %v", err)
		}
		if s.CurrentLevel < seen {
			t.Fatalf("CurrentLevel decreased from %d to %d", seen, s.CurrentLevel)
		}
		seen = s.CurrentLevel
	}
}

func TestResumeMidLevel(t *testing.T) {
	// Three answered questions, then the session is persisted and reloaded.
	s := newTestSession()
	for i := 0; i < 3; i++ {
		q, _ := s.AttachQuestion(fmt.Sprintf("question %d", i+1))
		if _, err := s.RecordAnswer(q.Id, "answer"); err != nil {
			t.Fatalf("RecordAnswer: %v", err)
		}
	}

	// State derivation is pure, so a reload lands on question 4 prompting.
	if got := s.State(); got != StateAwaitingQuestion {
		t.Fatalf("resumed State = %s, want %s", got, StateAwaitingQuestion)
	}
	if got := len(s.OpenLevel().Questions); got != 3 {
		t.Errorf("questions preserved = %d, want 3", got)
	}

	// With a pending unanswered question, the resume point is that question.
	pending, _ := s.AttachQuestion("question 4")
	if got := s.State(); got != StateAwaitingAnswer {
		t.Fatalf("State = %s, want %s", got, StateAwaitingAnswer)
	}
	if open := s.OpenQuestion(); open == nil || open.Id != pending.Id {
		t.Error("resume must reuse the pending question, not regenerate it")
	}
}

func TestQuestionTexts(t *testing.T) {
	s := newTestSession()
	q1, _ := s.AttachQuestion("first")
	s.RecordAnswer(q1.Id, "a")
	s.AttachQuestion("second")

	texts := s.QuestionTexts()
	if len(texts) != 2 || texts[0] != "first" || texts[1] != "second" {
		t.Errorf("QuestionTexts = %v", texts)
	}
}
