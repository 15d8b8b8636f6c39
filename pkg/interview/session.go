package interview

import (
	"time"

	"github.com/google/uuid"
)

const (
	NumLevels         = 5
	QuestionsPerLevel = 5
)

// State is the position of a session inside the interview flow.
// It is derived from the session document, never stored, so a reloaded
// session always resumes exactly where it left off.
type State string

const (
	StateAwaitingQuestion      State = "AWAITING_QUESTION"
	StateAwaitingAnswer        State = "AWAITING_ANSWER"
	StateAwaitingBatchFeedback State = "AWAITING_BATCH_FEEDBACK"
	StateLevelSummary          State = "LEVEL_SUMMARY"
	StateFinalSummary          State = "FINAL_SUMMARY"
)

// Difficulty labels, fixed per level number (1..5).
var difficultyByLevel = [NumLevels + 1]string{
	"", "Starter", "Easy", "Medium", "Hard", "Excellent",
}

// DifficultyForLevel returns the fixed difficulty label for a level number.
// Out-of-range numbers return an empty string.
func DifficultyForLevel(levelNumber int) string {
	if levelNumber < 1 || levelNumber > NumLevels {
		return ""
	}
	return difficultyByLevel[levelNumber]
}

// Context is the immutable snapshot of what the candidate is preparing for,
// taken once at session start.
type Context struct {
	Role       string   `json:"role"`
	Company    string   `json:"company"`
	Experience string   `json:"experience"`
	Skills     []string `json:"skills"`
	FocusAreas []string `json:"focus_areas,omitempty"`
}

type Question struct {
	Id   uuid.UUID `json:"id"`
	Text string    `json:"text"`

	// Answer is set exactly once by the candidate. Nil until then.
	Answer *string `json:"answer,omitempty"`

	// Score 1..10, set only by the batch feedback step together with the
	// fields below. 0 means "not scored yet".
	Score          int      `json:"score,omitempty"`
	Feedback       string   `json:"feedback,omitempty"`
	Suggestions    []string `json:"suggestions,omitempty"`
	CorrectAnswer  string   `json:"correct_answer,omitempty"`
	TopicsToRevise []string `json:"topics_to_revise,omitempty"`
}

func (q *Question) Answered() bool {
	return q.Answer != nil
}

func (q *Question) Scored() bool {
	return q.Score > 0
}

type Level struct {
	Number       int         `json:"number"`
	Difficulty   string      `json:"difficulty"`
	Questions    []*Question `json:"questions"`
	IsCompleted  bool        `json:"is_completed"`
	AverageScore float64     `json:"average_score"`
}

// Full reports whether the level holds all of its questions.
func (l *Level) Full() bool {
	return len(l.Questions) == QuestionsPerLevel
}

// AllAnswered reports whether every question currently in the level has an answer.
func (l *Level) AllAnswered() bool {
	for _, q := range l.Questions {
		if !q.Answered() {
			return false
		}
	}
	return true
}

// LastQuestion returns the most recently generated question, or nil for an empty level.
func (l *Level) LastQuestion() *Question {
	if len(l.Questions) == 0 {
		return nil
	}
	return l.Questions[len(l.Questions)-1]
}

// Session is the authoritative record of one 5x5 interview attempt.
// All mutation goes through the transition methods in engine.go.
type Session struct {
	Id           uuid.UUID  `json:"id"`
	OwnerId      uuid.UUID  `json:"owner_id"`
	Context      Context    `json:"context"`
	Levels       []*Level   `json:"levels"`
	CurrentLevel int        `json:"current_level"`
	TotalScore   float64    `json:"total_score"`
	IsCompleted  bool       `json:"is_completed"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// NewSession creates a session in its initial state: level 1 open and empty.
func NewSession(ownerId uuid.UUID, ictx Context) *Session {
	levels := make([]*Level, NumLevels)
	for i := range levels {
		levels[i] = &Level{
			Number:     i + 1,
			Difficulty: DifficultyForLevel(i + 1),
			Questions:  make([]*Question, 0, QuestionsPerLevel),
		}
	}
	return &Session{
		Id:           uuid.New(),
		OwnerId:      ownerId,
		Context:      ictx,
		Levels:       levels,
		CurrentLevel: 1,
		CreatedAt:    time.Now(),
	}
}

// OpenLevel returns the level currently being worked on.
func (s *Session) OpenLevel() *Level {
	return s.Levels[s.CurrentLevel-1]
}

// State derives the current flow position from the document.
func (s *Session) State() State {
	if s.IsCompleted {
		return StateFinalSummary
	}
	level := s.OpenLevel()
	if level.IsCompleted {
		return StateLevelSummary
	}
	if last := level.LastQuestion(); last != nil && !last.Answered() {
		return StateAwaitingAnswer
	}
	if level.Full() {
		// All five answered, none scored yet.
		return StateAwaitingBatchFeedback
	}
	return StateAwaitingQuestion
}

// OpenQuestion returns the question awaiting an answer, or nil if none is open.
func (s *Session) OpenQuestion() *Question {
	if s.IsCompleted {
		return nil
	}
	last := s.OpenLevel().LastQuestion()
	if last == nil || last.Answered() {
		return nil
	}
	return last
}

// QuestionTexts lists every question text generated so far, in order.
// Used to keep the provider from repeating itself.
func (s *Session) QuestionTexts() []string {
	texts := make([]string, 0, NumLevels*QuestionsPerLevel)
	for _, level := range s.Levels {
		for _, q := range level.Questions {
			texts = append(texts, q.Text)
		}
	}
	return texts
}

// FindQuestion locates a question by id anywhere in the session.
func (s *Session) FindQuestion(id uuid.UUID) *Question {
	for _, level := range s.Levels {
		for _, q := range level.Questions {
			if q.Id == id {
				return q
			}
		}
	}
	return nil
}

func (s *Session) touch() {
	now := time.Now()
	s.UpdatedAt = &now
}
