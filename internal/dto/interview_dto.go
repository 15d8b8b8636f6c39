package dto

import (
	"time"

	"github.com/google/uuid"
)

// Fields left empty are seeded from the candidate profile, so a candidate
// with a saved profile can start a session with an empty body.
type StartSessionRequest struct {
	Role       string   `json:"role"`
	Company    string   `json:"company"`
	Experience string   `json:"experience"`
	Skills     []string `json:"skills"`
	FocusAreas []string `json:"focus_areas"`
}

type QuestionResponse struct {
	Id         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	Level      int       `json:"level"`
	Difficulty string    `json:"difficulty"`
	Number     int       `json:"number"` // 1..5 within the level
}

type SubmitAnswerRequest struct {
	QuestionId uuid.UUID `json:"question_id" validate:"required"`
	Answer     string    `json:"answer" validate:"required"`
}

type QuestionFeedbackResponse struct {
	QuestionId     uuid.UUID `json:"question_id"`
	Text           string    `json:"text"`
	Answer         string    `json:"answer"`
	Score          int       `json:"score"`
	Feedback       string    `json:"feedback"`
	Suggestions    []string  `json:"suggestions"`
	CorrectAnswer  string    `json:"correct_answer"`
	TopicsToRevise []string  `json:"topics_to_revise"`
}

type LevelSummaryResponse struct {
	Level        int                        `json:"level"`
	Difficulty   string                     `json:"difficulty"`
	AverageScore float64                    `json:"average_score"`
	Questions    []QuestionFeedbackResponse `json:"questions"`
}

type SessionResponse struct {
	Id           uuid.UUID  `json:"id"`
	State        string     `json:"state"`
	CurrentLevel int        `json:"current_level"`
	Difficulty   string     `json:"difficulty"`
	TotalScore   float64    `json:"total_score"`
	IsCompleted  bool       `json:"is_completed"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

type SessionDetailResponse struct {
	SessionResponse
	Role       string                 `json:"role"`
	Company    string                 `json:"company"`
	Experience string                 `json:"experience"`
	Skills     []string               `json:"skills"`
	FocusAreas []string               `json:"focus_areas"`
	Levels     []LevelSummaryResponse `json:"levels"`
}

type AdvanceLevelResponse struct {
	SessionResponse
	// FinalSummary is set only once the last level has been closed.
	FinalSummary *FinalSummaryResponse `json:"final_summary,omitempty"`
}

// SessionCompletedMessage is the internal bus payload emitted when a
// session reaches its final summary.
type SessionCompletedMessage struct {
	SessionId  uuid.UUID `json:"session_id"`
	UserId     uuid.UUID `json:"user_id"`
	TotalScore float64   `json:"total_score"`
}

type FinalSummaryResponse struct {
	TotalScore     float64                `json:"total_score"`
	LevelSummaries []LevelSummaryResponse `json:"level_summaries"`
}
