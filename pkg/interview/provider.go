package interview

import "context"

// QuestionAnswer pairs one question with the candidate's answer for scoring.
type QuestionAnswer struct {
	Question string
	Answer   string
}

// FeedbackItem is the scored result for a single question. Scores are
// always inside [1,10]; implementations must clamp before returning.
type FeedbackItem struct {
	Score          int      `json:"score"`
	Feedback       string   `json:"feedback"`
	Suggestions    []string `json:"suggestions"`
	CorrectAnswer  string   `json:"correct_answer"`
	TopicsToRevise []string `json:"topics_to_revise"`
}

// QuestionProvider is the external question-generation capability.
// The engine owns sequencing and state; providers own content. Both calls
// are pure request/response and may be retried freely after a failure.
type QuestionProvider interface {
	// GenerateQuestion returns one new question for the given difficulty,
	// avoiding every text in previous. Fails with a GENERATION error on
	// provider failure or unusable output.
	GenerateQuestion(ctx context.Context, ictx Context, difficulty string, previous []string) (string, error)

	// GenerateBatchFeedback scores a full level's answers in one call and
	// returns exactly one item per pair, in input order. Fails with a
	// FEEDBACK error on provider failure, malformed output, or a length
	// mismatch; callers apply results all-or-nothing.
	GenerateBatchFeedback(ctx context.Context, ictx Context, pairs []QuestionAnswer) ([]FeedbackItem, error)
}
