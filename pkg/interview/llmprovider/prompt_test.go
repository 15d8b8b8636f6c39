package llmprovider

import (
	"strings"
	"testing"

	"interview-prep-be/pkg/interview"
)

var testCtx = interview.Context{
	Role:       "Backend Engineer",
	Company:    "Acme",
	Experience: "Mid",
	Skills:     []string{"Go", "SQL"},
	FocusAreas: []string{"system design"},
}

func TestBuildQuestionPrompt(t *testing.T) {
	prompt := buildQuestionPrompt(testCtx, "Medium", []string{"What is a goroutine?", "Explain indexes."})

	for _, want := range []string{
		"Backend Engineer",
		"Acme",
		"Go, SQL",
		"system design",
		"'Medium' difficulty",
		"What is a goroutine?",
		"Explain indexes.",
		"\"question\"",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildQuestionPromptNoPrevious(t *testing.T) {
	prompt := buildQuestionPrompt(testCtx, "Starter", nil)

	if strings.Contains(prompt, "<already_asked>") {
		t.Error("already_asked block must be omitted for the first question")
	}
}

func TestBuildFeedbackPrompt(t *testing.T) {
	pairs := []interview.QuestionAnswer{
		{Question: "Q one", Answer: "A one"},
		{Question: "Q two", Answer: "A two"},
	}
	prompt := buildFeedbackPrompt(testCtx, pairs)

	for _, want := range []string{
		"Q one", "A one", "Q two", "A two",
		"exactly 2 objects",
		"\"score\"",
		"\"topics_to_revise\"",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
