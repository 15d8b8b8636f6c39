package llmprovider

import (
	"testing"
)

func TestParseQuestion(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
		wantErr  bool
	}{
		{
			name:     "clean JSON",
			response: `{"question": "What is a goroutine?"}`,
			want:     "What is a goroutine?",
		},
		{
			name:     "markdown fenced",
			response: "```json\n{\"question\": \"Explain SQL indexes.\"}\n```",
			want:     "Explain SQL indexes.",
		},
		{
			name:     "surrounded by prose",
			response: "Sure, here is the question:\n{\"question\": \"What is CAP?\"}\nGood luck!",
			want:     "What is CAP?",
		},
		{
			name:     "no JSON at all",
			response: "What is a goroutine?",
			wantErr:  true,
		},
		{
			name:     "empty question field",
			response: `{"question": "  "}`,
			wantErr:  true,
		},
		{
			name:     "broken JSON",
			response: `{"question": "unterminated`,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseQuestion(tt.response)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseQuestion(%q) succeeded, want error", tt.response)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseQuestion: %v", err)
			}
			if got != tt.want {
				t.Errorf("parseQuestion = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseFeedbackItems(t *testing.T) {
	valid := `[
		{"score": 8, "feedback": "good", "suggestions": ["s1"], "correct_answer": "ca", "topics_to_revise": ["t1"]},
		{"score": 6, "feedback": "ok", "suggestions": [], "correct_answer": "ca", "topics_to_revise": []}
	]`

	items, err := parseFeedbackItems(valid, 2)
	if err != nil {
		t.Fatalf("parseFeedbackItems: %v", err)
	}
	if items[0].Score != 8 || items[1].Score != 6 {
		t.Errorf("scores = %d, %d, want 8, 6", items[0].Score, items[1].Score)
	}
	if items[0].Feedback != "good" {
		t.Errorf("feedback = %q", items[0].Feedback)
	}
}

func TestParseFeedbackItemsClampsScores(t *testing.T) {
	response := `[
		{"score": 0, "feedback": "f"},
		{"score": 11, "feedback": "f"},
		{"score": -3, "feedback": "f"}
	]`

	items, err := parseFeedbackItems(response, 3)
	if err != nil {
		t.Fatalf("parseFeedbackItems: %v", err)
	}
	if items[0].Score != 1 {
		t.Errorf("score 0 clamped to %d, want 1", items[0].Score)
	}
	if items[1].Score != 10 {
		t.Errorf("score 11 clamped to %d, want 10", items[1].Score)
	}
	if items[2].Score != 1 {
		t.Errorf("score -3 clamped to %d, want 1", items[2].Score)
	}
}

func TestParseFeedbackItemsLengthMismatch(t *testing.T) {
	response := `[{"score": 5, "feedback": "f"}]`

	if _, err := parseFeedbackItems(response, 5); err == nil {
		t.Error("length mismatch must fail, partial batches are never applied")
	}
}

func TestParseFeedbackItemsNilSlicesNormalized(t *testing.T) {
	response := `[{"score": 5, "feedback": "f"}]`

	items, err := parseFeedbackItems(response, 1)
	if err != nil {
		t.Fatalf("parseFeedbackItems: %v", err)
	}
	if items[0].Suggestions == nil || items[0].TopicsToRevise == nil {
		t.Error("list fields must be empty slices, not nil")
	}
}

func TestParseFeedbackItemsMalformed(t *testing.T) {
	for _, response := range []string{
		"no json here",
		`{"score": 5}`,
		`[{"score": `,
	} {
		if _, err := parseFeedbackItems(response, 1); err == nil {
			t.Errorf("parseFeedbackItems(%q) succeeded, want error", response)
		}
	}
}
