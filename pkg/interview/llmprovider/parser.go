package llmprovider

import (
	"encoding/json"
	"fmt"
	"strings"

	"interview-prep-be/pkg/interview"
)

type questionPayload struct {
	Question string `json:"question"`
}

// parseQuestion extracts the question text from raw model output.
func parseQuestion(response string) (string, error) {
	jsonContent := extractJSONObject(response)
	if jsonContent == "" {
		return "", fmt.Errorf("no JSON object found in response")
	}

	var payload questionPayload
	if err := json.Unmarshal([]byte(jsonContent), &payload); err != nil {
		return "", fmt.Errorf("JSON unmarshal failed: %w", err)
	}

	text := strings.TrimSpace(payload.Question)
	if text == "" {
		return "", fmt.Errorf("response contains no question text")
	}
	return text, nil
}

// parseFeedbackItems extracts the feedback array and normalizes it: scores
// are clamped into [1,10] and list fields are never nil. A wrong item count
// against want is an error; partial batches are never returned.
func parseFeedbackItems(response string, want int) ([]interview.FeedbackItem, error) {
	jsonContent := extractJSONArray(response)
	if jsonContent == "" {
		return nil, fmt.Errorf("no JSON array found in response")
	}

	var items []interview.FeedbackItem
	if err := json.Unmarshal([]byte(jsonContent), &items); err != nil {
		return nil, fmt.Errorf("JSON unmarshal failed: %w", err)
	}

	if len(items) != want {
		return nil, fmt.Errorf("expected %d feedback items, got %d", want, len(items))
	}

	for i := range items {
		items[i].Score = clampScore(items[i].Score)
		if items[i].Suggestions == nil {
			items[i].Suggestions = []string{}
		}
		if items[i].TopicsToRevise == nil {
			items[i].TopicsToRevise = []string{}
		}
	}
	return items, nil
}

func clampScore(score int) int {
	if score < 1 {
		return 1
	}
	if score > 10 {
		return 10
	}
	return score
}

// extractJSONObject returns the outermost {...} span of the response.
// Models wrap JSON in prose or markdown fences often enough that a plain
// Unmarshal of the whole response is not workable.
func extractJSONObject(response string) string {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")

	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return ""
	}
	return response[startIdx : endIdx+1]
}

// extractJSONArray returns the outermost [...] span of the response.
func extractJSONArray(response string) string {
	startIdx := strings.Index(response, "[")
	endIdx := strings.LastIndex(response, "]")

	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return ""
	}
	return response[startIdx : endIdx+1]
}
