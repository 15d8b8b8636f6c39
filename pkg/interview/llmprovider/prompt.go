package llmprovider

import (
	"fmt"
	"strings"

	"interview-prep-be/pkg/interview"
)

// buildQuestionPrompt asks for exactly one interview question at the target
// difficulty, steering the model away from everything already asked.
func buildQuestionPrompt(ictx interview.Context, difficulty string, previous []string) string {
	var prompt strings.Builder

	prompt.WriteString("<candidate_profile>\n")
	prompt.WriteString(fmt.Sprintf("Target role: %s\n", ictx.Role))
	prompt.WriteString(fmt.Sprintf("Target company: %s\n", ictx.Company))
	prompt.WriteString(fmt.Sprintf("Experience level: %s\n", ictx.Experience))
	prompt.WriteString(fmt.Sprintf("Skills: %s\n", strings.Join(ictx.Skills, ", ")))
	if len(ictx.FocusAreas) > 0 {
		prompt.WriteString(fmt.Sprintf("Focus areas: %s\n", strings.Join(ictx.FocusAreas, ", ")))
	}
	prompt.WriteString("</candidate_profile>\n\n")

	prompt.WriteString("<task>\n")
	prompt.WriteString("You are an experienced interviewer preparing this candidate for a real interview.\n")
	prompt.WriteString(fmt.Sprintf("Generate exactly ONE interview question at the '%s' difficulty level.\n", difficulty))
	prompt.WriteString("</task>\n\n")

	if len(previous) > 0 {
		prompt.WriteString("<already_asked>\n")
		prompt.WriteString("These questions were already asked in this session. Do NOT repeat or rephrase any of them:\n")
		for i, text := range previous {
			prompt.WriteString(fmt.Sprintf("%d. %s\n", i+1, text))
		}
		prompt.WriteString("</already_asked>\n\n")
	}

	prompt.WriteString("<guidelines>\n")
	prompt.WriteString("1. The question must match the candidate's target role and skills.\n")
	prompt.WriteString("2. The question must match the requested difficulty level.\n")
	prompt.WriteString("3. Ask something answerable in a few paragraphs, not a whole whiteboard session.\n")
	prompt.WriteString("4. Never repeat a question from the already_asked list.\n")
	prompt.WriteString("</guidelines>\n\n")

	prompt.WriteString("<output_format>\n")
	prompt.WriteString("Respond with ONLY this JSON, no markdown, no commentary:\n")
	prompt.WriteString("{\n")
	prompt.WriteString("  \"question\": \"the interview question text\"\n")
	prompt.WriteString("}\n")
	prompt.WriteString("</output_format>")

	return prompt.String()
}

// buildFeedbackPrompt submits a full level's answers in one batch so the
// model scores them against each other, one result object per pair.
func buildFeedbackPrompt(ictx interview.Context, pairs []interview.QuestionAnswer) string {
	var prompt strings.Builder

	prompt.WriteString("<candidate_profile>\n")
	prompt.WriteString(fmt.Sprintf("Target role: %s\n", ictx.Role))
	prompt.WriteString(fmt.Sprintf("Target company: %s\n", ictx.Company))
	prompt.WriteString(fmt.Sprintf("Experience level: %s\n", ictx.Experience))
	prompt.WriteString("</candidate_profile>\n\n")

	prompt.WriteString("<answers>\n")
	for i, pair := range pairs {
		prompt.WriteString(fmt.Sprintf("--- QUESTION %d ---\n%s\n", i+1, pair.Question))
		prompt.WriteString(fmt.Sprintf("--- ANSWER %d ---\n%s\n\n", i+1, pair.Answer))
	}
	prompt.WriteString("</answers>\n\n")

	prompt.WriteString("<task>\n")
	prompt.WriteString("You are an experienced interviewer reviewing a full round of answers.\n")
	prompt.WriteString(fmt.Sprintf("Evaluate ALL %d answers. Seeing the whole round lets you judge consistency across answers.\n", len(pairs)))
	prompt.WriteString("</task>\n\n")

	prompt.WriteString("<guidelines>\n")
	prompt.WriteString("1. Score each answer from 1 (poor) to 10 (excellent) for correctness, depth and clarity.\n")
	prompt.WriteString("2. Feedback must be specific to the answer, not generic encouragement.\n")
	prompt.WriteString("3. suggestions are concrete ways to improve this particular answer.\n")
	prompt.WriteString("4. correct_answer is a model answer an interviewer would accept.\n")
	prompt.WriteString("5. topics_to_revise are study topics exposed as weak by this answer.\n")
	prompt.WriteString("</guidelines>\n\n")

	prompt.WriteString("<output_format>\n")
	prompt.WriteString(fmt.Sprintf("Respond with ONLY a JSON array of exactly %d objects, in question order, no markdown, no commentary:\n", len(pairs)))
	prompt.WriteString("[\n")
	prompt.WriteString("  {\n")
	prompt.WriteString("    \"score\": 7,\n")
	prompt.WriteString("    \"feedback\": \"what was good and what was missing\",\n")
	prompt.WriteString("    \"suggestions\": [\"improvement 1\", \"improvement 2\"],\n")
	prompt.WriteString("    \"correct_answer\": \"a model answer\",\n")
	prompt.WriteString("    \"topics_to_revise\": [\"topic 1\", \"topic 2\"]\n")
	prompt.WriteString("  }\n")
	prompt.WriteString("]\n")
	prompt.WriteString("</output_format>")

	return prompt.String()
}
