package llmprovider

import (
	"context"
	"strings"

	"interview-prep-be/internal/pkg/logger"
	"interview-prep-be/pkg/interview"
	"interview-prep-be/pkg/llm"
)

// Provider implements interview.QuestionProvider on top of any LLM backend.
// It owns prompt construction and output parsing; the model behind it is
// interchangeable through the llm.LLMProvider contract.
type Provider struct {
	llmProvider llm.LLMProvider
	logger      logger.ILogger
}

var _ interview.QuestionProvider = &Provider{}

func NewProvider(llmProvider llm.LLMProvider, log logger.ILogger) *Provider {
	return &Provider{
		llmProvider: llmProvider,
		logger:      log,
	}
}

func (p *Provider) GenerateQuestion(ctx context.Context, ictx interview.Context, difficulty string, previous []string) (string, error) {
	prompt := buildQuestionPrompt(ictx, difficulty, previous)

	response, err := p.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.7))
	if err != nil {
		p.logger.Error("llmprovider", "Question generation failed", map[string]interface{}{
			"difficulty": difficulty,
			"error":      err.Error(),
		})
		return "", interview.NewGenerationError("question generation failed", err)
	}

	text, err := parseQuestion(response)
	if err != nil {
		p.logger.Warn("llmprovider", "Question output unparseable", map[string]interface{}{
			"error": err.Error(),
		})
		return "", interview.NewGenerationError("question output unparseable", err)
	}

	// The prompt forbids repeats; if the model repeats anyway, surface it
	// as a generation failure so the caller retries instead of storing a
	// duplicate question.
	for _, old := range previous {
		if strings.EqualFold(strings.TrimSpace(old), text) {
			return "", interview.NewGenerationError("provider repeated an earlier question", nil)
		}
	}

	return text, nil
}

func (p *Provider) GenerateBatchFeedback(ctx context.Context, ictx interview.Context, pairs []interview.QuestionAnswer) ([]interview.FeedbackItem, error) {
	prompt := buildFeedbackPrompt(ictx, pairs)

	// Temperature 0 for scoring: the same answers should score the same.
	response, err := p.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.0))
	if err != nil {
		p.logger.Error("llmprovider", "Batch feedback failed", map[string]interface{}{
			"batch_size": len(pairs),
			"error":      err.Error(),
		})
		return nil, interview.NewFeedbackError("batch feedback failed", err)
	}

	items, err := parseFeedbackItems(response, len(pairs))
	if err != nil {
		p.logger.Warn("llmprovider", "Feedback output unparseable", map[string]interface{}{
			"batch_size": len(pairs),
			"error":      err.Error(),
		})
		return nil, interview.NewFeedbackError("feedback output unparseable", err)
	}

	return items, nil
}
