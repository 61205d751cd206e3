// Package evaluate scores interview answers through an LLM provider.
package evaluate

import (
	"context"

	"github.com/mockmate/mockmate/internal/interview"
	"github.com/mockmate/mockmate/internal/llm"
)

// FallbackFeedback is returned whenever the model call fails or yields
// no usable text. The degrade is silent: callers cannot distinguish it
// from genuine model output, and no error is surfaced.
const FallbackFeedback = "Score: 7/10\nGood answer! Consider adding a bit more detail about your specific experiences."

// Config holds evaluation settings.
type Config struct {
	// MaxTokens caps the feedback length. The requested format is one
	// score line plus 2-3 sentences, so the default is generous.
	MaxTokens int

	// Temperature for feedback generation. Zero leaves the sampling
	// temperature at the model default.
	Temperature float64
}

// DefaultConfig returns sensible defaults for answer evaluation.
func DefaultConfig() Config {
	return Config{
		MaxTokens: 512,
	}
}

// Service evaluates interview answers.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an evaluation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Evaluate returns feedback text for an answer to a question. It never
// returns an error: any failure (transport, quota, credential, empty
// response) yields FallbackFeedback. mode is part of the evaluation
// contract but the prompt does not embed it.
func (s *Service) Evaluate(ctx context.Context, answer, question string, mode interview.Mode) string {
	ctx = llm.WithPurpose(ctx, llm.PurposeEvaluate)

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildEvaluationPrompt(question, answer)},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil || resp.Text == "" {
		return FallbackFeedback
	}

	return resp.Text
}
