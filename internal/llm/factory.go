package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// NewProvider creates a Provider from configuration, wrapped with
// timeout, usage-tracking, and logging middleware.
func NewProvider(ctx context.Context, cfg Config, log *zap.Logger, tracker *UsageTracker) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Middleware order: caller → logging → usage → timeout → base.
	wrapped := WithTimeout(base, cfg.Timeout)
	wrapped = WithUsageTracking(wrapped, tracker)
	wrapped = WithLogging(wrapped, log)

	return wrapped, nil
}
