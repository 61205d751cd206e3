package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mockmate/mockmate/internal/logger"
)

// logPreviewLimit caps prompt/response previews in debug logs.
const logPreviewLimit = 500

// LoggingProvider is a decorator that logs every LLM request.
type LoggingProvider struct {
	inner Provider
	log   *zap.Logger
}

// WithLogging wraps a Provider with request/response logging.
// A nil logger is replaced with a no-op logger.
func WithLogging(p Provider, log *zap.Logger) Provider {
	if log == nil {
		log = zap.NewNop()
	}
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	l.log.Debug("llm request",
		zap.String("purpose", purpose),
		zap.String("model", l.inner.ModelID()),
		zap.String("request", logger.TruncateForLog(serializeRequest(req), logPreviewLimit)),
	)

	resp, err := l.inner.Generate(ctx, req)
	latency := time.Since(start)

	if err != nil {
		l.log.Warn("llm request failed",
			zap.String("purpose", purpose),
			zap.String("model", l.inner.ModelID()),
			zap.Duration("latency", latency),
			zap.Error(err),
		)
		return resp, err
	}

	l.log.Info("llm request served",
		zap.String("purpose", purpose),
		zap.String("model", resp.Model),
		zap.Duration("latency", latency),
		zap.Int("input_tokens", resp.Usage.InputTokens),
		zap.Int("output_tokens", resp.Usage.OutputTokens),
		zap.String("stop_reason", resp.StopReason),
	)
	l.log.Debug("llm response",
		zap.String("purpose", purpose),
		zap.String("response", logger.TruncateForLog(resp.Text, logPreviewLimit)),
	)

	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		b.WriteString(fmt.Sprintf("[%s]\n", m.Role))
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	return b.String()
}
