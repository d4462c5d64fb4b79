package llmclient

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Middleware decorates a TextClient to inject cross-cutting concerns.
type Middleware func(TextClient) TextClient

// Wrap applies middlewares in left-to-right order.
// Example: Wrap(inner, A, B) => A(B(inner))
func Wrap(inner TextClient, mws ...Middleware) TextClient {
	out := inner
	for i := len(mws) - 1; i >= 0; i-- {
		out = mws[i](out)
	}
	return out
}

// passthrough forwards everything except GenerateText.
type passthrough struct{ next TextClient }

func (p passthrough) Name() string                { return p.next.Name() }
func (p passthrough) Close() error                { return p.next.Close() }
func (p passthrough) CountTokens(text string) int { return p.next.CountTokens(text) }
func (p passthrough) TokenCapacity() int          { return p.next.TokenCapacity() }

// -------- Logging --------

// WithLogging logs request size, latency and errors. A nil logger disables it.
func WithLogging(logger *zap.Logger) Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next TextClient) TextClient {
		return &logging{passthrough: passthrough{next}, log: logger}
	}
}

type logging struct {
	passthrough
	log *zap.Logger
}

func (l *logging) GenerateText(ctx context.Context, system, prompt string) (string, error) {
	start := time.Now()
	l.log.Info("llm request",
		zap.String("model", l.next.Name()),
		zap.Int("bytes", len(system)+len(prompt)))
	out, err := l.next.GenerateText(ctx, system, prompt)
	if err != nil {
		l.log.Error("llm error", zap.String("model", l.next.Name()), zap.Duration("elapsed", time.Since(start)), zap.Error(err))
		return out, err
	}
	l.log.Info("llm response",
		zap.String("model", l.next.Name()),
		zap.Int("bytes", len(out)),
		zap.Duration("elapsed", time.Since(start)))
	return out, nil
}

// -------- Token budget --------

// WithTokenBudgetWarning estimates the prompt size before each call and logs
// a warning when it exceeds the client's token capacity. The call is always
// made; the provider decides whether the prompt is too large.
func WithTokenBudgetWarning(logger *zap.Logger) Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next TextClient) TextClient {
		return &tokenBudget{passthrough: passthrough{next}, log: logger}
	}
}

type tokenBudget struct {
	passthrough
	log *zap.Logger
}

func (b *tokenBudget) GenerateText(ctx context.Context, system, prompt string) (string, error) {
	est := b.next.CountTokens(system) + b.next.CountTokens(prompt)
	if limit := b.next.TokenCapacity(); limit > 0 && est > limit {
		b.log.Warn("prompt may exceed the model input budget; analyse a smaller frame if the call fails",
			zap.Int("estimated_tokens", est),
			zap.Int("token_capacity", limit))
	}
	return b.next.GenerateText(ctx, system, prompt)
}
