package llmclient

import "context"

// TextClient is a text-completion model.
type TextClient interface {
	Name() string
	Close() error
	CountTokens(text string) int
	TokenCapacity() int
	// GenerateText sends system and prompt in one call with deterministic
	// sampling and returns the completion text.
	GenerateText(ctx context.Context, system, prompt string) (string, error)
}
