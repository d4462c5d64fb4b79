package llmclient

import (
	"context"
)

// FakeClient returns a fixed completion and records what it was asked.
// It is a test double for the orchestrator and middleware tests; the CLI
// never constructs one.
type FakeClient struct {
	Reply    string
	Err      error
	TokenCap int

	Calls      int
	LastSystem string
	LastPrompt string
}

func NewFakeClient(reply string) *FakeClient {
	return &FakeClient{Reply: reply, TokenCap: 4096}
}

func (f *FakeClient) Name() string                { return "FakeLLM" }
func (f *FakeClient) Close() error                { return nil }
func (f *FakeClient) CountTokens(text string) int { return CountTokens(text) }
func (f *FakeClient) TokenCapacity() int          { return f.TokenCap }

func (f *FakeClient) GenerateText(_ context.Context, system, prompt string) (string, error) {
	f.Calls++
	f.LastSystem = system
	f.LastPrompt = prompt
	if f.Err != nil {
		return "", f.Err
	}
	if f.Reply == "" {
		return "", ErrEmptyResponse
	}
	return f.Reply, nil
}
