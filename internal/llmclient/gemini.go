package llmclient

import (
	"context"
	"strings"

	genai "google.golang.org/genai"
)

const (
	DefaultGeminiModel = "gemini-2.5-pro"
	// gemini-2.5-pro input window.
	defaultGeminiTokenCap = 1048576
)

// GeminiClient is a thin wrapper around the official genai client.
// It only focuses on the API call itself; logging and pre-flight checks are
// applied via Middleware.
type GeminiClient struct {
	cli      *genai.Client
	model    string
	tokenCap int
}

func NewGeminiClient(ctx context.Context, apiKey, model string, tokenCap int) (*GeminiClient, error) {
	return newGeminiClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}, model, tokenCap)
}

func newGeminiClient(ctx context.Context, cc *genai.ClientConfig, model string, tokenCap int) (*GeminiClient, error) {
	cli, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultGeminiModel
	}
	if tokenCap <= 0 {
		tokenCap = defaultGeminiTokenCap
	}
	return &GeminiClient{cli: cli, model: model, tokenCap: tokenCap}, nil
}

func (g *GeminiClient) Name() string { return "Gemini:" + g.model }
func (g *GeminiClient) Close() error { return nil }
func (g *GeminiClient) CountTokens(text string) int {
	return CountTokens(text)
}
func (g *GeminiClient) TokenCapacity() int { return g.tokenCap }

// GenerateText runs one GenerateContent call at temperature 0 and joins the
// text parts of the first candidate.
func (g *GeminiClient) GenerateText(ctx context.Context, system, prompt string) (string, error) {
	var temperature float32
	cfg := &genai.GenerateContentConfig{Temperature: &temperature}
	if strings.TrimSpace(system) != "" {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: system}}}
	}

	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Role: "user", Parts: []*genai.Part{{Text: prompt}}}},
		cfg,
	)
	if err != nil {
		return "", err
	}
	txt := candidateText(resp)
	if strings.TrimSpace(txt) == "" {
		return "", ErrEmptyResponse
	}
	return txt, nil
}

func candidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	c := resp.Candidates[0]
	if c == nil || c.Content == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range c.Content.Parts {
		if p != nil {
			b.WriteString(p.Text)
		}
	}
	return b.String()
}
