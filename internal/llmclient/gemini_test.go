package llmclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	genai "google.golang.org/genai"
)

func TestCandidateText(t *testing.T) {
	assert.Equal(t, "", candidateText(nil))
	assert.Equal(t, "", candidateText(&genai.GenerateContentResponse{}))
	assert.Equal(t, "", candidateText(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{}},
	}))

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: "# Report\n"}, nil, {Text: "- ok"}}}},
			{Content: &genai.Content{Parts: []*genai.Part{{Text: "ignored"}}}},
		},
	}
	assert.Equal(t, "# Report\n- ok", candidateText(resp))
}

type wireContent struct {
	Role  string `json:"role"`
	Parts []struct {
		Text string `json:"text"`
	} `json:"parts"`
}

type geminiRequest struct {
	Contents          []wireContent              `json:"contents"`
	GenerationConfig  map[string]json.RawMessage `json:"generationConfig"`
	SystemInstruction *wireContent               `json:"systemInstruction"`
}

// geminiServer answers generateContent with reply and records the last
// request path and body.
func geminiServer(t *testing.T, reply string) (*httptest.Server, *string, *[]byte) {
	t.Helper()
	var path string
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		b, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		body = b
		w.Header().Set("Content-Type", "application/json")
		resp := map[string]any{
			"candidates": []any{map[string]any{
				"content": map[string]any{"role": "model", "parts": []any{map[string]any{"text": reply}}},
			}},
		}
		assert.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(srv.Close)
	return srv, &path, &body
}

func newTestGemini(t *testing.T, srv *httptest.Server) *GeminiClient {
	t.Helper()
	g, err := newGeminiClient(context.Background(), &genai.ClientConfig{
		APIKey:      "test-key",
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: srv.URL + "/"},
	}, "", 0)
	require.NoError(t, err)
	return g
}

func TestGeminiGenerateText_Request(t *testing.T) {
	srv, path, body := geminiServer(t, "# Report")
	g := newTestGemini(t, srv)

	out, err := g.GenerateText(context.Background(), "be an expert", "analyse this")
	require.NoError(t, err)
	assert.Equal(t, "# Report", out)
	assert.True(t, strings.HasSuffix(*path, "models/"+DefaultGeminiModel+":generateContent"), *path)

	var req geminiRequest
	require.NoError(t, json.Unmarshal(*body, &req))
	require.Contains(t, req.GenerationConfig, "temperature")
	assert.JSONEq(t, `0`, string(req.GenerationConfig["temperature"]))

	require.NotNil(t, req.SystemInstruction)
	require.Len(t, req.SystemInstruction.Parts, 1)
	assert.Equal(t, "be an expert", req.SystemInstruction.Parts[0].Text)

	require.Len(t, req.Contents, 1)
	assert.Equal(t, "user", req.Contents[0].Role)
	require.Len(t, req.Contents[0].Parts, 1)
	assert.Equal(t, "analyse this", req.Contents[0].Parts[0].Text)
}

func TestGeminiGenerateText_NoSystemInstruction(t *testing.T) {
	srv, _, body := geminiServer(t, "ok")
	g := newTestGemini(t, srv)

	_, err := g.GenerateText(context.Background(), "  ", "p")
	require.NoError(t, err)

	var req geminiRequest
	require.NoError(t, json.Unmarshal(*body, &req))
	assert.Nil(t, req.SystemInstruction)
	assert.JSONEq(t, `0`, string(req.GenerationConfig["temperature"]))
}

func TestGeminiGenerateText_BlankReply(t *testing.T) {
	srv, _, _ := geminiServer(t, " \n ")
	g := newTestGemini(t, srv)

	_, err := g.GenerateText(context.Background(), "s", "p")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestGeminiDefaults(t *testing.T) {
	srv, _, _ := geminiServer(t, "ok")
	g := newTestGemini(t, srv)
	assert.Equal(t, "Gemini:"+DefaultGeminiModel, g.Name())
	assert.Equal(t, defaultGeminiTokenCap, g.TokenCapacity())
}
