package figma

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

const DefaultBaseURL = "https://api.figma.com"

// ErrNodeNotFound is returned when the response has no document for the
// requested node id.
var ErrNodeNotFound = errors.New("figma: node not found in response")

// APIError is a non-2xx answer from the Figma REST API. Body holds the
// response body in full; ReadErr is set when it could not be read to the end.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
	ReadErr    error
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("figma: unexpected status %s: %s", e.Status, e.Body)
	if e.ReadErr != nil {
		msg += fmt.Sprintf(" (reading body: %v)", e.ReadErr)
	}
	return msg
}

// Client fetches node subtrees from the Figma REST API.
// See: https://www.figma.com/developers/api#get-file-nodes-endpoint
type Client struct {
	http    *http.Client
	token   string
	baseURL string
	log     *zap.Logger
}

type Option func(*Client)

// WithBaseURL points the client at another host (tests use httptest).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u = strings.TrimRight(strings.TrimSpace(u), "/"); u != "" {
			c.baseURL = u
		}
	}
}

// WithHTTPClient replaces the default client. The default has no timeout of
// its own; requests are bounded by the context passed to FetchNode.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{},
		token:   token,
		baseURL: DefaultBaseURL,
		log:     zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type nodesResponse struct {
	Name  string                  `json:"name"`
	Nodes map[string]*nodeWrapper `json:"nodes"`
}

type nodeWrapper struct {
	Document *Node `json:"document"`
}

// FetchNode returns the document node nodeID of file fileKey.
func (c *Client) FetchNode(ctx context.Context, fileKey, nodeID string) (*Node, error) {
	u := fmt.Sprintf("%s/v1/files/%s/nodes?%s", c.baseURL, url.PathEscape(fileKey), url.Values{"ids": {nodeID}}.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Figma-Token", c.token)
	req.Header.Set("Accept", "application/json")

	c.log.Debug("figma request", zap.String("file_key", fileKey), zap.String("node_id", nodeID))
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("figma: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, readErr := io.ReadAll(resp.Body)
		return nil, &APIError{StatusCode: resp.StatusCode, Status: resp.Status, Body: string(body), ReadErr: readErr}
	}

	var out nodesResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("figma: decode response: %w", err)
	}
	w, ok := out.Nodes[nodeID]
	if !ok || w == nil || w.Document == nil {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, nodeID)
	}
	c.log.Debug("figma node fetched",
		zap.String("file", out.Name),
		zap.String("node_name", w.Document.Name),
		zap.String("node_type", w.Document.Type))
	return w.Document, nil
}
