package gemini

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fwojciec/chatbot"
	"google.golang.org/genai"
)

// Interface compliance check.
var _ chatbot.Generator = (*Client)(nil)

// Client implements [chatbot.Generator] for the Google Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

type config struct {
	model      string
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// Option configures a [Client].
type Option func(*config)

// WithModel sets the model ID. Default is gemini-2.0-flash.
func WithModel(model string) Option {
	return func(c *config) {
		if model != "" {
			c.model = model
		}
	}
}

// WithBaseURL sets the API base URL. Useful for testing with httptest.
func WithBaseURL(url string) Option {
	return func(c *config) { c.baseURL = url }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *config) { c.httpClient = hc }
}

// WithTimeout bounds each request end to end. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *config) { c.timeout = d }
}

// New creates a new Gemini [Client] with the given API key and options.
func New(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	cfg := config{model: defaultModel}
	for _, o := range opts {
		o(&cfg)
	}

	hc := cfg.httpClient
	if cfg.timeout > 0 {
		if hc == nil {
			hc = &http.Client{}
		} else {
			cp := *hc
			hc = &cp
		}
		hc.Timeout = cfg.timeout
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: hc,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    cfg.baseURL,
			APIVersion: apiVersion,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	return &Client{client: gc, model: cfg.model}, nil
}

// Model returns the model ID requests are sent to.
func (c *Client) Model() string { return c.model }

// Generate sends prompt as the sole content of a generateContent request and
// returns the first candidate's first text part. A reply without that text
// yields an error wrapping [chatbot.ErrNoCandidate].
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, NewContents(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	text, err := FirstText(resp)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	return text, nil
}

// NewContents builds the request contents for a single prompt.
// Exported for testing.
func NewContents(prompt string) []*genai.Content {
	return []*genai.Content{{
		Parts: []*genai.Part{{Text: prompt}},
	}}
}

// FirstText returns candidates[0].content.parts[0].text, or
// [chatbot.ErrNoCandidate] when any link in that chain is missing or the
// text is empty. Exported for testing.
func FirstText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", chatbot.ErrNoCandidate
	}
	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil || len(cand.Content.Parts) == 0 {
		return "", chatbot.ErrNoCandidate
	}
	part := cand.Content.Parts[0]
	if part == nil || part.Text == "" {
		return "", chatbot.ErrNoCandidate
	}
	return part.Text, nil
}
