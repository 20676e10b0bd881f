// Package gemini generates completions with the Gemini API.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/ashureev/mood-sense/internal/llm"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Client wraps a genai client.
type Client struct {
	client *genai.Client
}

// NewClient creates a Client for the Gemini Developer API.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	return NewClientWithURL(ctx, apiKey, "")
}

// NewClientWithURL creates a Client with a custom base URL (for testing).
// An empty baseURL keeps the SDK default.
func NewClientWithURL(ctx context.Context, apiKey, baseURL string) (*Client, error) {
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &Client{client: gc}, nil
}

// Generate sends the user prompt with the system prompt as system instruction.
func (c *Client) Generate(ctx context.Context, systemPrompt, userPrompt string, p llm.Params) (string, error) {
	model := p.Model
	if model == "" {
		model = DefaultModel
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr(float32(p.Temperature)),
		MaxOutputTokens:   int32(p.MaxTokens),
	}

	res, err := c.client.Models.GenerateContent(ctx, model, genai.Text(userPrompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}

	// Blocked or empty candidates carry no text.
	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil || len(res.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return res.Text(), nil
}

var _ llm.Generator = (*Client)(nil)
