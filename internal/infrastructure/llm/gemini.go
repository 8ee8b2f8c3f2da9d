package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"ArticleDigest/internal/config"
	"ArticleDigest/internal/ports"
)

const defaultModel = "gemini-1.5-flash-latest"

// GeminiClient implements ports.Generator backed by the Gemini API.
// Stateless; one blocking call per invocation, no retry, no streaming.
type GeminiClient struct {
	client *genai.Client
	model  string
}

var _ ports.Generator = (*GeminiClient)(nil)

// NewGeminiClient dials the Gemini API with the configured key and model.
func NewGeminiClient(ctx context.Context, cfg config.GeminiConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("new gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &GeminiClient{client: client, model: model}, nil
}

// Generate sends the prompt and returns the concatenated response text.
// Emptiness of the result is the caller's concern.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	return resp.Text(), nil
}
