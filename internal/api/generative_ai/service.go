package generativeAI

import (
	"context"
	"errors"
	"fmt"
	"os"

	"google.golang.org/genai"
)

// ErrNoCredential means the Gemini API key is unset or still the
// placeholder. Running without the key is a normal operating mode; callers
// skip the enrichment path instead of failing.
var ErrNoCredential = errors.New("gemini credential not configured")

const (
	apiKeyEnv      = "GOOGLE_GEMINI_API_KEY"
	placeholderKey = "your_api_key_here"
)

// AIClient wraps the Gemini client for guide prose generation.
type AIClient struct {
	client *genai.Client
	model  string
}

// NewAIClient builds a client from the environment credential. It returns
// ErrNoCredential when the key is absent or a placeholder.
func NewAIClient(ctx context.Context, model string) (*AIClient, error) {
	apiKey := os.Getenv(apiKeyEnv)
	if apiKey == "" || apiKey == placeholderKey {
		return nil, ErrNoCredential
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &AIClient{
		client: client,
		model:  model,
	}, nil
}

// GenerateContent sends a single prompt and returns the raw response text.
func (ai *AIClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{Temperature: genai.Ptr[float32](0.7)}
	result, err := ai.client.Models.GenerateContent(ctx, ai.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return result.Text(), nil
}
