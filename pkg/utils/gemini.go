package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GenerationClientInterface is the generation-provider contract used by the
// itinerary service. Implemented by GeminiGenerationClient in production and
// by counting stubs in tests.
type GenerationClientInterface interface {
	GenerateItinerary(ctx context.Context, prompt string) (string, error)
}

type GeminiGenerationClient struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerationClient verifies the API key before any network call so a
// missing credential surfaces as a descriptive error instead of a timeout.
func NewGeminiGenerationClient(ctx context.Context, apiKey, model string) (*GeminiGenerationClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingGeminiKey
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerationClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiGenerationClient) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	m := c.client.GenerativeModel(c.model)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated by Gemini")
	}

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

func (c *GeminiGenerationClient) Close() error {
	return c.client.Close()
}
