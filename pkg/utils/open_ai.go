package utils

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// RefinementClientInterface is the provider contract for itinerary refinement.
type RefinementClientInterface interface {
	RefineItinerary(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type OpenAIRefinementClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIRefinementClient(apiKey, model string) (*OpenAIRefinementClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingOpenAIKey
	}
	if model == "" {
		model = openai.GPT4
	}

	return &OpenAIRefinementClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

func (c *OpenAIRefinementClient) RefineItinerary(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: 0.7,
		MaxTokens:   4000,
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return resp.Choices[0].Message.Content, nil
}
