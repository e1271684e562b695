package llm

import (
	"context"
	"fmt"

	"github.com/childguard/ai-microservice/internal/pkg/models"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient talks to the hosted OpenAI chat completions API
type OpenAIClient struct {
	client    *openai.Client
	model     string
	maxTokens int
}

// NewOpenAIClient creates a client for the hosted OpenAI API
func NewOpenAIClient(cfg models.OpenAIConfig, maxTokens int) *OpenAIClient {
	return &OpenAIClient{
		client:    openai.NewClient(cfg.APIKey),
		model:     cfg.Model,
		maxTokens: maxTokens,
	}
}

// GetAnalysis sends the prompt pair to OpenAI and extracts the JSON object
// from the model's answer
func (c *OpenAIClient) GetAnalysis(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (map[string]interface{}, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: float32(temperature),
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("openai request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in openai response")
	}

	return ExtractAnalysis(resp.Choices[0].Message.Content)
}
