package llm

import (
	"context"
	"fmt"

	"github.com/childguard/ai-microservice/internal/pkg/models"
	"google.golang.org/genai"
)

// GeminiClient talks to the hosted Gemini generative API
type GeminiClient struct {
	client    *genai.Client
	model     string
	maxTokens int
}

// NewGeminiClient creates a client for the hosted Gemini API
func NewGeminiClient(cfg models.GeminiConfig, maxTokens int) (*GeminiClient, error) {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiClient{
		client:    client,
		model:     cfg.Model,
		maxTokens: maxTokens,
	}, nil
}

// GetAnalysis sends the prompt pair to Gemini and extracts the JSON object
// from the model's answer
func (c *GeminiClient) GetAnalysis(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (map[string]interface{}, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr(float32(temperature)),
		MaxOutputTokens:   int32(c.maxTokens),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(userPrompt), config)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("empty gemini response")
	}

	return ExtractAnalysis(text)
}
