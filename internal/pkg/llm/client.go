// Package llm provides a backend-agnostic AI client and tolerant extraction
// of JSON payloads from free-form model output. One backend is selected per
// deployment by configuration; the client contract is backend-independent.
package llm

import (
	"context"
	"fmt"

	"github.com/childguard/ai-microservice/internal/pkg/models"
)

// Client sends a system/user prompt pair to the configured AI backend and
// returns the JSON object extracted from the model's answer.
//
// Implementations propagate transport and extraction errors unmodified.
// Fallback handling is the caller's responsibility, not the client's.
type Client interface {
	GetAnalysis(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (map[string]interface{}, error)
}

// NewClient creates the AI client for the configured backend
func NewClient(cfg models.AIConfig) (Client, error) {
	switch cfg.Backend {
	case "ollama":
		return NewOllamaClient(cfg.Ollama, cfg.MaxTokens), nil
	case "openai":
		if cfg.OpenAI.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for the openai backend")
		}
		return NewOpenAIClient(cfg.OpenAI, cfg.MaxTokens), nil
	case "gemini":
		if cfg.Gemini.APIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for the gemini backend")
		}
		return NewGeminiClient(cfg.Gemini, cfg.MaxTokens)
	default:
		return nil, fmt.Errorf("unknown AI backend: %s", cfg.Backend)
	}
}
