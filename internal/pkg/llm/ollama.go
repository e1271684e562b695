package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/childguard/ai-microservice/internal/pkg/models"
)

// maxResponseSize limits the model response body to prevent memory exhaustion
const maxResponseSize = 10 * 1024 * 1024 // 10MB

// OllamaClient talks to a local inference server through its
// OpenAI-compatible chat completions endpoint
type OllamaClient struct {
	url        string
	model      string
	maxTokens  int
	httpClient *http.Client
}

// NewOllamaClient creates a client for a local Ollama (or compatible) server
func NewOllamaClient(cfg models.OllamaConfig, maxTokens int) *OllamaClient {
	timeout := time.Duration(cfg.RequestTimeout * float64(time.Second))
	if timeout <= 0 {
		timeout = 300 * time.Second
	}

	return &OllamaClient{
		url:        buildChatCompletionsURL(cfg.BaseURL),
		model:      cfg.Model,
		maxTokens:  maxTokens,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// buildChatCompletionsURL constructs the chat completions endpoint from the
// configured base URL, whether or not it already carries the API path
func buildChatCompletionsURL(baseURL string) string {
	if baseURL == "" {
		baseURL = "http://127.0.0.1:11434"
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	if strings.HasSuffix(baseURL, "/chat/completions") {
		return baseURL
	}
	if strings.HasSuffix(baseURL, "/v1") {
		return baseURL + "/chat/completions"
	}
	return baseURL + "/v1/chat/completions"
}

// chatMessage is a single message in the OpenAI-compatible request format
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the OpenAI-compatible chat completions request format
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

// chatResponse is the OpenAI-compatible chat completions response format
type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

// GetAnalysis sends the prompt pair to the inference server and extracts the
// JSON object from the model's answer
func (c *OllamaClient) GetAnalysis(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (map[string]interface{}, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inference server request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read inference server response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		snippet := string(respBody)
		if len(snippet) > 200 {
			snippet = snippet[:200]
		}
		return nil, fmt.Errorf("inference server returned status %d: %s", resp.StatusCode, snippet)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return nil, fmt.Errorf("failed to decode inference server response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in inference server response")
	}

	return ExtractAnalysis(chatResp.Choices[0].Message.Content)
}
