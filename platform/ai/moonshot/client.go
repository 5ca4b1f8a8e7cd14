// Package moonshot provides a chat completion client for Moonshot's
// OpenAI-compatible API.
package moonshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"leaddesk_backend/platform/ai"
)

// Config for the Moonshot (Kimi) API.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Client calls Moonshot's /chat/completions endpoint.
type Client struct {
	config Config
	client *http.Client
}

// New creates a Moonshot chat client with sensible defaults.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.moonshot.ai/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "kimi-k2-turbo-preview"
	}
	return &Client{
		config: cfg,
		client: &http.Client{},
	}
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Temperature float32         `json:"temperature"`
	MaxTokens   int32           `json:"max_tokens,omitempty"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error interface{} `json:"error"`
}

// Complete sends a single-turn chat completion and returns the reply text.
func (m *Client) Complete(ctx context.Context, req ai.ChatRequest) (string, error) {
	payload := openAIRequest{
		Model:       m.config.Model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.System != "" {
		payload.Messages = append(payload.Messages, openAIMessage{Role: "system", Content: req.System})
	}
	payload.Messages = append(payload.Messages, openAIMessage{Role: "user", Content: req.Prompt})

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, m.config.BaseURL+"/chat/completions", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Authorization", "Bearer "+m.config.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var result openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode moonshot response: %v", err)
	}
	if result.Error != nil {
		return "", fmt.Errorf("moonshot api error: %v", result.Error)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("moonshot api error: empty choices")
	}

	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}
