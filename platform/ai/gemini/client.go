// Package gemini provides a chat completion client backed by the Google
// Gemini API.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"leaddesk_backend/platform/ai"

	"google.golang.org/genai"
)

// Config for the Gemini API.
type Config struct {
	APIKey string
	Model  string
}

// Client calls the Gemini generate-content endpoint.
type Client struct {
	config Config
	client *genai.Client
}

// New creates a Gemini chat client.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	return &Client{config: cfg, client: client}, nil
}

// Complete sends a single-turn generation request and returns the reply text.
func (g *Client) Complete(ctx context.Context, req ai.ChatRequest) (string, error) {
	genConfig := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(req.Temperature),
		MaxOutputTokens: req.MaxTokens,
	}
	if req.System != "" {
		genConfig.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.config.Model, genai.Text(req.Prompt), genConfig)
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("gemini api error: empty response")
	}

	return text, nil
}
