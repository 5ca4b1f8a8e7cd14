// Package ai defines the shared request shape for chat-style text generation.
// Concrete providers live in the subpackages.
package ai

// ChatRequest is a single-turn chat completion request: one system role
// message and one user prompt, with bounded sampling settings.
type ChatRequest struct {
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int32
}
