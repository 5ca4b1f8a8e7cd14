// Package ports defines the narrow interfaces the leads module needs from
// the outside world, keeping the module decoupled from concrete providers.
package ports

import (
	"context"

	"leaddesk_backend/platform/ai"
)

// ChatModel is the capability the AI lead evaluator needs from a
// text-generation provider: one prompt in, one reply out. Concrete
// implementations live under platform/ai; tests substitute canned fakes.
type ChatModel interface {
	Complete(ctx context.Context, req ai.ChatRequest) (string, error)
}
