// Package invocation is the boundary between built prompt payloads and the AI
// backend that answers them. No transport lives here; callers plug one in
// through Invoker.
package invocation

import (
	"context"

	"github.com/yungbote/civic-innovation-backend/internal/prompts/builder"
)

// Result is what an AI backend hands back. Data holds the structured answer;
// Raw keeps the model text when the backend could not decode it.
type Result struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data,omitempty"`
	Raw     string         `json:"raw,omitempty"`
}

type Invoker interface {
	Invoke(ctx context.Context, p builder.Payload) (Result, error)
}

// InvokerFunc adapts a function to Invoker.
type InvokerFunc func(ctx context.Context, p builder.Payload) (Result, error)

func (f InvokerFunc) Invoke(ctx context.Context, p builder.Payload) (Result, error) {
	return f(ctx, p)
}
