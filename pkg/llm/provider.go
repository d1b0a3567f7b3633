package llm

import (
	"context"
)

// Provider is the generation model boundary: one system instruction, one user
// payload, one free-text completion. No retries, no streaming, no state
// between calls. Deadlines travel on the context.
type Provider interface {
	Complete(ctx context.Context, systemPrompt, userContent string) (string, error)
}
