package bridge

import (
	"context"

	"github.com/rinawarp/ollama-bridge/internal/models"
)

// CompletionClient is the gateway's view of the completion backend. Handlers
// depend on this interface so tests can substitute a fake.
type CompletionClient interface {
	// Complete sends a single-turn prompt and blocks for the full response.
	Complete(ctx context.Context, prompt, model string) (*models.ChatCompletionResponse, error)

	// CompleteStream sends a single-turn prompt and returns a channel of
	// token fragments in generation order. The channel is closed when the
	// upstream stream ends; a chunk with Err set is terminal. Cancelling ctx
	// closes the upstream connection.
	CompleteStream(ctx context.Context, prompt, model string) (<-chan models.StreamChunk, error)

	// CompleteVision sends an image reference plus a text prompt and blocks
	// for the full response.
	CompleteVision(ctx context.Context, image, prompt, model string) (*models.ChatCompletionResponse, error)
}

// ClientConfig configures the backend connection.
type ClientConfig struct {
	// APIBase is the OpenAI-compatible endpoint, e.g. http://localhost:11434/v1.
	APIBase string
	// APIKey is optional; local backends ignore it.
	APIKey string
}
