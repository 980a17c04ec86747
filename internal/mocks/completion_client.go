package mocks

import (
	"context"

	"github.com/rinawarp/ollama-bridge/internal/models"
)

// MockCompletionClient implements bridge.CompletionClient for testing.
type MockCompletionClient struct {
	CompleteFunc       func(ctx context.Context, prompt, model string) (*models.ChatCompletionResponse, error)
	CompleteStreamFunc func(ctx context.Context, prompt, model string) (<-chan models.StreamChunk, error)
	CompleteVisionFunc func(ctx context.Context, image, prompt, model string) (*models.ChatCompletionResponse, error)
}

func (m *MockCompletionClient) Complete(ctx context.Context, prompt, model string) (*models.ChatCompletionResponse, error) {
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, prompt, model)
	}
	return &models.ChatCompletionResponse{Object: "chat.completion"}, nil
}

func (m *MockCompletionClient) CompleteStream(ctx context.Context, prompt, model string) (<-chan models.StreamChunk, error) {
	if m.CompleteStreamFunc != nil {
		return m.CompleteStreamFunc(ctx, prompt, model)
	}
	ch := make(chan models.StreamChunk)
	close(ch)
	return ch, nil
}

func (m *MockCompletionClient) CompleteVision(ctx context.Context, image, prompt, model string) (*models.ChatCompletionResponse, error) {
	if m.CompleteVisionFunc != nil {
		return m.CompleteVisionFunc(ctx, image, prompt, model)
	}
	return &models.ChatCompletionResponse{Object: "chat.completion"}, nil
}

// StreamOf returns a stream function that yields the given tokens in order.
func StreamOf(tokens ...string) func(ctx context.Context, prompt, model string) (<-chan models.StreamChunk, error) {
	return func(ctx context.Context, prompt, model string) (<-chan models.StreamChunk, error) {
		ch := make(chan models.StreamChunk, len(tokens))
		for _, tok := range tokens {
			ch <- models.StreamChunk{Content: tok}
		}
		close(ch)
		return ch, nil
	}
}

// StreamThenError returns a stream function that yields the given tokens and
// then a terminal error chunk, as a failing upstream does mid-stream.
func StreamThenError(err error, tokens ...string) func(ctx context.Context, prompt, model string) (<-chan models.StreamChunk, error) {
	return func(ctx context.Context, prompt, model string) (<-chan models.StreamChunk, error) {
		ch := make(chan models.StreamChunk, len(tokens)+1)
		for _, tok := range tokens {
			ch <- models.StreamChunk{Content: tok}
		}
		ch <- models.StreamChunk{Err: err}
		close(ch)
		return ch, nil
	}
}
