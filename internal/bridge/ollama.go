package bridge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/apex/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/rinawarp/ollama-bridge/internal/logger"
	"github.com/rinawarp/ollama-bridge/internal/models"
)

// OllamaClient talks to an OpenAI-compatible completion API: Ollama, LiteLLM,
// or a hosted provider behind the same surface.
type OllamaClient struct {
	client *openai.Client
	log    *log.Entry
}

// NewOllamaClient creates a client for the configured backend.
func NewOllamaClient(cfg ClientConfig) *OllamaClient {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = cfg.APIBase
	if !strings.HasPrefix(clientConfig.BaseURL, "http://") && !strings.HasPrefix(clientConfig.BaseURL, "https://") {
		clientConfig.BaseURL = "http://" + clientConfig.BaseURL
	}

	return &OllamaClient{
		client: openai.NewClientWithConfig(clientConfig),
		log:    logger.Component("bridge"),
	}
}

func (c *OllamaClient) Complete(ctx context.Context, prompt, model string) (*models.ChatCompletionResponse, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create chat completion: %w", err)
	}
	return convertResponse(&resp), nil
}

func (c *OllamaClient) CompleteStream(ctx context.Context, prompt, model string) (<-chan models.StreamChunk, error) {
	stream, err := c.client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Stream: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create chat completion stream: %w", err)
	}

	out := make(chan models.StreamChunk)

	go func() {
		defer close(out)
		defer stream.Close()

		for {
			resp, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				if ctx.Err() != nil {
					// Caller went away; nothing left to report.
					return
				}
				c.log.WithError(err).Error("stream receive failed")
				select {
				case out <- models.StreamChunk{Err: err}:
				case <-ctx.Done():
				}
				return
			}
			if len(resp.Choices) == 0 || resp.Choices[0].Delta.Content == "" {
				continue
			}
			select {
			case out <- models.StreamChunk{Content: resp.Choices[0].Delta.Content}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

func (c *OllamaClient) CompleteVision(ctx context.Context, image, prompt, model string) (*models.ChatCompletionResponse, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: prompt},
					{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: NormalizeImage(image)},
					},
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create vision completion: %w", err)
	}
	return convertResponse(&resp), nil
}

// convertResponse maps the upstream response into the gateway envelope.
func convertResponse(resp *openai.ChatCompletionResponse) *models.ChatCompletionResponse {
	out := &models.ChatCompletionResponse{
		ID:      resp.ID,
		Object:  "chat.completion",
		Created: resp.Created,
		Model:   resp.Model,
		Usage: models.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}
	for _, choice := range resp.Choices {
		out.Choices = append(out.Choices, models.ChatCompletionChoice{
			Index: choice.Index,
			Message: models.ChatCompletionMessage{
				Role:    choice.Message.Role,
				Content: choice.Message.Content,
			},
			FinishReason: string(choice.FinishReason),
		})
	}
	return out
}
