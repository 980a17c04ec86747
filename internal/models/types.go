package models

import "errors"

// ErrMissingPrompt is returned when a chat request carries neither inline
// content nor a message list.
var ErrMissingPrompt = errors.New("either content or messages required")

// ChatMessage represents a single turn in a conversation. Content is loosely
// typed because clients may send structured (multimodal) message bodies.
type ChatMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Provider string        `json:"provider"`
	Content  string        `json:"content,omitempty"`
	Messages []ChatMessage `json:"messages,omitempty"`
}

// Normalize applies request defaults: provider falls back to "local" and a
// bare content string is promoted to a single user message.
func (r *ChatRequest) Normalize() {
	if r.Provider == "" {
		r.Provider = "local"
	}
	if len(r.Messages) == 0 && r.Content != "" {
		r.Messages = []ChatMessage{{Role: "user", Content: r.Content}}
	}
}

// Validate checks the request after normalization.
func (r *ChatRequest) Validate() error {
	if r.Content == "" && len(r.Messages) == 0 {
		return ErrMissingPrompt
	}
	return nil
}

// Prompt returns the text forwarded upstream: the inline content when set,
// otherwise the content of the most recent user message.
func (r *ChatRequest) Prompt() string {
	if r.Content != "" {
		return r.Content
	}
	for i := len(r.Messages) - 1; i >= 0; i-- {
		if r.Messages[i].Role != "user" {
			continue
		}
		if s, ok := r.Messages[i].Content.(string); ok {
			return s
		}
	}
	return ""
}

// VisionRequest is the body of POST /vision.
type VisionRequest struct {
	Image    string `json:"image"`
	Prompt   string `json:"prompt"`
	Provider string `json:"provider"`
}

// Normalize applies vision request defaults.
func (r *VisionRequest) Normalize() {
	if r.Prompt == "" {
		r.Prompt = "What do you see?"
	}
	if r.Provider == "" {
		r.Provider = "local"
	}
}

// ChatCompletionMessage is a message inside a completion choice.
type ChatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionChoice is one generated alternative.
type ChatCompletionChoice struct {
	Index        int                   `json:"index"`
	Message      ChatCompletionMessage `json:"message"`
	FinishReason string                `json:"finish_reason"`
}

// Usage reports token accounting from the backend.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ChatCompletionResponse is the envelope returned by /chat and /vision.
type ChatCompletionResponse struct {
	ID      string                 `json:"id"`
	Object  string                 `json:"object"`
	Created int64                  `json:"created"`
	Model   string                 `json:"model"`
	Choices []ChatCompletionChoice `json:"choices"`
	Usage   Usage                  `json:"usage"`
}

// StreamChunk is one item of a completion stream: a token fragment or a
// terminal error. A chunk with Err set is the last one delivered before the
// channel closes.
type StreamChunk struct {
	Content string
	Err     error
}
