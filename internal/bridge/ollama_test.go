package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOllamaClient_Complete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Contains(t, string(body), `"ollama/llama2"`)
		assert.Contains(t, string(body), "say hello")

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"id": "chatcmpl-123",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "ollama/llama2",
			"choices": [{"index":0,"message":{"role":"assistant","content":"hello"},"finish_reason":"stop"}],
			"usage": {"prompt_tokens":3,"completion_tokens":1,"total_tokens":4}
		}`)
	}))
	defer server.Close()

	client := NewOllamaClient(ClientConfig{APIBase: server.URL})

	resp, err := client.Complete(context.Background(), "say hello", "ollama/llama2")

	assert.NoError(t, err)
	assert.Equal(t, "chatcmpl-123", resp.ID)
	assert.Equal(t, "chat.completion", resp.Object)
	assert.Equal(t, "ollama/llama2", resp.Model)
	assert.Len(t, resp.Choices, 1)
	assert.Equal(t, "hello", resp.Choices[0].Message.Content)
	assert.Equal(t, "stop", resp.Choices[0].FinishReason)
	assert.Equal(t, 4, resp.Usage.TotalTokens)
}

func TestOllamaClient_CompleteUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"model not found"}}`, http.StatusNotFound)
	}))
	defer server.Close()

	client := NewOllamaClient(ClientConfig{APIBase: server.URL})

	_, err := client.Complete(context.Background(), "hi", "ollama/missing")

	assert.Error(t, err)
}

func TestOllamaClient_CompleteStream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)

		w.Header().Set("Content-Type", "text/event-stream")
		for _, token := range []string{"one ", "two ", "three"} {
			fmt.Fprintf(w, `data: {"id":"chatcmpl-1","object":"chat.completion.chunk","choices":[{"index":0,"delta":{"content":%q}}]}`+"\n\n", token)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer server.Close()

	client := NewOllamaClient(ClientConfig{APIBase: server.URL})

	stream, err := client.CompleteStream(context.Background(), "count", "ollama/llama2")
	assert.NoError(t, err)

	var got []string
	for chunk := range stream {
		assert.NoError(t, chunk.Err)
		got = append(got, chunk.Content)
	}

	// Exactly the upstream fragments, in order.
	assert.Equal(t, []string{"one ", "two ", "three"}, got)
}

func TestOllamaClient_CompleteStreamCancellation(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, `data: {"choices":[{"index":0,"delta":{"content":"first"}}]}`+"\n\n")
		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}
		<-release
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	client := NewOllamaClient(ClientConfig{APIBase: server.URL})

	stream, err := client.CompleteStream(ctx, "hang", "ollama/llama2")
	assert.NoError(t, err)

	first := <-stream
	assert.Equal(t, "first", first.Content)

	// Cancelling the caller context must end the stream promptly.
	cancel()
	for range stream {
	}
}

func TestOllamaClient_SchemelessAPIBase(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"x","created":1,"model":"m","choices":[],"usage":{}}`)
	}))
	defer server.Close()

	// host:port without a scheme gets http:// applied.
	client := NewOllamaClient(ClientConfig{APIBase: strings.TrimPrefix(server.URL, "http://")})

	_, err := client.Complete(context.Background(), "hi", "m")
	assert.NoError(t, err)
}

func TestOllamaClient_CompleteVision(t *testing.T) {
	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"id": "chatcmpl-v",
			"created": 1700000000,
			"model": "ollama/llava2",
			"choices": [{"index":0,"message":{"role":"assistant","content":"a cat"},"finish_reason":"stop"}],
			"usage": {"prompt_tokens":10,"completion_tokens":2,"total_tokens":12}
		}`)
	}))
	defer server.Close()

	client := NewOllamaClient(ClientConfig{APIBase: server.URL})

	resp, err := client.CompleteVision(context.Background(), "data:image/png;base64,AAAA", "What do you see?", "ollama/llava2")
	assert.NoError(t, err)
	assert.Equal(t, "a cat", resp.Choices[0].Message.Content)

	// The upstream message carries both the text part and the image part.
	messages := captured["messages"].([]interface{})
	assert.Len(t, messages, 1)
	parts := messages[0].(map[string]interface{})["content"].([]interface{})
	assert.Len(t, parts, 2)
	assert.Equal(t, "text", parts[0].(map[string]interface{})["type"])
	assert.Equal(t, "image_url", parts[1].(map[string]interface{})["type"])
}
