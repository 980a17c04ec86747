package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/rinawarp/ollama-bridge/internal/bridge"
	"github.com/rinawarp/ollama-bridge/internal/config"
	"github.com/rinawarp/ollama-bridge/internal/mocks"
	"github.com/rinawarp/ollama-bridge/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		RateLimitPerMinute: 1000,
		CORSOrigins:        []string{"http://localhost:5173"},
	}
}

func newTestRouter(t *testing.T, cfg *config.Config, client bridge.CompletionClient) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	err := RegisterRoutes(r, cfg, client)
	assert.NoError(t, err)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestChat_EmptyBody(t *testing.T) {
	r := newTestRouter(t, testConfig(), &mocks.MockCompletionClient{})

	w := postJSON(r, "/chat", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChat_MissingContentAndMessages(t *testing.T) {
	r := newTestRouter(t, testConfig(), &mocks.MockCompletionClient{})

	w := postJSON(r, "/chat", `{"provider":"local"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "content or messages")
}

func TestChat_DefaultProviderResolvesLlama2(t *testing.T) {
	var gotPrompt, gotModel string
	client := &mocks.MockCompletionClient{
		CompleteFunc: func(ctx context.Context, prompt, model string) (*models.ChatCompletionResponse, error) {
			gotPrompt, gotModel = prompt, model
			return &models.ChatCompletionResponse{
				ID:      "chatcmpl-1",
				Object:  "chat.completion",
				Created: 1700000000,
				Model:   model,
				Choices: []models.ChatCompletionChoice{
					{Message: models.ChatCompletionMessage{Role: "assistant", Content: "hey"}, FinishReason: "stop"},
				},
			}, nil
		},
	}
	r := newTestRouter(t, testConfig(), client)

	w := postJSON(r, "/chat", `{"content":"hi"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hi", gotPrompt)
	assert.Equal(t, "ollama/llama2", gotModel)

	var resp models.ChatCompletionResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "chat.completion", resp.Object)
	assert.Equal(t, "hey", resp.Choices[0].Message.Content)
}

func TestChat_MessagesOnly(t *testing.T) {
	var gotPrompt string
	client := &mocks.MockCompletionClient{
		CompleteFunc: func(ctx context.Context, prompt, model string) (*models.ChatCompletionResponse, error) {
			gotPrompt = prompt
			return &models.ChatCompletionResponse{Object: "chat.completion"}, nil
		},
	}
	r := newTestRouter(t, testConfig(), client)

	w := postJSON(r, "/chat", `{"provider":"openai","messages":[{"role":"user","content":"from messages"}]}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "from messages", gotPrompt)
}

func TestChat_LicenseEnforced(t *testing.T) {
	cfg := testConfig()
	cfg.RequireValidLicense = true
	r := newTestRouter(t, cfg, &mocks.MockCompletionClient{})

	w := postJSON(r, "/chat", `{"content":"hi"}`)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.Contains(t, w.Body.String(), "Payment Required")
}

func TestChat_UpstreamFailure(t *testing.T) {
	client := &mocks.MockCompletionClient{
		CompleteFunc: func(ctx context.Context, prompt, model string) (*models.ChatCompletionResponse, error) {
			return nil, errors.New("connection refused")
		},
	}
	r := newTestRouter(t, testConfig(), client)

	w := postJSON(r, "/chat", `{"content":"hi"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// Internal detail stays out of the response body.
	assert.NotContains(t, w.Body.String(), "connection refused")
}
