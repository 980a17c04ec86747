package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/rinawarp/ollama-bridge/internal/license"
	"github.com/rinawarp/ollama-bridge/internal/metrics"
)

var upgrader = websocket.Upgrader{
	// Browser origins are already filtered by the CORS middleware; the
	// upgrade itself accepts any origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type wsPrompt struct {
	Provider string `json:"provider"`
	Content  string `json:"content"`
}

// WebSocketAI handles the /ws/ai message loop. Each inbound text frame is an
// independent prompt; tokens stream back as raw text frames. Malformed or
// unlicensed messages get a JSON error frame and the loop continues; an
// upstream failure mid-stream is fatal: one generic error frame, then the
// connection closes.
func (h *Handler) WebSocketAI(c *gin.Context) {
	licenseToken := c.GetHeader(license.Header)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.WithError(err).Error("websocket upgrade failed")
		return
	}
	defer conn.Close()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			// Client closed the connection.
			return
		}

		var req wsPrompt
		if err := json.Unmarshal(data, &req); err != nil || req.Content == "" {
			if writeErr := conn.WriteJSON(gin.H{"error": "Content required"}); writeErr != nil {
				return
			}
			continue
		}

		if !h.gate.Verify(licenseToken) {
			if writeErr := conn.WriteJSON(gin.H{"error": license.DeniedMessage}); writeErr != nil {
				return
			}
			continue
		}

		if req.Provider == "" {
			req.Provider = "local"
		}
		model := h.routes.Resolve(req.Provider)

		stream, err := h.client.CompleteStream(c.Request.Context(), req.Content, model)
		if err != nil {
			metrics.UpstreamErrorsTotal.Inc()
			h.log.WithError(err).Error("websocket stream setup failed")
			conn.WriteJSON(gin.H{"error": "Internal server error"})
			return
		}

		for chunk := range stream {
			if chunk.Err != nil {
				metrics.UpstreamErrorsTotal.Inc()
				h.log.WithError(chunk.Err).Error("websocket stream failed")
				conn.WriteJSON(gin.H{"error": "Internal server error"})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, []byte(chunk.Content)); err != nil {
				return
			}
			metrics.StreamTokensTotal.WithLabelValues("websocket").Inc()
		}
	}
}
