package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rinawarp/ollama-bridge/internal/metrics"
)

// SSE handles GET /sse: token fragments relayed as Server-Sent Events in
// generation order. The connection stays open until the upstream stream ends
// or the client disconnects; no end-of-stream sentinel is sent.
func (h *Handler) SSE(c *gin.Context) {
	content := c.Query("content")
	if content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content parameter required"})
		return
	}
	provider := c.DefaultQuery("provider", "local")
	model := h.routes.Resolve(provider)

	stream, err := h.client.CompleteStream(c.Request.Context(), content, model)
	if err != nil {
		metrics.UpstreamErrorsTotal.Inc()
		h.log.WithError(err).Error("sse stream setup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upstream completion failed"})
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeaderNow()
	c.Writer.Flush()

	for chunk := range stream {
		if chunk.Err != nil {
			metrics.UpstreamErrorsTotal.Inc()
			h.log.WithError(chunk.Err).Error("sse stream failed")
			return
		}
		fmt.Fprintf(c.Writer, "data: %s\n\n", chunk.Content)
		c.Writer.Flush()
		metrics.StreamTokensTotal.WithLabelValues("sse").Inc()
	}
}
