package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rinawarp/ollama-bridge/internal/metrics"
	"github.com/rinawarp/ollama-bridge/internal/models"
)

// Chat handles POST /chat: one prompt in, one complete response envelope out.
func (h *Handler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body required"})
		return
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := h.routes.Resolve(req.Provider)

	resp, err := h.client.Complete(c.Request.Context(), req.Prompt(), model)
	if err != nil {
		metrics.UpstreamErrorsTotal.Inc()
		h.log.WithError(err).Error("chat completion failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upstream completion failed"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
