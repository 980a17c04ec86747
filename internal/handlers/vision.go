package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rinawarp/ollama-bridge/internal/metrics"
	"github.com/rinawarp/ollama-bridge/internal/models"
	"github.com/rinawarp/ollama-bridge/internal/router"
)

// Vision handles POST /vision: image plus prompt to a vision-capable variant
// of the resolved model.
func (h *Handler) Vision(c *gin.Context) {
	var req models.VisionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image data required"})
		return
	}
	req.Normalize()

	model := router.VisionModel(h.routes.Resolve(req.Provider))

	resp, err := h.client.CompleteVision(c.Request.Context(), req.Image, req.Prompt, model)
	if err != nil {
		metrics.UpstreamErrorsTotal.Inc()
		h.log.WithError(err).Error("vision completion failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upstream completion failed"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
