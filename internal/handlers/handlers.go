package handlers

import (
	"net/http"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"

	"github.com/rinawarp/ollama-bridge/internal/bridge"
	"github.com/rinawarp/ollama-bridge/internal/config"
	"github.com/rinawarp/ollama-bridge/internal/license"
	"github.com/rinawarp/ollama-bridge/internal/logger"
	"github.com/rinawarp/ollama-bridge/internal/router"
	"github.com/rinawarp/ollama-bridge/internal/version"
)

// Handler owns the request handling for every gateway endpoint.
type Handler struct {
	cfg    *config.Config
	routes *router.Router
	gate   *license.Gate
	client bridge.CompletionClient
	log    *log.Entry
}

// New builds a handler set from its collaborators.
func New(cfg *config.Config, routes *router.Router, gate *license.Gate, client bridge.CompletionClient) *Handler {
	return &Handler{
		cfg:    cfg,
		routes: routes,
		gate:   gate,
		client: client,
		log:    logger.Component("handlers"),
	}
}

// Health reports static liveness; no dependency is probed.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": version.Service,
	})
}

// AdminHealth reports liveness plus backend status for operators.
func (h *Handler) AdminHealth(c *gin.Context) {
	// TODO: probe the backend instead of reporting a static status.
	c.JSON(http.StatusOK, gin.H{
		"status":        "healthy",
		"service":       version.Service,
		"ollama_status": "running",
		"version":       version.Version,
	})
}
