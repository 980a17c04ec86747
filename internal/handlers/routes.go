package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rinawarp/ollama-bridge/internal/auth"
	"github.com/rinawarp/ollama-bridge/internal/bridge"
	"github.com/rinawarp/ollama-bridge/internal/config"
	"github.com/rinawarp/ollama-bridge/internal/license"
	"github.com/rinawarp/ollama-bridge/internal/metrics"
	"github.com/rinawarp/ollama-bridge/internal/middleware"
	"github.com/rinawarp/ollama-bridge/internal/router"
)

// RegisterRoutes wires every endpoint onto the engine. Process-wide middleware
// (recovery, request id, CORS, metrics) is expected to already be installed by
// the caller.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, client bridge.CompletionClient) error {
	routes := router.New()
	if cfg.RoutesConfig != "" {
		if err := routes.LoadRoutes(cfg.RoutesConfig); err != nil {
			return err
		}
	}

	gate := license.NewGate(cfg.RequireValidLicense)
	h := New(cfg, routes, gate, client)

	r.GET("/health", h.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	admin := r.Group("/admin", auth.RequireAdmin(cfg.AdminAPIKey))
	admin.GET("/health", h.AdminHealth)

	limited := r.Group("/", middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

	licensed := limited.Group("", gate.Require())
	licensed.POST("/chat", h.Chat)
	licensed.GET("/sse", h.SSE)
	licensed.POST("/vision", h.Vision)

	// License checks for the WebSocket loop happen per message, so the
	// connection itself upgrades without the gate.
	limited.GET("/ws/ai", h.WebSocketAI)

	return nil
}
