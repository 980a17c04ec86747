package main

import (
	"github.com/gin-gonic/gin"

	"github.com/rinawarp/ollama-bridge/internal/bridge"
	"github.com/rinawarp/ollama-bridge/internal/config"
	"github.com/rinawarp/ollama-bridge/internal/handlers"
	"github.com/rinawarp/ollama-bridge/internal/logger"
	"github.com/rinawarp/ollama-bridge/internal/metrics"
	"github.com/rinawarp/ollama-bridge/internal/middleware"
	"github.com/rinawarp/ollama-bridge/internal/version"
)

func main() {
	cfg := config.Load()
	logger.Setup(cfg.LogLevel)
	metrics.Register()

	log := logger.Component("server")

	client := bridge.NewOllamaClient(bridge.ClientConfig{
		APIBase: cfg.OllamaAPIBase,
	})

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(cfg.CORSOrigins))

	if err := handlers.RegisterRoutes(r, cfg, client); err != nil {
		log.WithError(err).Fatal("route setup failed")
	}

	log.WithField("addr", cfg.Addr()).Infof("starting %s", version.Service)
	if err := r.Run(cfg.Addr()); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}
