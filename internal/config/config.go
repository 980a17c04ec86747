package config

import (
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all process configuration. It is built once at startup and
// passed by reference into handlers and gates; nothing reads the environment
// after Load returns.
type Config struct {
	Host string
	Port string

	AdminAPIKey          string
	RequireValidLicense  bool
	LicensePublicKeyPath string

	CORSOrigins []string

	OllamaAPIBase string
	RoutesConfig  string

	RateLimitPerMinute int
	LogLevel           string
}

// Load builds the configuration from the environment. A .env file in the
// working directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Host:                 getEnv("HOST", "0.0.0.0"),
		Port:                 getEnv("PORT", "7071"),
		AdminAPIKey:          getEnv("ADMIN_API_KEY", ""),
		RequireValidLicense:  strings.EqualFold(getEnv("REQUIRE_VALID_LICENSE", "false"), "true"),
		LicensePublicKeyPath: getEnv("LICENSE_PUBLIC_KEY_PATH", ""),
		OllamaAPIBase:        getEnv("OLLAMA_API_BASE", "http://localhost:11434/v1"),
		RoutesConfig:         getEnv("ROUTES_CONFIG", ""),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
	}

	cfg.CORSOrigins = splitList(getEnv("CORS_ORIGINS", ""))
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"http://localhost:5173"}
	}

	cfg.RateLimitPerMinute = 60
	if n, err := strconv.Atoi(getEnv("RATE_LIMIT_PER_MINUTE", "60")); err == nil && n > 0 {
		cfg.RateLimitPerMinute = n
	}

	return cfg
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
