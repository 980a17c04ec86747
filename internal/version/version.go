package version

// Service identifies this gateway in health responses and logs.
const Service = "rina-ollama-bridge"

// Version is the service version reported by /admin/health.
const Version = "1.0.0"
