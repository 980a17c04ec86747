package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	once sync.Once

	// RequestsTotal counts HTTP requests by route, method and status.
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rina",
		Subsystem: "bridge",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests handled by the gateway.",
	}, []string{"path", "method", "status"})

	// RequestDurationSeconds measures handler latency per route.
	RequestDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "rina",
		Subsystem: "bridge",
		Name:      "request_duration_seconds",
		Help:      "End-to-end time to serve an HTTP request.",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
	}, []string{"path"})

	// StreamTokensTotal counts tokens relayed to clients per transport.
	StreamTokensTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rina",
		Subsystem: "bridge",
		Name:      "stream_tokens_total",
		Help:      "Total number of streamed tokens forwarded to clients, labeled by transport.",
	}, []string{"transport"})

	// UpstreamErrorsTotal counts failed calls to the completion backend.
	UpstreamErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "rina",
		Subsystem: "bridge",
		Name:      "upstream_errors_total",
		Help:      "Total number of completion backend calls that failed.",
	})
)

// Register installs the gateway collectors into the default registry.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			RequestsTotal,
			RequestDurationSeconds,
			StreamTokensTotal,
			UpstreamErrorsTotal,
		)
	})
}

// Handler exposes the default registry for GET /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
