package httpx

import (
	"net/http"
	"time"

	"github.com/eucorp/planning/internal/observability/metrics"
	"github.com/eucorp/planning/internal/observability/statsd"
)

// RequestMetrics returns a middleware that emits request count and latency
// metrics to the configured StatsD sink.
func RequestMetrics(sink statsd.Sink) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			metrics.EmitRequest(sink, metrics.RequestMetric{
				Method:   r.Method,
				Status:   ww.status,
				Duration: time.Since(start),
			})
		})
	}
}
