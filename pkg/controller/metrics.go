package controller

import (
	"net/http"
	"strconv"
	"time"

	"hostadmin/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint: gochecknoglobals
	Name:    "http_request_duration_seconds",
	Help:    "HTTP request latency by method and status code.",
	Buckets: metrics.DefaultBuckets,
}, []string{"method", "code"})

// WithMetrics returns a middleware that records request durations in the
// http_request_duration_seconds histogram.
func WithMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		requestDuration.WithLabelValues(r.Method, strconv.Itoa(rec.status)).
			Observe(time.Since(start).Seconds())
	})
}
