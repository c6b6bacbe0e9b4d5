package api

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mkoester/lightbox/pkg/observability"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lightbox_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lightbox_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	layoutDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lightbox_layout_duration_seconds",
			Help:    "Layout computation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	layoutItems = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lightbox_layout_items",
			Help:    "Number of items per computed layout",
			Buckets: prometheus.ExponentialBuckets(10, 4, 8),
		},
	)

	cacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lightbox_cache_hits_total",
			Help: "Pipeline stage cache hits",
		},
		[]string{"stage"},
	)

	cacheMissesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lightbox_cache_misses_total",
			Help: "Pipeline stage cache misses",
		},
		[]string{"stage"},
	)
)

// metricsHandler returns the Prometheus metrics HTTP handler.
func metricsHandler() http.Handler {
	return promhttp.Handler()
}

// recordLayout records one layout computation.
func recordLayout(items int, duration time.Duration) {
	layoutDuration.Observe(duration.Seconds())
	layoutItems.Observe(float64(items))
}

// promCacheHooks feeds pipeline cache events into the Prometheus counters.
type promCacheHooks struct{}

func (promCacheHooks) OnCacheHit(_ context.Context, stage string) {
	cacheHitsTotal.WithLabelValues(stage).Inc()
}

func (promCacheHooks) OnCacheMiss(_ context.Context, stage string) {
	cacheMissesTotal.WithLabelValues(stage).Inc()
}

func (promCacheHooks) OnCacheSet(context.Context, string, int) {}

var registerHooksOnce sync.Once

// registerHooks wires the pipeline's cache events to Prometheus.
func registerHooks() {
	registerHooksOnce.Do(func() {
		observability.SetCacheHooks(promCacheHooks{})
	})
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// metricsMiddleware records request count and duration per route.
func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)
		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(rw.statusCode)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(time.Since(start).Seconds())
	})
}
