// Package metrics holds the Prometheus collectors of the API server.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal counts handled requests by route template, method and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exlibris_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks request latency by route template.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "exlibris_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	ForumPostViewsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "exlibris_forum_post_views_total",
			Help: "Total number of forum post detail views",
		},
	)

	// QuizSubmissionsTotal counts quiz submissions by mode: "matched" when
	// answers resolved to genres, "fallback" when the whole catalog was sampled.
	QuizSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exlibris_quiz_submissions_total",
			Help: "Total number of recommendation quiz submissions",
		},
		[]string{"mode"},
	)

	BookStatusUpsertsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exlibris_book_status_upserts_total",
			Help: "Total number of book status updates",
		},
		[]string{"status"},
	)

	ContextCacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exlibris_context_cache_lookups_total",
			Help: "Shared context cache lookups by result",
		},
		[]string{"result"},
	)
)

func RecordForumView() {
	ForumPostViewsTotal.Inc()
}

func RecordQuizSubmission(fallback bool) {
	mode := "matched"
	if fallback {
		mode = "fallback"
	}
	QuizSubmissionsTotal.WithLabelValues(mode).Inc()
}

func RecordStatusUpsert(status string) {
	BookStatusUpsertsTotal.WithLabelValues(status).Inc()
}

func RecordContextCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	ContextCacheLookupsTotal.WithLabelValues(result).Inc()
}

// Middleware records request count and latency. Unmatched routes share one
// label so scanners cannot blow up cardinality.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the default registry.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
