package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// unmatchedRoute labels requests that hit no registered route, keeping label cardinality bounded.
const unmatchedRoute = "unmatched"

var (
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "octofit",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Number of HTTP requests, labeled by method, route and status.",
	}, []string{"method", "route", "status"})

	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "octofit",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency, labeled by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	httpInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "octofit",
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "Number of HTTP requests being served.",
	})
)

func init() {
	prometheus.MustRegister(httpRequests, httpDuration, httpInFlight)
}

// Metrics records request counts, latency and in-flight requests per route template.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		method := c.Request.Method

		httpRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
