// Package metrics collects and exposes Prometheus metrics
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector gathers HTTP and domain metrics
type Collector struct {
	httpStatus      *prometheus.CounterVec
	requestLatency  prometheus.Histogram
	usersRegistered prometheus.Counter
	catsCreated     prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics on the given registry
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "catmap_http_responses_total",
			Help: "HTTP responses by status code",
		}, []string{"status_code"}),
		requestLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "catmap_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		usersRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "catmap_users_registered_total",
			Help: "Total number of registered users",
		}),
		catsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "catmap_cats_created_total",
			Help: "Total number of created cats",
		}),
	}

	reg.MustRegister(
		c.httpStatus,
		c.requestLatency,
		c.usersRegistered,
		c.catsCreated,
	)

	return c
}

// RecordUserRegistered counts a successful registration
func (c *Collector) RecordUserRegistered() {
	c.usersRegistered.Inc()
}

// RecordCatCreated counts a successful cat creation
func (c *Collector) RecordCatCreated() {
	c.catsCreated.Inc()
}

// Middleware records status code and latency for every request
func (c *Collector) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &statusWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(ww, r)

			c.httpStatus.WithLabelValues(strconv.Itoa(ww.statusCode)).Inc()
			c.requestLatency.Observe(time.Since(start).Seconds())
		})
	}
}

// Handler exposes the registry for scraping
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// statusWriter wraps http.ResponseWriter to capture status code
type statusWriter struct {
	http.ResponseWriter
	statusCode int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.statusCode = code
	sw.ResponseWriter.WriteHeader(code)
}
