// Package metricsx collects and exposes Prometheus metrics for the portal.
package metricsx

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector registers and records the portal's Prometheus metrics.
type Collector struct {
	httpRequests *prometheus.CounterVec
	httpLatency  prometheus.Histogram

	registrations prometheus.Counter
	logins        prometheus.Counter
	enrollments   prometheus.Counter
	tickets       prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_http_requests_total",
			Help: "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "path", "status"}),
		httpLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "portal_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portal_registrations_total",
			Help: "Successful user registrations.",
		}),
		logins: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portal_logins_total",
			Help: "Successful logins.",
		}),
		enrollments: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portal_enrollments_total",
			Help: "Course enrollments, including repeated idempotent calls.",
		}),
		tickets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portal_tickets_created_total",
			Help: "Support tickets created.",
		}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpLatency,
		c.registrations,
		c.logins,
		c.enrollments,
		c.tickets,
	)

	return c
}

func (c *Collector) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	c.httpLatency.Observe(duration.Seconds())
}

func (c *Collector) RecordRegistration() { c.registrations.Inc() }
func (c *Collector) RecordLogin()        { c.logins.Inc() }
func (c *Collector) RecordEnrollment()   { c.enrollments.Inc() }
func (c *Collector) RecordTicket()       { c.tickets.Inc() }

// Handler returns the HTTP handler serving the Prometheus exposition format.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// HTTPMiddleware records request counts and latency. The route pattern from
// the mux is preferred over the raw URL path to keep label cardinality low.
func (c *Collector) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rw, r)

		path := r.Pattern
		if path == "" {
			path = r.URL.Path
		}
		c.RecordHTTPRequest(r.Method, path, rw.status, time.Since(start))
	})
}

type statusWriter struct {
	http.ResponseWriter

	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
