// Package metrics exposes Prometheus request metrics at /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a registry so tests can build independent instances.
type Metrics struct {
	reg      *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	upstream *prometheus.CounterVec
}

// New registers the HTTP collectors plus the Go and process collectors.
func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "groupflight",
				Name:      "http_requests_total",
				Help:      "HTTP requests by route pattern, method and status code.",
			},
			[]string{"route", "method", "code"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "groupflight",
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by route pattern and method.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		upstream: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "groupflight",
				Name:      "api_client_requests_total",
				Help:      "Calls from the HTML controllers to the JSON API, by outcome.",
			},
			[]string{"method", "outcome"},
		),
	}
	m.reg.MustRegister(
		m.requests,
		m.duration,
		m.upstream,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Middleware records every request under its chi route pattern, so
// /Airline/Details/7 and /Airline/Details/8 share a series.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil {
			if p := rc.RoutePattern(); p != "" {
				route = p
			}
		}
		code := ww.Status()
		if code == 0 {
			code = http.StatusOK
		}
		m.requests.WithLabelValues(route, r.Method, strconv.Itoa(code)).Inc()
		m.duration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}

// ObserveUpstream counts one API client call. outcome is "ok",
// "client_error", "server_error", "redirect" or "transport_error".
func (m *Metrics) ObserveUpstream(method, outcome string) {
	if m == nil {
		return
	}
	m.upstream.WithLabelValues(method, outcome).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.reg
}
