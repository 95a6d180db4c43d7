// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "homecare"

// Registry holds all application metrics.
type Registry struct {
	registry *prometheus.Registry

	sessionRefreshes *prometheus.CounterVec
	pageRenders      *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

// NewRegistry creates the metrics and registers them, together with the Go
// and process collectors, in a new registry.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		sessionRefreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_refresh_total",
			Help:      "Background session refresh attempts by result.",
		}, []string{"result"}),
		pageRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_renders_total",
			Help:      "Server-rendered pages served, by page.",
		}, []string{"page"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests handled, by method and status code.",
		}, []string{"method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency, by method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.sessionRefreshes,
		r.pageRenders,
		r.httpRequests,
		r.httpDuration,
	)

	return r
}

// ObserveSessionRefresh counts one refresh attempt with the given result.
func (r *Registry) ObserveSessionRefresh(result string) {
	r.sessionRefreshes.WithLabelValues(result).Inc()
}

// ObservePageRender counts one render of page.
func (r *Registry) ObservePageRender(page string) {
	r.pageRenders.WithLabelValues(page).Inc()
}

// ObserveHTTPRequest records a finished request.
func (r *Registry) ObserveHTTPRequest(method string, status int, elapsed time.Duration) {
	r.httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry, DisableCompression: true})
}
