// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics exports Prometheus metrics for the web server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is the collection of server metrics. A nil *Metrics records
// nothing.
type Metrics struct {
	Registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	Parses       *prometheus.CounterVec
	ProfileSaves *prometheus.CounterVec
	ChartRenders *prometheus.CounterVec
}

// New creates a registry with the Go runtime and process collectors
// and all server metrics.
func New() *Metrics {
	m := &Metrics{Registry: prometheus.NewRegistry()}

	m.HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "benchmarkify_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)
	m.HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "benchmarkify_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	m.Parses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "benchmarkify_parses_total",
			Help: "Benchmark documents parsed, by result",
		},
		[]string{"result"},
	)
	m.ProfileSaves = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "benchmarkify_profile_saves_total",
			Help: "Profile saves, by result",
		},
		[]string{"result"},
	)
	m.ChartRenders = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "benchmarkify_chart_renders_total",
			Help: "Charts rendered, by image format",
		},
		[]string{"format"},
	)

	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.Parses,
		m.ProfileSaves,
		m.ChartRenders,
	)
	return m
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// ObserveParse counts a parse with outcome err.
func (m *Metrics) ObserveParse(err error) {
	if m == nil {
		return
	}
	m.Parses.WithLabelValues(result(err)).Inc()
}

// ObserveProfileSave counts a profile save with outcome err.
func (m *Metrics) ObserveProfileSave(err error) {
	if m == nil {
		return
	}
	m.ProfileSaves.WithLabelValues(result(err)).Inc()
}

// ObserveChart counts a chart rendered in format.
func (m *Metrics) ObserveChart(format string) {
	if m == nil {
		return
	}
	m.ChartRenders.WithLabelValues(format).Inc()
}

// Middleware records requests handled by next under route. route is
// the registered pattern, not the request path, to bound label
// cardinality.
func (m *Metrics) Middleware(route string, next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		m.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rw.statusCode)).Inc()
		m.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// responseWriter captures the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
