// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	m := New()
	m.ObserveParse(nil)
	m.ObserveParse(nil)
	m.ObserveParse(errors.New("bad"))
	m.ObserveProfileSave(nil)
	m.ObserveChart("png")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Parses.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Parses.WithLabelValues("error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ProfileSaves.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ChartRenders.WithLabelValues("png")))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.ObserveParse(nil)
	m.ObserveProfileSave(errors.New("x"))
	m.ObserveChart("svg")
	h := http.NotFoundHandler()
	assert.NotNil(t, m.Middleware("/", h))
}

func TestMiddleware(t *testing.T) {
	m := New()
	h := m.Middleware("/api/view", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadRequest)
	}))
	for i := 0; i < 3; i++ {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/view?x=1", nil))
	}
	assert.Equal(t, 3.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/view", "400")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.True(t, strings.Contains(string(body), `benchmarkify_http_requests_total{method="GET",route="/api/view",status="400"} 3`), "exposition:\n%s", body)
}
