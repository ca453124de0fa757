// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app implements the benchmark viewer web server. Combine an
// App with a profile store to get an HTTP server.
//
// The server is stateless: every request carries the raw benchmark
// document, either in the benchmarkId query parameter of a share link
// or in a posted form, and is rendered by a fresh benchview.Session.
package app

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/benchmarkify/benchmarkify/benchview"
	"github.com/benchmarkify/benchmarkify/internal/metrics"
	"github.com/benchmarkify/benchmarkify/profile"
)

// App manages the viewer logic. Construct an App instance using a
// literal and call RegisterOnMux to connect it with an HTTP server.
type App struct {
	// Profiles holds saved profiles. If nil, saving and loading
	// profiles is disabled.
	Profiles *profile.Store

	// BaseURL is the base of share links. If empty, links point at
	// the host the request was made to.
	BaseURL string

	Log     *zap.Logger
	Metrics *metrics.Metrics
}

// RegisterOnMux registers the app's URLs on mux.
func (a *App) RegisterOnMux(mux *http.ServeMux) {
	a.handle(mux, "/", a.index)
	a.handle(mux, "/chart.png", a.chartPNG)
	a.handle(mux, "/chart.svg", a.chartSVG)
	a.handle(mux, "/api/view", a.apiView)
	a.handle(mux, "/api/profiles", a.apiProfiles)
	a.handle(mux, "/api/share", a.apiShare)
	if a.Metrics != nil {
		mux.Handle("/metrics", a.Metrics.Handler())
	}
}

func (a *App) handle(mux *http.ServeMux, route string, h http.HandlerFunc) {
	mux.Handle(route, a.Metrics.Middleware(route, a.withRequestID(h)))
}

// RequestIDHeader carries the ID assigned to each request.
const RequestIDHeader = "X-Request-Id"

type logKey struct{}

// withRequestID assigns each request an ID, echoes it in the
// response, and attaches a logger carrying it to the request context.
func (a *App) withRequestID(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		log := a.logger().With(zap.String("request_id", id))
		h(w, r.WithContext(context.WithValue(r.Context(), logKey{}, log)))
	}
}

func (a *App) logger() *zap.Logger {
	if a.Log == nil {
		return zap.NewNop()
	}
	return a.Log
}

func requestLog(ctx context.Context) *zap.Logger {
	if log, ok := ctx.Value(logKey{}).(*zap.Logger); ok {
		return log
	}
	return zap.NewNop()
}

func errorf(ctx context.Context, msg string, err error) {
	requestLog(ctx).Error(msg, zap.Error(err))
}

// session builds the session described by r.
//
// The raw document comes from the "raw" form field if present, then
// from the share parameter, then the bundled sample. A "profile"
// parameter replaces it with a saved profile. "action=clear" empties
// it. "filtered=1" applies a filter of the "name" parameters. In a
// posted form, profile and filter apply only with action=load and
// action=filter.
func (a *App) session(r *http.Request) (*benchview.Session, *notice) {
	log := requestLog(r.Context())
	s := benchview.NewSession(benchview.Options{
		Log:      log,
		Profiles: a.Profiles,
		OnParse:  a.Metrics.ObserveParse,
	})
	form := r.URL.Query()
	post := r.Method == http.MethodPost
	if post {
		if err := r.ParseForm(); err != nil {
			log.Warn("bad form", zap.Error(err))
		} else {
			form = r.Form
		}
	}

	if _, ok := form["raw"]; ok {
		s.SetRaw(form.Get("raw"))
	} else {
		s.Start(form)
	}

	// Posted forms carry every control; only the pressed button acts.
	action := form.Get("action")
	var n *notice
	if name := form.Get("profile"); name != "" && (!post || action == "load") {
		if !s.LoadProfile(name) {
			n = &notice{Error: true, Text: "No saved profile named " + name + "."}
		}
	}
	if action == "clear" {
		s.Clear()
	}
	if form.Get("filtered") == "1" && (!post || action == "filter") {
		s.SetFilter(benchview.NewFilter(form["name"]...))
	}
	return s, n
}

// filterQuery adds the filter of s to q.
func filterQuery(q url.Values, f *benchview.Filter) {
	if f == nil {
		return
	}
	q.Set("filtered", "1")
	for _, n := range f.Names() {
		q.Add("name", n)
	}
}

// shareBase returns the base URL of share links made for r.
func (a *App) shareBase(r *http.Request) string {
	if a.BaseURL != "" {
		return a.BaseURL
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if fwd := r.Header.Get("X-Forwarded-Proto"); fwd != "" {
		scheme = fwd
	}
	return scheme + "://" + r.Host + "/"
}
