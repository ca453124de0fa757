// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/benchmarkify/benchmarkify/benchdoc"
	"github.com/benchmarkify/benchmarkify/benchview"
	"github.com/benchmarkify/benchmarkify/chart"
	"github.com/benchmarkify/benchmarkify/share"
)

// maxDocument bounds posted benchmark documents.
const maxDocument = 32 << 20

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		errorf(r.Context(), "encoding response", err)
	}
}

// bodySession builds the session for an API request. A POST body is
// the raw document; otherwise the query is interpreted as for the page.
func (a *App) bodySession(w http.ResponseWriter, r *http.Request) (*benchview.Session, bool) {
	if r.Method != http.MethodPost {
		s, _ := a.session(r)
		return s, true
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxDocument))
	if err != nil {
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		return nil, false
	}
	s := benchview.NewSession(benchview.Options{
		Log:      requestLog(r.Context()),
		Profiles: a.Profiles,
		OnParse:  a.Metrics.ObserveParse,
	})
	s.SetRaw(string(body))
	if q := r.URL.Query(); q.Get("filtered") == "1" {
		s.SetFilter(benchview.NewFilter(q["name"]...))
	}
	return s, true
}

// viewResponse is the response to /api/view.
type viewResponse struct {
	// Benchmarks is the derived view.
	Benchmarks benchdoc.Collection `json:"benchmarks"`
	// Names lists the distinct names in the full collection.
	Names []string `json:"names"`
	// Filter is the current filter, or null if none is set.
	Filter *benchview.Filter `json:"filter"`
	// Error describes why the document did not parse.
	Error string `json:"error,omitempty"`
}

// apiView serves the view of a document as JSON.
func (a *App) apiView(w http.ResponseWriter, r *http.Request) {
	s, ok := a.bodySession(w, r)
	if !ok {
		return
	}
	resp := viewResponse{
		Benchmarks: s.View(),
		Names:      s.Benchmarks().Names(),
		Filter:     s.Filter(),
	}
	if resp.Names == nil {
		resp.Names = []string{}
	}
	status := http.StatusOK
	if err := s.Err(); err != nil {
		resp.Error = err.Error()
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, r, status, resp)
}

// apiShare returns a share link for a document.
func (a *App) apiShare(w http.ResponseWriter, r *http.Request) {
	s, ok := a.bodySession(w, r)
	if !ok {
		return
	}
	link, err := s.ShareLink(a.shareBase(r))
	if err != nil {
		errorf(r.Context(), "building share link", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"url": link})
}

// apiProfiles lists saved profiles, returns one with ?name=, or saves
// the posted document under ?name=.
func (a *App) apiProfiles(w http.ResponseWriter, r *http.Request) {
	if a.Profiles == nil {
		http.Error(w, "profiles are disabled", http.StatusNotFound)
		return
	}
	name := r.URL.Query().Get("name")
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		if name == "" {
			writeJSON(w, r, http.StatusOK, map[string][]string{"profiles": a.Profiles.Names()})
			return
		}
		raw, ok := a.Profiles.Select(name)
		if !ok {
			http.Error(w, "no such profile", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		io.WriteString(w, raw)
	case http.MethodPost:
		if name == "" {
			http.Error(w, "missing name", http.StatusBadRequest)
			return
		}
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxDocument))
		if err != nil {
			http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
			return
		}
		err = a.Profiles.Save(r.Context(), name, string(body))
		a.Metrics.ObserveProfileSave(err)
		if err != nil {
			errorf(r.Context(), "saving profile", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		requestLog(r.Context()).Info("saved profile", zap.String("profile", name))
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "/api/profiles must be called with GET or POST", http.StatusMethodNotAllowed)
	}
}

func (a *App) chartPNG(w http.ResponseWriter, r *http.Request) { a.chart(w, r, chart.PNG) }
func (a *App) chartSVG(w http.ResponseWriter, r *http.Request) { a.chart(w, r, chart.SVG) }

// chart renders the chart of the view described by the query.
func (a *App) chart(w http.ResponseWriter, r *http.Request, format chart.Format) {
	s, ok := a.bodySession(w, r)
	if !ok {
		return
	}
	opts := chart.Options{Format: format, Dark: r.URL.Query().Get("theme") == "dark"}
	w.Header().Set("Content-Type", format.ContentType())
	if err := chart.Render(w, s.View(), s.Filter(), opts); err != nil {
		errorf(r.Context(), "rendering chart", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	a.Metrics.ObserveChart(string(format))
}

// chartURL returns the URL of the chart image of s.
func chartURL(s *benchview.Session, theme string) string {
	q := url.Values{}
	q.Set(share.Param, s.Raw())
	filterQuery(q, s.Filter())
	if theme != "" {
		q.Set("theme", theme)
	}
	return "/chart.svg?" + q.Encode()
}
