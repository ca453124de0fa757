// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"bytes"
	"context"
	"encoding/base64"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/safehtml"
	"github.com/google/safehtml/template"
	"go.uber.org/zap"

	"github.com/benchmarkify/benchmarkify/benchview"
	"github.com/benchmarkify/benchmarkify/chart"
	"github.com/benchmarkify/benchmarkify/share"
	"github.com/benchmarkify/benchmarkify/table"
)

const pageSource = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Benchmarkify</title>
<style>
body { font-family: sans-serif; margin: 1em 2em; }
body.dark { background: #222; color: #ddd; }
body.dark a { color: #8cf; }
textarea { width: 100%; height: 12em; font-family: monospace; }
.error { color: #c33; }
.notice { color: #393; }
table.benchmarks { border-collapse: collapse; }
table.benchmarks td, table.benchmarks th { padding: 0.2em 0.8em; text-align: right; }
table.benchmarks td:nth-child(-n+2) { text-align: left; }
tr.sampled { font-style: italic; }
nav a.selected { font-weight: bold; }
</style>
</head>
<body class="{{.Theme}}">
<h1>Benchmarkify</h1>
<nav>
<a href="{{.ChartTab}}"{{if eq .Tab "chart"}} class="selected"{{end}}>Chart</a> |
<a href="{{.TableTab}}"{{if eq .Tab "table"}} class="selected"{{end}}>Table</a> |
<a href="{{.ThemeToggle}}">{{if eq .Theme "dark"}}Light{{else}}Dark{{end}} theme</a>
</nav>
{{with .Notice}}<p class="{{if .Error}}error{{else}}notice{{end}}">{{.Text}}</p>{{end}}
<form method="post" action="/">
<input type="hidden" name="theme" value="{{.Theme}}">
<input type="hidden" name="tab" value="{{.Tab}}">
<textarea name="raw">{{.Raw}}</textarea>
{{with .ParseError}}<p class="error">{{.}}</p>{{end}}
<p>
<button type="submit" name="action" value="parse">Show</button>
<button type="submit" name="action" value="clear">Clear</button>
</p>
{{if .Names}}
<fieldset>
<legend>Benchmarks</legend>
<input type="hidden" name="filtered" value="1">
{{range .Names}}<label><input type="checkbox" name="name" value="{{.Name}}"{{if .Checked}} checked{{end}}> {{.Name}}</label>
{{end}}
<button type="submit" name="action" value="filter">Apply filter</button>
</fieldset>
{{end}}
{{if .ProfilesEnabled}}
<p>
<input type="text" name="profile_name" value="">
<button type="submit" name="action" value="save">Save profile</button>
{{if .Profiles}}
<select name="profile">
<option value="">Saved profiles</option>
{{range .Profiles}}<option value="{{.}}">{{.}}</option>
{{end}}
</select>
<button type="submit" name="action" value="load">Load</button>
{{end}}
</p>
{{end}}
</form>
<p>Share: <a href="{{.ShareLink}}">link to this document</a></p>
{{if eq .Tab "table"}}
{{.Table}}
{{else}}
<img src="{{.ChartURL}}" alt="benchmark chart">
{{end}}
</body>
</html>
`

var pageTemplate = template.Must(template.New("page").Parse(pageSource))

type notice struct {
	Error bool
	Text  string
}

type nameOption struct {
	Name    string
	Checked bool
}

type pageData struct {
	Theme, Tab string
	Raw        string
	ParseError string
	Notice     *notice
	Names      []nameOption

	ProfilesEnabled bool
	Profiles        []string

	ShareLink   string
	ChartTab    string
	TableTab    string
	ThemeToggle string
	ChartURL    string
	Table       safehtml.HTML
}

// index serves the viewer page.
func (a *App) index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead && r.Method != http.MethodPost {
		http.Error(w, "/ must be called with GET or POST", http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()
	s, n := a.session(r)

	if r.Method == http.MethodPost && r.PostForm.Get("action") == "save" {
		n = a.save(r, s)
	}

	theme := "light"
	if r.FormValue("theme") == "dark" {
		theme = "dark"
	}
	tab := "chart"
	if r.FormValue("tab") == "table" {
		tab = "table"
	}

	data := &pageData{
		Theme:           theme,
		Tab:             tab,
		Raw:             s.Raw(),
		Notice:          n,
		ProfilesEnabled: a.Profiles != nil,
		Profiles:        s.Profiles(),
	}
	if tab == "chart" {
		data.ChartURL = a.chartSrc(ctx, s, theme)
	}
	if err := s.Err(); err != nil {
		data.ParseError = err.Error()
	}
	f := s.Filter()
	for _, name := range s.Benchmarks().Names() {
		data.Names = append(data.Names, nameOption{name, f == nil || f.Has(name)})
	}

	link, err := s.ShareLink(a.shareBase(r))
	if err != nil {
		errorf(ctx, "building share link", err)
	}
	data.ShareLink = link
	data.ChartTab = pageLink(s, theme, "chart")
	data.TableTab = pageLink(s, theme, "table")
	data.ThemeToggle = pageLink(s, map[string]string{"dark": "light", "light": "dark"}[theme], tab)

	data.Table, err = table.HTML(table.Build(s.View(), f))
	if err != nil {
		errorf(ctx, "rendering table", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		errorf(ctx, "rendering page", err)
	}
}

// maxChartURL is the longest chart link the page refers to, well under
// http.DefaultMaxHeaderBytes. Charts of larger documents are embedded
// in the page as PNG data URLs.
const maxChartURL = 64 << 10

// chartSrc returns the image source of the chart of s.
func (a *App) chartSrc(ctx context.Context, s *benchview.Session, theme string) string {
	if u := chartURL(s, theme); len(u) <= maxChartURL {
		return u
	}
	var buf bytes.Buffer
	opts := chart.Options{Format: chart.PNG, Dark: theme == "dark"}
	if err := chart.Render(&buf, s.View(), s.Filter(), opts); err != nil {
		errorf(ctx, "rendering chart", err)
		return ""
	}
	a.Metrics.ObserveChart(string(chart.PNG))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

// save handles the save action of the page form.
func (a *App) save(r *http.Request, s *benchview.Session) *notice {
	name := r.PostForm.Get("profile_name")
	if strings.TrimSpace(name) == "" {
		return nil
	}
	err := s.SaveProfile(r.Context(), name)
	a.Metrics.ObserveProfileSave(err)
	if err != nil {
		errorf(r.Context(), "saving profile", err)
		return &notice{Error: true, Text: "Saving failed: " + err.Error()}
	}
	requestLog(r.Context()).Info("saved profile", zap.String("profile", name))
	return &notice{Text: "Saved profile " + name + "."}
}

// pageLink returns a page URL showing s with the given theme and tab.
func pageLink(s *benchview.Session, theme, tab string) string {
	q := url.Values{}
	q.Set(share.Param, s.Raw())
	filterQuery(q, s.Filter())
	q.Set("theme", theme)
	q.Set("tab", tab)
	return "/?" + q.Encode()
}
