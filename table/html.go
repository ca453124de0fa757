// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bytes"

	"github.com/google/safehtml"
	"github.com/google/safehtml/template"
)

const htmlSource = `
{{- if .Rows -}}
<table class='benchmarks'>
<thead><tr>{{range .Headers}}<th>{{.}}{{end}}</tr></thead>
<tbody>
{{range .Rows -}}
<tr{{if .Sampled}} class='sampled'{{end}}>{{range .Cells}}<td>{{.}}{{end}}</tr>
{{end -}}
</tbody>
</table>
{{- else -}}
<p class='empty'>No benchmarks to show.</p>
{{- end}}
`

var htmlTemplate = template.Must(template.New("table").Parse(htmlSource))

type htmlData struct {
	Headers []string
	Rows    []*Row
}

// FormatHTML appends an HTML formatting of t to buf.
func FormatHTML(buf *bytes.Buffer, t *Table) {
	err := htmlTemplate.Execute(buf, htmlData{Headers, t.Rows})
	if err != nil {
		// Only possible errors here are template not matching data structure.
		// Don't make caller check - it's our fault.
		panic(err)
	}
}

// HTML returns the HTML formatting of t.
func HTML(t *Table) (safehtml.HTML, error) {
	return htmlTemplate.ExecuteToHTML(htmlData{Headers, t.Rows})
}
