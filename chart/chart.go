// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart draws a benchmark view as a grouped bar chart.
//
// Each entry of the view is a group on the X axis and each metric is a
// bar in that group, at the metric's median. A whisker over each bar
// spans the metric's minimum and maximum.
package chart

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/benchmarkify/benchmarkify/benchdoc"
	"github.com/benchmarkify/benchmarkify/benchview"
)

// A Format is an output image format.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

// ContentType returns the MIME type of images in format f.
func (f Format) ContentType() string {
	if f == SVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// Options controls the rendered image. Zero fields take defaults.
type Options struct {
	Format Format
	Width  vg.Length // Default 20cm
	Height vg.Length // Default 12cm
	DPI    int       // PNG only; default 96
	Dark   bool      // Light text on a dark background
}

// Titles of charts with nothing to draw.
const (
	EmptyTitle     = "no benchmarks"
	NoMetricsTitle = "no metrics"
)

const barWidth = 12

// Plot builds the chart of view. filter, if not nil, is named in the
// title.
func Plot(view benchdoc.Collection, filter *benchview.Filter) *plot.Plot {
	pl := plot.New()
	metrics := view.MetricNames()
	if len(view) == 0 || len(metrics) == 0 {
		pl.Title.Text = EmptyTitle
		if len(view) > 0 {
			pl.Title.Text = NoMetricsTitle
		}
		pl.X.Min, pl.X.Max = 0, 1
		pl.Y.Min, pl.Y.Max = 0, 1
		pl.HideAxes()
		return pl
	}

	pl.Title.Text = "All benchmarks"
	if filter != nil {
		pl.Title.Text = "Filtered: " + strings.Join(filter.Names(), ", ")
	}
	pl.Y.Label.Text = "median"
	pl.Y.Min = 0
	pl.Legend.Top = true

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	pl.Add(grid)

	labels := make([]string, len(view))
	for i, e := range view {
		labels[i] = e.Name
	}

	w := vg.Points(barWidth)
	for j, name := range metrics {
		medians := make(plotter.Values, len(view))
		r := &rangeBars{
			lo:     make([]float64, len(view)),
			hi:     make([]float64, len(view)),
			offset: w * vg.Length(float64(j)-float64(len(metrics)-1)/2),
			color:  plotutil.Color(j),
		}
		for i, e := range view {
			m, ok := e.Metric(name)
			if !ok {
				r.lo[i], r.hi[i] = math.NaN(), math.NaN()
				continue
			}
			medians[i] = m.Median
			r.lo[i], r.hi[i] = m.Minimum, m.Maximum
		}
		bars, err := plotter.NewBarChart(medians, w)
		if err != nil {
			// Only non-finite medians get here; leave them out.
			continue
		}
		bars.Offset = r.offset
		bars.Color = plotutil.Color(j)
		bars.LineStyle.Width = 0
		pl.Add(bars, r)
		pl.Legend.Add(name, bars)
	}
	pl.NominalX(labels...)
	return pl
}

// Render draws the chart of view to w.
func Render(w io.Writer, view benchdoc.Collection, filter *benchview.Filter, opts Options) error {
	if opts.Width == 0 {
		opts.Width = 20 * vg.Centimeter
	}
	if opts.Height == 0 {
		opts.Height = 12 * vg.Centimeter
	}
	if opts.DPI == 0 {
		opts.DPI = 96
	}

	pl := Plot(view, filter)
	bg := color.Color(color.White)
	if opts.Dark {
		bg = color.Gray{Y: 0x22}
		darken(pl)
	}
	pl.BackgroundColor = bg

	var can vg.CanvasWriterTo
	switch opts.Format {
	case PNG, "":
		can = vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(opts.Width, opts.Height),
			vgimg.UseDPI(opts.DPI), vgimg.UseBackgroundColor(bg))}
	case SVG:
		can = vgsvg.New(opts.Width, opts.Height)
	default:
		return fmt.Errorf("chart: unknown format %q", opts.Format)
	}
	pl.Draw(draw.New(can))
	if _, err := can.WriteTo(w); err != nil {
		return fmt.Errorf("chart: writing %s: %w", opts.Format, err)
	}
	return nil
}

func darken(pl *plot.Plot) {
	fg := color.Gray{Y: 0xdd}
	pl.Title.TextStyle.Color = fg
	pl.Legend.TextStyle.Color = fg
	for _, a := range []*plot.Axis{&pl.X, &pl.Y} {
		a.Color = fg
		a.Label.TextStyle.Color = fg
		a.Tick.Color = fg
		a.Tick.Label.Color = fg
	}
}

// rangeBars draws min/max whiskers aligned with the bars of one
// metric.
type rangeBars struct {
	lo, hi []float64
	offset vg.Length
	color  color.Color
}

func (r *rangeBars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	sty := draw.LineStyle{Color: r.color, Width: vg.Points(1)}
	tip := vg.Points(barWidth / 4)
	for i := range r.lo {
		if math.IsNaN(r.lo[i]) || math.IsNaN(r.hi[i]) {
			continue
		}
		x := trX(float64(i)) + r.offset
		lo, hi := trY(r.lo[i]), trY(r.hi[i])
		c.StrokeLines(sty,
			[]vg.Point{{X: x, Y: lo}, {X: x, Y: hi}},
			[]vg.Point{{X: x - tip, Y: hi}, {X: x + tip, Y: hi}},
			[]vg.Point{{X: x - tip, Y: lo}, {X: x + tip, Y: lo}})
	}
}

// DataRange implements plot.DataRanger.
func (r *rangeBars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = 0, float64(len(r.lo)-1)
	ymin, ymax = math.Inf(1), math.Inf(-1)
	for i := range r.lo {
		if math.IsNaN(r.lo[i]) || math.IsNaN(r.hi[i]) {
			continue
		}
		ymin = math.Min(ymin, r.lo[i])
		ymax = math.Max(ymax, r.hi[i])
	}
	if ymin > ymax {
		ymin, ymax = 0, 0
	}
	return
}
