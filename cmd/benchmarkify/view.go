// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/benchmarkify/benchmarkify/benchview"
	"github.com/benchmarkify/benchmarkify/chart"
	"github.com/benchmarkify/benchmarkify/table"
)

func (c *cli) viewCmd() *cobra.Command {
	var (
		format    string
		names     []string
		chartFile string
	)
	cmd := &cobra.Command{
		Use:   "view [file|-]",
		Short: "Print the summary table of a benchmark document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			s := benchview.NewSession(benchview.Options{Log: c.log})
			s.SetRaw(raw)
			if err := s.Err(); err != nil {
				return err
			}
			if cmd.Flags().Changed("name") {
				s.SetFilter(benchview.NewFilter(names...))
			}

			if chartFile != "" {
				if err := writeChart(chartFile, s); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			switch format {
			case "text":
				return table.FormatText(out, table.Build(s.View(), s.Filter()))
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(s.View())
			case "yaml":
				return writeYAML(out, table.Build(s.View(), s.Filter()))
			}
			return fmt.Errorf("unknown output format %q", format)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&format, "output", "o", "text", "output `format`: text, json or yaml")
	f.StringArrayVar(&names, "name", nil, "show only the benchmark `name` (repeatable)")
	f.StringVar(&chartFile, "chart", "", "also write the chart to `file` (.png or .svg)")
	return cmd
}

func writeChart(file string, s *benchview.Session) error {
	var format chart.Format
	switch strings.ToLower(filepath.Ext(file)) {
	case ".png":
		format = chart.PNG
	case ".svg":
		format = chart.SVG
	default:
		return fmt.Errorf("chart %s: want a .png or .svg file", file)
	}
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := chart.Render(f, s.View(), s.Filter(), chart.Options{Format: format}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// yamlRow is the YAML form of a table row.
type yamlRow struct {
	Benchmark string   `yaml:"benchmark"`
	Metric    string   `yaml:"metric"`
	Sampled   bool     `yaml:"sampled,omitempty"`
	Min       float64  `yaml:"min"`
	Median    float64  `yaml:"median"`
	Max       float64  `yaml:"max"`
	Mean      *float64 `yaml:"mean,omitempty"`
	StdDev    *float64 `yaml:"stddev,omitempty"`
	Runs      int      `yaml:"runs"`
}

func writeYAML(w io.Writer, t *table.Table) error {
	rows := make([]yamlRow, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = yamlRow{
			Benchmark: r.Benchmark,
			Metric:    r.Metric,
			Sampled:   r.Sampled,
			Min:       r.Min,
			Median:    r.Median,
			Max:       r.Max,
			Runs:      r.Runs,
		}
		if r.Runs > 0 {
			mean, sd := r.Mean, r.StdDev
			rows[i].Mean, rows[i].StdDev = &mean, &sd
		}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rows); err != nil {
		return err
	}
	return enc.Close()
}
