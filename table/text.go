// Copyright 2026 The Benchmarkify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
)

// Text returns t laid out as a bordered text table.
func Text(t *Table) string {
	if len(t.Rows) == 0 {
		return "No benchmarks to show.\n"
	}
	rows := make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = r.Cells()
	}
	lt := ltable.New().
		Border(lipgloss.NormalBorder()).
		Headers(Headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == ltable.HeaderRow:
				return headerStyle
			case col >= 2:
				return numberStyle
			}
			return cellStyle
		})
	return lt.String() + "\n"
}

// FormatText writes t as a text table to w.
func FormatText(w io.Writer, t *Table) error {
	_, err := io.WriteString(w, Text(t))
	return err
}
