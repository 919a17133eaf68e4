// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Table prints a LineView as fixed-width columns, grounded on the teacher's
// termio.FormattedTable (Set/SetRow/Print, column widths tracked as cells
// are added) but holding plain strings rather than ANSI-formatted runes —
// this report has no colour, only rank/meter/stress/score/bounded columns.
type Table struct {
	headers []string
	widths  []int
	rows    [][]string
}

// NewTable constructs an empty table with the given column headers.
func NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}

	return &Table{headers: headers, widths: widths}
}

// AddRow appends one row. It panics if the row's column count does not
// match the header count, matching the teacher's own SetRow contract.
func (t *Table) AddRow(cells ...string) {
	if len(cells) != len(t.headers) {
		panic(fmt.Sprintf("report: table row has %d cells, want %d", len(cells), len(t.headers)))
	}

	for i, c := range cells {
		t.widths[i] = max(t.widths[i], clippedWidth(c, 0))
	}

	t.rows = append(t.rows, cells)
}

// clippedWidth returns len(s), capped at maxWidth when maxWidth > 0.
func clippedWidth(s string, maxWidth int) int {
	if maxWidth > 0 && len(s) > maxWidth {
		return maxWidth
	}

	return len(s)
}

// clip truncates s to at most n bytes; n <= 0 means unclipped.
func clip(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}

	return s[:n]
}

// pad right-pads s with spaces out to width n.
func pad(s string, n int) string {
	if len(s) >= n {
		return s
	}

	return s + strings.Repeat(" ", n-len(s))
}

// LineWidth returns the terminal's current column count, falling back to
// fallback when stdout is not a terminal (grounded on termio/terminal.go's
// direct use of golang.org/x/term for live terminal sizing).
func LineWidth(fallback int) int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}

	return w
}

// Print writes the table to w, clipping every column to maxColWidth when
// positive.
func (t *Table) Print(w io.Writer, maxColWidth int) {
	widths := make([]int, len(t.widths))
	for i, width := range t.widths {
		widths[i] = width
		if maxColWidth > 0 && widths[i] > maxColWidth {
			widths[i] = maxColWidth
		}
	}

	printRow(w, t.headers, widths, maxColWidth)
	printRow(w, separatorRow(widths), widths, maxColWidth)

	for _, row := range t.rows {
		printRow(w, row, widths, maxColWidth)
	}
}

func separatorRow(widths []int) []string {
	out := make([]string, len(widths))
	for i, width := range widths {
		out[i] = strings.Repeat("-", width)
	}

	return out
}

func printRow(w io.Writer, cells []string, widths []int, maxColWidth int) {
	var sb strings.Builder

	for i, c := range cells {
		cell := clip(c, maxColWidth)
		sb.WriteString(pad(cell, widths[i]))

		if i < len(cells)-1 {
			sb.WriteString(" | ")
		}
	}

	fmt.Fprintln(w, sb.String())
}

// RenderLineView writes view as a table of rank/meter/stress/score/bounded
// rows to w, sized to fit the current terminal width.
func RenderLineView(w io.Writer, view LineView) {
	if view.Unparseable {
		fmt.Fprintln(w, "(unparseable)")
		return
	}

	t := NewTable("rank", "meter", "stress", "score", "bounded")

	for _, p := range view.Parses {
		bounded := "no"
		if p.IsBounded {
			bounded = "yes"
		}

		t.AddRow(
			fmt.Sprintf("%d", p.Rank),
			p.ProminenceString,
			p.StressString,
			fmt.Sprintf("%.2f", p.Score),
			bounded,
		)
	}

	termWidth := LineWidth(100)
	colWidth := termWidth / len(t.headers)

	t.Print(w, colWidth)
}
