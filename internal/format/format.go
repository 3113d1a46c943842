// Package format renders command output as terminal or Markdown tables.
package format

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Mode controls the output format.
type Mode int

const (
	ASCII    Mode = iota // box-drawn terminal tables
	Markdown             // GitHub-flavoured Markdown tables
)

// ParseMode maps "text"/"ascii" and "markdown"/"md" to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "", "text", "ascii":
		return ASCII, true
	case "markdown", "md":
		return Markdown, true
	default:
		return ASCII, false
	}
}

// Table is a table built once and rendered in the Mode chosen at creation.
type Table struct {
	writer table.Writer
	mode   Mode
}

// NewTable returns an empty table rendering in m.
func NewTable(m Mode) *Table {
	w := table.NewWriter()
	if m == ASCII {
		w.SetStyle(table.StyleLight)
	}

	return &Table{writer: w, mode: m}
}

// Header sets the column headers.
func (t *Table) Header(cols ...string) {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	t.writer.AppendHeader(row)
}

// Row appends a data row.
func (t *Table) Row(vals ...any) {
	t.writer.AppendRow(table.Row(vals))
}

// Footer appends a footer row, e.g. totals.
func (t *Table) Footer(vals ...any) {
	t.writer.AppendFooter(table.Row(vals))
}

// AlignRight right-aligns the given 1-based columns.
func (t *Table) AlignRight(columns ...int) {
	cfgs := make([]table.ColumnConfig, len(columns))
	for i, n := range columns {
		cfgs[i] = table.ColumnConfig{Number: n, Align: text.AlignRight, AlignFooter: text.AlignRight}
	}
	t.writer.SetColumnConfigs(cfgs)
}

// String renders the table.
func (t *Table) String() string {
	if t.mode == Markdown {
		return t.writer.RenderMarkdown()
	}

	return t.writer.Render()
}
