// Package table renders aligned text tables for terminal listings.
// Column widths are measured in display cells, so wide runes and block
// glyphs line up.
package table

import (
	"fmt"
	"io"
	"strings"

	"chardraw/internal/terminal"
)

// Alignment specifies how content is aligned within a column.
type Alignment int

const (
	// AlignLeft aligns content to the left.
	AlignLeft Alignment = iota
	// AlignRight aligns content to the right.
	AlignRight
)

// Column is a table column.
type Column struct {
	Header   string
	MinWidth int
	MaxWidth int // 0 means unlimited
	Align    Alignment
}

// Table collects rows and renders them under a header.
type Table struct {
	columns []Column
	rows    [][]string
	widths  []int
	styled  bool
}

// New creates a table with the given columns.
func New(columns ...Column) *Table {
	t := &Table{
		columns: columns,
		widths:  make([]int, len(columns)),
	}
	for i, col := range columns {
		t.widths[i] = max(terminal.StringWidth(col.Header), col.MinWidth)
	}
	return t
}

// Styled enables ANSI bold headers. Leave it off when writing to a file or pipe.
func (t *Table) Styled(on bool) *Table {
	t.styled = on
	return t
}

// AddRow appends a row. Missing values are blank and extra values are dropped.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.columns))
	copy(row, values)
	for i, val := range row {
		t.widths[i] = max(t.widths[i], terminal.StringWidth(val))
	}
	t.rows = append(t.rows, row)
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}

func (t *Table) finalWidths() []int {
	widths := make([]int, len(t.widths))
	for i, col := range t.columns {
		widths[i] = t.widths[i]
		if col.MaxWidth > 0 {
			widths[i] = min(widths[i], col.MaxWidth)
		}
	}
	return widths
}

// truncate shortens s to width cells, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if terminal.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return terminal.Truncate(s, width)
	}
	return terminal.Truncate(s, width-3) + "..."
}

func formatCell(value string, width int, align Alignment) string {
	value = truncate(value, width)
	pad := strings.Repeat(" ", max(width-terminal.StringWidth(value), 0))
	if align == AlignRight {
		return pad + value
	}
	return value + pad
}

func (t *Table) renderRow(values []string, widths []int) string {
	n := len(t.columns)
	for n > 0 && values[n-1] == "" {
		n--
	}
	parts := make([]string, n)
	for i, col := range t.columns[:n] {
		parts[i] = formatCell(values[i], widths[i], col.Align)
	}
	return strings.TrimRight(strings.Join(parts, " │ "), " ")
}

// RenderHeader returns the header row.
func (t *Table) RenderHeader() string {
	headers := make([]string, len(t.columns))
	for i, col := range t.columns {
		headers[i] = col.Header
	}
	h := t.renderRow(headers, t.finalWidths())
	if t.styled {
		return "\033[1m" + h + "\033[0m"
	}
	return h
}

// RenderSeparator returns the line between header and rows.
func (t *Table) RenderSeparator() string {
	widths := t.finalWidths()
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("─", w)
	}
	return strings.Join(parts, "─┼─")
}

// RenderRow returns the row at index, or "" when out of range.
func (t *Table) RenderRow(index int) string {
	if index < 0 || index >= len(t.rows) {
		return ""
	}
	return t.renderRow(t.rows[index], t.finalWidths())
}

// Render returns the complete table.
func (t *Table) Render() string {
	lines := []string{t.RenderHeader(), t.RenderSeparator()}
	for i := range t.rows {
		lines = append(lines, t.RenderRow(i))
	}
	return strings.Join(lines, "\n")
}

// Print writes the table to w, each line prefixed by indent.
func (t *Table) Print(w io.Writer, indent string) error {
	for _, line := range strings.Split(t.Render(), "\n") {
		if _, err := fmt.Fprintf(w, "%s%s\n", indent, line); err != nil {
			return err
		}
	}
	return nil
}
