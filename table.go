package termlog

import (
	"io"
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// Table accumulates a header and rows and renders them as a bordered ASCII grid:
//
//	+------+-----+
//	| name | age |
//	+------+-----+
//	| bob  | 42  |
//	+------+-----+
//
// Column widths are display widths, so cells may carry escape sequences or
// wide runes. A Table writes to whatever writer it is given and takes no lock.
type Table struct {
	headers  []string
	rows     [][]string
	maxWidth int
}

// NewTable creates a table with the given header cells; no headers is allowed.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// AddRow appends a row. Rows may have differing lengths; short rows are padded
// with empty cells when rendered.
func (t *Table) AddRow(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// SetMaxColumnWidth truncates cells wider than n with an ellipsis. Zero disables truncation.
func (t *Table) SetMaxColumnWidth(n int) *Table {
	if n >= 0 {
		t.maxWidth = n
	}
	return t
}

// Len returns the number of body rows.
func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) cell(s string) string {
	if t.maxWidth > 0 && xansi.StringWidth(s) > t.maxWidth {
		return xansi.Truncate(s, t.maxWidth, "…")
	}
	return s
}

func (t *Table) columnWidths() []int {
	var widths []int
	measure := func(row []string) {
		for len(widths) < len(row) {
			widths = append(widths, 0)
		}
		for i, c := range row {
			if w := xansi.StringWidth(t.cell(c)); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(t.headers)
	for _, row := range t.rows {
		measure(row)
	}
	return widths
}

func border(widths []int) string {
	var b strings.Builder
	b.WriteByte('+')
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteByte('+')
	}
	b.WriteByte('\n')
	return b.String()
}

func (t *Table) line(row []string, widths []int) string {
	var b strings.Builder
	b.WriteByte('|')
	for i, w := range widths {
		c := ""
		if i < len(row) {
			c = t.cell(row[i])
		}
		b.WriteByte(' ')
		b.WriteString(c)
		b.WriteString(strings.Repeat(" ", w-xansi.StringWidth(c)))
		b.WriteString(" |")
	}
	b.WriteByte('\n')
	return b.String()
}

// String renders the table. An empty table renders as an empty string.
func (t *Table) String() string {
	if len(t.headers) == 0 && len(t.rows) == 0 {
		return ""
	}
	widths := t.columnWidths()
	sep := border(widths)

	var b strings.Builder
	b.WriteString(sep)
	if len(t.headers) > 0 {
		b.WriteString(t.line(t.headers, widths))
		b.WriteString(sep)
	}
	for _, row := range t.rows {
		b.WriteString(t.line(row, widths))
	}
	if len(t.rows) > 0 {
		b.WriteString(sep)
	}
	return b.String()
}

// WriteTo writes the rendered table to w.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.String())
	return int64(n), err
}
