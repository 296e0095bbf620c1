package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const gap = "  "

// Table is a simple column-aligned table printed with the message styles.
type Table struct {
	Headers      []string
	Rows         [][]string
	MaxWidths    map[int]int
	ColumnStyles map[int]func(value string) lipgloss.Style
}

// NewTable creates a new table with the specified headers.
//
// Parameters:
//   - headers: Column header names
//
// Returns:
//   - *Table: A new table instance
func NewTable(headers ...string) *Table {
	return &Table{
		Headers:      headers,
		MaxWidths:    make(map[int]int),
		ColumnStyles: make(map[int]func(value string) lipgloss.Style),
	}
}

// AddRow adds a data row to the table.
func (t *Table) AddRow(values ...string) {
	t.Rows = append(t.Rows, values)
}

// SetMaxWidth sets the maximum display width of a column. Longer values
// are truncated with an ellipsis.
//
// Parameters:
//   - col: Column index (0-based)
//   - width: Maximum width in columns
func (t *Table) SetMaxWidth(col, width int) {
	t.MaxWidths[col] = width
}

func (t *Table) cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	if width, ok := t.MaxWidths[col]; ok {
		return runewidth.Truncate(row[col], width, "…")
	}
	return row[col]
}

func (t *Table) columnWidths() []int {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range t.Rows {
		for i := range t.Headers {
			if w := runewidth.StringWidth(t.cell(row, i)); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// SetColumnStyle styles the cells of a column by their value when the table
// is rendered. Widths are always measured on the unstyled text.
//
// Parameters:
//   - col: Column index (0-based)
//   - style: Returns the style for a cell value
func (t *Table) SetColumnStyle(col int, style func(value string) lipgloss.Style) {
	t.ColumnStyles[col] = style
}

// row returns the padded cells of a line. Cells after the last non-empty
// one are dropped and the last one is not padded.
func (t *Table) row(widths []int, cell func(int) string, style func(int, string) string) string {
	last := -1
	for i := range widths {
		if cell(i) != "" {
			last = i
		}
	}
	parts := make([]string, 0, last+1)
	for i := 0; i <= last; i++ {
		value := cell(i)
		padded := style(i, value)
		if i != last {
			padded += strings.Repeat(" ", widths[i]-runewidth.StringWidth(value))
		}
		parts = append(parts, padded)
	}
	return strings.Join(parts, gap)
}

func (t *Table) totalWidth(widths []int) int {
	total := len(gap) * (len(widths) - 1)
	for _, w := range widths {
		total += w
	}
	return total
}

func plain(_ int, value string) string { return value }

// Lines returns the unstyled table lines: header, separator and rows.
func (t *Table) Lines() []string {
	if len(t.Headers) == 0 {
		return nil
	}
	widths := t.columnWidths()
	lines := []string{
		t.row(widths, func(i int) string { return t.Headers[i] }, plain),
		strings.Repeat("─", t.totalWidth(widths)),
	}
	for _, r := range t.Rows {
		lines = append(lines, t.row(widths, func(i int) string { return t.cell(r, i) }, plain))
	}
	return lines
}

// Render prints the table. Headers are styled with TableHeaderStyle, cells
// with their column style or TableCellStyle.
func (t *Table) Render() {
	if len(t.Headers) == 0 {
		return
	}
	widths := t.columnWidths()
	header := func(_ int, value string) string { return TableHeaderStyle.Render(value) }
	cellStyle := func(i int, value string) string {
		if style, ok := t.ColumnStyles[i]; ok {
			return style(value).Render(value)
		}
		return TableCellStyle.Render(value)
	}

	emit(t.row(widths, func(i int) string { return t.Headers[i] }, header))
	emit(DimStyle.Render(strings.Repeat("─", t.totalWidth(widths))))
	for _, r := range t.Rows {
		emit(t.row(widths, func(i int) string { return t.cell(r, i) }, cellStyle))
	}
}
