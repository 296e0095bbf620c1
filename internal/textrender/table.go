package textrender

import (
	"strings"

	"github.com/revyl/translate/internal/node"
	"github.com/revyl/translate/internal/status"
)

const (
	columns     = 3
	gutter      = " "
	actualArrow = "→"
)

type cell struct {
	lines []line
	width int
}

// tableRow is either a three column row or, for code block expected
// values, a block of full-width lines spanning every column.
type tableRow struct {
	cells [columns]cell
	full  []string
}

// renderProperties lays out every property of the block as one table whose
// column widths are shared by all rows.
func (r *Renderer) renderProperties(props *node.Properties) string {
	var rows []tableRow
	for _, p := range props.Children {
		rows = append(rows, r.propertyRows(p)...)
	}

	var widths [columns]int
	for _, row := range rows {
		if row.full != nil {
			continue
		}
		for i, c := range row.cells {
			widths[i] = max(widths[i], c.width)
		}
	}

	var b strings.Builder
	for _, row := range rows {
		if row.full != nil {
			for _, l := range row.full {
				b.WriteString(l)
				b.WriteByte('\n')
			}
			continue
		}
		r.writeRow(&b, row, widths)
	}
	return b.String()
}

// propertyRows projects a property into its table rows: the name row, an
// optional full-width code block row and an optional actual value row.
func (r *Renderer) propertyRows(p *node.Property) []tableRow {
	name := append(iconSpans(p.Status), r.spans(p.Name, status.None)...)
	main := tableRow{}
	main.cells[0] = r.cell(name)
	if p.Comparator != "" {
		main.cells[1] = cell{
			lines: []line{{{text: p.Comparator, style: plainStyle}}},
			width: measure.StringWidth(p.Comparator),
		}
	}

	if p.ContentType == node.ContentBlock && p.ExpectedBlock != nil {
		return []tableRow{main, {full: r.codeBlockLines(p.ExpectedBlock)}}
	}

	main.cells[2] = r.cell(r.spans(p.Expected, status.None))
	rows := []tableRow{main}
	if p.Actual != nil {
		actual := tableRow{}
		actual.cells[1] = cell{
			lines: []line{{{text: actualArrow, style: plainStyle}}},
			width: measure.StringWidth(actualArrow),
		}
		actual.cells[2] = r.cell([]span{{text: *p.Actual, style: plainStyle}})
		rows = append(rows, actual)
	}
	return rows
}

func (r *Renderer) cell(spans []span) cell {
	if len(spans) == 0 {
		return cell{}
	}
	lines, width := wrap(spans, r.width)
	return cell{lines: lines, width: width}
}

// writeRow emits a row over as many lines as its tallest cell. Columns are
// padded to their shared width up to the last cell holding visible content
// on that line, so no line ends in padding; empty columns are skipped
// entirely.
func (r *Renderer) writeRow(b *strings.Builder, row tableRow, widths [columns]int) {
	height := 1
	for _, c := range row.cells {
		height = max(height, len(c.lines))
	}

	for n := 0; n < height; n++ {
		last := -1
		for i, c := range row.cells {
			if widths[i] > 0 && n < len(c.lines) && c.lines[n].width() > 0 {
				last = i
			}
		}

		first := true
		for i := 0; i <= last; i++ {
			if widths[i] == 0 {
				continue
			}
			if !first {
				b.WriteString(gutter)
			}
			first = false

			var l line
			if n < len(row.cells[i].lines) {
				l = row.cells[i].lines[n]
			}
			b.WriteString(r.line(l))
			if i != last {
				b.WriteString(strings.Repeat(" ", widths[i]-l.width()))
			}
		}
		b.WriteByte('\n')
	}
}
