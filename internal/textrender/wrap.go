package textrender

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// measure ignores the locale so layout is identical on every machine.
var measure = &runewidth.Condition{}

// span is a run of text painted with one style. Splitting a span keeps its
// style on both halves.
type span struct {
	text  string
	style style
}

type line []span

func (l line) width() int {
	w := 0
	for _, s := range l {
		w += measure.StringWidth(s.text)
	}
	return w
}

// wrap greedily packs spans onto lines of at most width columns. A span that
// overflows the remaining room is split at the exact column boundary, not at
// a word boundary, and the remainder continues on the next line (splitting
// again if needed). Newlines inside a span force a line break. wrap returns
// the lines and the widest line actually used.
func wrap(spans []span, width int) ([]line, int) {
	if width < 1 {
		width = 1
	}
	lines := []line{nil}
	used := 0
	add := func(s span, w int) {
		lines[len(lines)-1] = append(lines[len(lines)-1], s)
		used += w
	}
	breakLine := func() {
		lines = append(lines, nil)
		used = 0
	}

	for _, sp := range spans {
		for i, part := range strings.Split(sp.text, "\n") {
			if i > 0 {
				breakLine()
			}
			rest := part
			for {
				w := measure.StringWidth(rest)
				if w <= width-used {
					add(span{text: rest, style: sp.style}, w)
					break
				}
				if used == width {
					breakLine()
					continue
				}
				head, tail := splitAt(rest, width-used)
				if head == "" {
					// The next rune is wider than the room left.
					if used > 0 {
						breakLine()
						continue
					}
					head, tail = splitFirstRune(rest)
				}
				add(span{text: head, style: sp.style}, measure.StringWidth(head))
				if tail == "" {
					break
				}
				breakLine()
				rest = tail
			}
		}
	}

	maxWidth := 0
	for _, l := range lines {
		maxWidth = max(maxWidth, l.width())
	}
	return lines, maxWidth
}

// splitAt splits s after the last rune that still fits in cols columns.
func splitAt(s string, cols int) (string, string) {
	w := 0
	for i, r := range s {
		rw := measure.RuneWidth(r)
		if w+rw > cols {
			return s[:i], s[i:]
		}
		w += rw
	}
	return s, ""
}

func splitFirstRune(s string) (string, string) {
	for i := range s {
		if i > 0 {
			return s[:i], s[i:]
		}
	}
	return s, ""
}
