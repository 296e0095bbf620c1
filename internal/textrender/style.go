package textrender

import (
	"github.com/muesli/termenv"

	"github.com/revyl/translate/internal/node"
	"github.com/revyl/translate/internal/status"
)

// profile is fixed so formatted output is byte-identical on every terminal.
var profile = termenv.ANSI

// style identifies how a span is painted.
type style struct {
	kind   node.Kind
	status status.Status
}

var (
	plainStyle     = style{kind: node.KindText}
	codeBlockStyle = style{kind: node.KindCodeBlock}
)

var statusColors = map[status.Status]termenv.ANSIColor{
	status.Success:  termenv.ANSIGreen,
	status.Fail:     termenv.ANSIRed,
	status.Fatal:    termenv.ANSIRed,
	status.Warning:  termenv.ANSIYellow,
	status.Exit:     termenv.ANSIBlue,
	status.Excluded: termenv.ANSIBlue,
	status.Aborted:  termenv.ANSIMagenta,
}

// paint wraps text in the escape sequence for s followed by a reset.
// Plain text without a status is returned unchanged.
func paint(s style, text string) string {
	out := profile.String(text)
	if c, ok := statusColors[s.status]; ok {
		return out.Foreground(c).String()
	}
	switch s.kind {
	case node.KindSubject:
		return out.Foreground(termenv.ANSIGreen).String()
	case node.KindInput, node.KindLink:
		return out.Underline().String()
	case node.KindCode, node.KindCodeBlock:
		return out.Foreground(termenv.ANSICyan).String()
	default:
		return text
	}
}
