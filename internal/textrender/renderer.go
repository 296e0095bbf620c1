// Package textrender renders test line trees as plain or ANSI formatted text.
//
// Inline content is wrapped greedily to a fixed column width, properties are
// laid out as aligned columns and nested conditions are indented by two
// spaces per level. Formatting only adds escape sequences around leaf text:
// stripping them from formatted output always yields the plain output.
package textrender

import (
	"strings"

	"github.com/revyl/translate/internal/node"
	"github.com/revyl/translate/internal/status"
)

// DefaultWidth is the column width used to wrap inline content.
const DefaultWidth = 60

const indent = "  "

// Renderer renders trees to text. The zero value is not usable; use New.
type Renderer struct {
	width     int
	formatted bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithWidth sets the wrapping width. Values below 1 are ignored.
func WithWidth(width int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.width = width
		}
	}
}

// WithFormatting enables ANSI escape sequences.
func WithFormatting(formatted bool) Option {
	return func(r *Renderer) {
		r.formatted = formatted
	}
}

// New creates a Renderer with the default width and no formatting.
func New(opts ...Option) *Renderer {
	r := &Renderer{width: DefaultWidth}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render renders n with the default width.
func Render(n node.Node, formatted bool) string {
	return New(WithFormatting(formatted)).Render(n)
}

// Render renders n. It panics with a *node.UnsupportedError when n contains
// a property outside of a properties node or a node kind it does not know.
func (r *Renderer) Render(n node.Node) string {
	switch v := n.(type) {
	case *node.Leaf, *node.Link:
		return r.inlineBlock(r.spans([]node.Inline{v.(node.Inline)}, status.None))
	case *node.CodeBlock:
		return joinLines(r.codeBlockLines(v))
	case *node.Properties:
		return r.renderProperties(v)
	case *node.Property:
		panic(&node.UnsupportedError{Kind: v.Kind(), Renderer: "text", Context: "outside of props"})
	case *node.Condition:
		return r.block(v.Title, v.Status, v.Children)
	case *node.TestLine:
		return r.block(v.Title, v.Status, v.Children)
	case *node.TestLineResult:
		return r.result(v)
	default:
		panic(&node.UnsupportedError{Kind: node.KindOf(n), Renderer: "text"})
	}
}

// block renders a condition or test line: the status icon and title, then
// every child indented one level.
func (r *Renderer) block(title []node.Inline, st status.Status, children []node.Node) string {
	var b strings.Builder
	b.WriteString(r.inlineBlock(append(iconSpans(st), r.spans(title, status.None)...)))
	for _, child := range children {
		b.WriteString(indentLines(r.Render(child), indent))
	}
	return b.String()
}

// result renders the test line, the status-prefixed message and the
// screenshot URL, skipping absent parts.
func (r *Renderer) result(res *node.TestLineResult) string {
	parts := []string{strings.TrimSuffix(r.Render(res.Child), "\n")}
	if len(res.Message) > 0 {
		message := r.inlineBlock(append(iconSpans(res.Status), r.spans(res.Message, res.Status)...))
		parts = append(parts, strings.TrimSuffix(indentLines(message, indent), "\n"))
	}
	if res.Screenshot != "" {
		parts = append(parts, "screenshot: "+res.Screenshot)
	}

	nonEmpty := parts[:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	if len(nonEmpty) == 0 {
		return ""
	}
	return strings.Join(nonEmpty, "\n") + "\n"
}

// inlineBlock wraps spans and returns the newline terminated lines.
func (r *Renderer) inlineBlock(spans []span) string {
	lines, _ := wrap(spans, r.width)
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, r.line(l))
	}
	return joinLines(out)
}

func (r *Renderer) codeBlockLines(cb *node.CodeBlock) []string {
	var out []string
	if len(cb.Title) > 0 {
		lines, _ := wrap(r.spans(cb.Title, status.None), r.width)
		for _, l := range lines {
			out = append(out, r.line(l))
		}
	}
	for _, src := range strings.Split(cb.Value, "\n") {
		out = append(out, r.paint(codeBlockStyle, src))
	}
	return out
}

// spans converts inline nodes into styled spans. Plain text leaves take the
// color of inherit when it is set.
func (r *Renderer) spans(in []node.Inline, inherit status.Status) []span {
	out := make([]span, 0, len(in))
	for _, i := range in {
		switch v := i.(type) {
		case *node.Leaf:
			s := style{kind: v.Kind(), status: v.Status}
			if s.status == status.None && v.Kind() == node.KindText {
				s.status = inherit
			}
			out = append(out, span{text: v.Value, style: s})
		case *node.Link:
			out = append(out, span{text: v.Text(), style: style{kind: node.KindLink}})
			if v.Value != "" && v.Value != v.Href {
				out = append(out, span{text: " (" + v.Href + ")", style: plainStyle})
			}
		default:
			panic(&node.UnsupportedError{Kind: node.KindOf(i), Renderer: "text", Context: "inline"})
		}
	}
	return out
}

func iconSpans(st status.Status) []span {
	prefix := status.Prefix(st)
	if prefix == "" {
		return nil
	}
	return []span{{text: prefix, style: style{kind: node.KindText, status: st}}}
}

func (r *Renderer) line(l line) string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(r.paint(s.style, s.text))
	}
	return b.String()
}

func (r *Renderer) paint(s style, text string) string {
	if !r.formatted {
		return text
	}
	return paint(s, text)
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// indentLines prefixes every line of a newline terminated block.
func indentLines(s, prefix string) string {
	if s == "" {
		return ""
	}
	lines := strings.SplitAfter(s, "\n")
	var b strings.Builder
	for _, l := range lines {
		if l == "" {
			continue
		}
		b.WriteString(prefix)
		b.WriteString(l)
	}
	return b.String()
}
