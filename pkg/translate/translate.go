// Package translate provides a public API for turning test lines and their
// execution results into readable text or HTML.
//
// Example usage:
//
//	tr, err := translate.New(translate.WithConfigFile(".revyl/translate.yaml"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	line, err := translate.ParseLine([]byte(`{"type":"openApp"}`))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	text, err := tr.LineText(line)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(text)
package translate

import (
	"fmt"

	"github.com/revyl/translate/internal/config"
	"github.com/revyl/translate/internal/htmlrender"
	"github.com/revyl/translate/internal/node"
	"github.com/revyl/translate/internal/textrender"
	"github.com/revyl/translate/internal/translate"
)

type (
	// Line is a test line definition.
	Line = translate.TestLine

	// Condition is a condition checked by a line.
	Condition = translate.Condition

	// Context resolves element and snippet names and app variables.
	Context = translate.Context

	// AppConfig is the application a test runs against.
	AppConfig = translate.AppConfig

	// Node is the root of a translated document tree.
	Node = node.Node
)

// Sentinel errors callers can match with errors.Is.
var (
	ErrUnknownLineType  = translate.ErrUnknownLineType
	ErrUnknownCondition = translate.ErrUnknownCondition
	ErrInvalidLine      = translate.ErrInvalidLine
	ErrInvalidResult    = translate.ErrInvalidResult
	ErrGrammar          = node.ErrGrammar
	ErrUnsupported      = node.ErrUnsupported
)

// ParseLine decodes a line definition from JSON or YAML.
func ParseLine(data []byte) (Line, error) {
	return translate.ParseLine(data)
}

// ParseLines decodes a list of line definitions from JSON or YAML.
func ParseLines(data []byte) ([]Line, error) {
	return translate.ParseLines(data)
}

// Translator translates and renders test lines.
type Translator struct {
	ctx       Context
	width     int
	formatted bool
}

// Option configures a Translator.
type Option func(*Translator) error

// WithContext sets the names and variables used while translating.
func WithContext(ctx Context) Option {
	return func(t *Translator) error {
		t.ctx = ctx
		return nil
	}
}

// WithWidth sets the text render width in columns.
func WithWidth(width int) Option {
	return func(t *Translator) error {
		if width <= 0 {
			return fmt.Errorf("width must be positive, got %d", width)
		}
		t.width = width
		return nil
	}
}

// WithFormatting enables ANSI styling of text output.
func WithFormatting(formatted bool) Option {
	return func(t *Translator) error {
		t.formatted = formatted
		return nil
	}
}

// WithConfigFile applies the width, format and context of a translate.yaml
// file. An "auto" format renders plain text.
func WithConfigFile(path string) Option {
	return func(t *Translator) error {
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		t.ctx = cfg.Context()
		t.width = cfg.Width
		t.formatted = cfg.Formatted(false)
		return nil
	}
}

// New creates a Translator.
//
// Parameters:
//   - opts: Options applied in order
//
// Returns:
//   - *Translator: The configured translator
//   - error: The first option error
func New(opts ...Option) (*Translator, error) {
	t := &Translator{width: textrender.DefaultWidth}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Line translates a line definition.
func (t *Translator) Line(line Line) (Node, error) {
	n, err := translate.TranslateLine(line, t.ctx)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// Result translates a line together with its JSON execution result.
func (t *Translator) Result(line Line, raw []byte) (Node, error) {
	n, err := translate.TranslateResult(line, raw, t.ctx)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// Text renders a tree as text.
func (t *Translator) Text(n Node) (string, error) {
	r := textrender.New(textrender.WithWidth(t.width), textrender.WithFormatting(t.formatted))
	return render(func() string { return r.Render(n) })
}

// HTML renders a tree as an HTML fragment.
func (t *Translator) HTML(n Node) (string, error) {
	return render(func() string { return htmlrender.Render(n) })
}

// LineText translates and renders a line definition as text.
func (t *Translator) LineText(line Line) (string, error) {
	n, err := t.Line(line)
	if err != nil {
		return "", err
	}
	return t.Text(n)
}

// LineHTML translates and renders a line definition as HTML.
func (t *Translator) LineHTML(line Line) (string, error) {
	n, err := t.Line(line)
	if err != nil {
		return "", err
	}
	return t.HTML(n)
}

// render converts a renderer's unsupported-node panic into an error.
func render(fn func() string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			ue, ok := r.(*node.UnsupportedError)
			if !ok {
				panic(r)
			}
			err = ue
		}
	}()
	return fn(), nil
}
