package node

import (
	"errors"
	"fmt"
)

// ErrGrammar is matched by every tree construction error.
var ErrGrammar = errors.New("grammar violation")

// ErrUnsupported is matched by every renderer exhaustiveness error.
var ErrUnsupported = errors.New("unsupported node")

// GrammarError reports a structural violation found while building a node.
// It always indicates a bug in the code assembling the tree.
type GrammarError struct {
	Kind   Kind
	Reason string
}

func (e *GrammarError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrGrammar, e.Kind, e.Reason)
}

func (e *GrammarError) Unwrap() error { return ErrGrammar }

// Grammarf returns a *GrammarError for kind k.
func Grammarf(k Kind, format string, args ...any) *GrammarError {
	return &GrammarError{Kind: k, Reason: fmt.Sprintf(format, args...)}
}

// UnsupportedError reports a node that a renderer cannot handle in the
// context it was found in.
type UnsupportedError struct {
	Kind     Kind
	Renderer string
	Context  string
}

func (e *UnsupportedError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s renderer: %q %s", ErrUnsupported, e.Renderer, e.Kind, e.Context)
	}
	return fmt.Sprintf("%s: %s renderer: %q", ErrUnsupported, e.Renderer, e.Kind)
}

func (e *UnsupportedError) Unwrap() error { return ErrUnsupported }

// KindOf returns n.Kind(), or "<nil>" for a nil node.
func KindOf(n Node) Kind {
	if n == nil {
		return "<nil>"
	}
	return n.Kind()
}
