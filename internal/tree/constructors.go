package tree

import (
	"github.com/revyl/translate/internal/node"
)

// must panics with the grammar error returned by Build.
func must(k node.Kind, attrs Attrs, children ...any) node.Node {
	n, err := Build(k, attrs, children...)
	if err != nil {
		panic(err)
	}
	return n
}

// Text builds a plain text leaf.
func Text(children ...any) *node.Leaf {
	return must(node.KindText, Attrs{}, children...).(*node.Leaf)
}

// Subject builds a leaf naming the subject of a line (rendered bold).
func Subject(children ...any) *node.Leaf {
	return must(node.KindSubject, Attrs{}, children...).(*node.Leaf)
}

// Input builds a leaf holding user input.
func Input(children ...any) *node.Leaf {
	return must(node.KindInput, Attrs{}, children...).(*node.Leaf)
}

// Code builds an inline code leaf.
func Code(children ...any) *node.Leaf {
	return must(node.KindCode, Attrs{}, children...).(*node.Leaf)
}

// CodeBlock builds a code block from its source.
func CodeBlock(attrs Attrs, source ...any) *node.CodeBlock {
	return must(node.KindCodeBlock, attrs, source...).(*node.CodeBlock)
}

// Link builds a hyperlink. An empty value displays href.
func Link(href, value string) *node.Link {
	return must(node.KindLink, Attrs{Href: href, Value: value}).(*node.Link)
}

// Prop builds a property row.
func Prop(attrs Attrs) *node.Property {
	return must(node.KindProperty, attrs).(*node.Property)
}

// Props builds a properties table.
func Props(children ...any) *node.Properties {
	return must(node.KindProperties, Attrs{}, children...).(*node.Properties)
}

// Condition builds a condition wrapping properties or nested conditions.
func Condition(attrs Attrs, children ...any) *node.Condition {
	return must(node.KindCondition, attrs, children...).(*node.Condition)
}

// TestLine builds the outermost line wrapper.
func TestLine(attrs Attrs, children ...any) *node.TestLine {
	return must(node.KindTestLine, attrs, children...).(*node.TestLine)
}

// Result builds a test line result around a single test line.
func Result(attrs Attrs, children ...any) *node.TestLineResult {
	return must(node.KindTestLineResult, attrs, children...).(*node.TestLineResult)
}

// Catch runs fn and converts a grammar panic raised by the typed
// constructors into an error. Other panics propagate.
func Catch[T any](fn func() T) (out T, err error) {
	defer func() {
		if r := recover(); r != nil {
			ge, ok := r.(*node.GrammarError)
			if !ok {
				panic(r)
			}
			err = ge
		}
	}()
	return fn(), nil
}
