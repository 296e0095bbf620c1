package node

import "strings"

// Walk visits n and its descendants depth-first. Returning false from fn
// skips the children of the visited node.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range Children(n) {
		Walk(child, fn)
	}
}

// Children returns every direct child node of n, including title, name,
// message and expected value inlines.
func Children(n Node) []Node {
	var out []Node
	appendInlines := func(in []Inline) {
		for _, i := range in {
			out = append(out, i)
		}
	}

	switch v := n.(type) {
	case *CodeBlock:
		appendInlines(v.Title)
	case *Property:
		appendInlines(v.Name)
		appendInlines(v.Expected)
		if v.ExpectedBlock != nil {
			out = append(out, v.ExpectedBlock)
		}
	case *Properties:
		for _, p := range v.Children {
			out = append(out, p)
		}
	case *Condition:
		appendInlines(v.Title)
		out = append(out, v.Children...)
	case *TestLine:
		appendInlines(v.Title)
		out = append(out, v.Children...)
	case *TestLineResult:
		if v.Child != nil {
			out = append(out, v.Child)
		}
		appendInlines(v.Message)
	}
	return out
}

// PlainText concatenates the unstyled text of an inline sequence.
func PlainText(in []Inline) string {
	var b strings.Builder
	for _, i := range in {
		switch v := i.(type) {
		case *Leaf:
			b.WriteString(v.Value)
		case *Link:
			b.WriteString(v.Text())
		}
	}
	return b.String()
}
