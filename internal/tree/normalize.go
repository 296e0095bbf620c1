package tree

import (
	"github.com/revyl/translate/internal/node"
	"github.com/revyl/translate/internal/status"
)

// normalize applies the child normalization shared by every node kind:
// falsy children are discarded, nested slices are flattened, bare strings
// become leaves of stringKind and adjacent leaves of the same kind are merged.
func normalize(parent node.Kind, stringKind node.Kind, children []any) ([]node.Node, error) {
	flat := make([]node.Node, 0, len(children))
	if err := flatten(parent, stringKind, children, &flat); err != nil {
		return nil, err
	}
	return mergeLeaves(flat), nil
}

func flatten(parent node.Kind, stringKind node.Kind, children []any, out *[]node.Node) error {
	for _, child := range children {
		if err := flattenOne(parent, stringKind, child, out); err != nil {
			return err
		}
	}
	return nil
}

func flattenOne(parent node.Kind, stringKind node.Kind, child any, out *[]node.Node) error {
	switch v := child.(type) {
	case nil:
		return nil
	case bool:
		if !v {
			return nil
		}
		return node.Grammarf(parent, "boolean true is not a valid child")
	case string:
		*out = append(*out, node.NewLeaf(stringKind, v))
		return nil
	case []any:
		return flatten(parent, stringKind, v, out)
	case []string:
		for _, s := range v {
			*out = append(*out, node.NewLeaf(stringKind, s))
		}
		return nil
	case []node.Node:
		for _, n := range v {
			if err := flattenOne(parent, stringKind, n, out); err != nil {
				return err
			}
		}
		return nil
	case []node.Inline:
		for _, n := range v {
			if err := flattenOne(parent, stringKind, n, out); err != nil {
				return err
			}
		}
		return nil
	case []*node.Property:
		for _, n := range v {
			if err := flattenOne(parent, stringKind, n, out); err != nil {
				return err
			}
		}
		return nil
	case []*node.Condition:
		for _, n := range v {
			if err := flattenOne(parent, stringKind, n, out); err != nil {
				return err
			}
		}
		return nil
	case []*node.TestLine:
		for _, n := range v {
			if err := flattenOne(parent, stringKind, n, out); err != nil {
				return err
			}
		}
		return nil
	case node.Node:
		if isNilNode(v) {
			return nil
		}
		*out = append(*out, v)
		return nil
	default:
		return node.Grammarf(parent, "unsupported child of type %T", child)
	}
}

// isNilNode reports whether n is a typed nil pointer, which callers produce
// when a conditional constructor returns nothing.
func isNilNode(n node.Node) bool {
	switch v := n.(type) {
	case *node.Leaf:
		return v == nil
	case *node.CodeBlock:
		return v == nil
	case *node.Link:
		return v == nil
	case *node.Property:
		return v == nil
	case *node.Properties:
		return v == nil
	case *node.Condition:
		return v == nil
	case *node.TestLine:
		return v == nil
	case *node.TestLineResult:
		return v == nil
	}
	return false
}

// mergeLeaves concatenates adjacent leaves of identical kind and status.
// It never modifies the input leaves.
func mergeLeaves(in []node.Node) []node.Node {
	out := make([]node.Node, 0, len(in))
	for _, n := range in {
		leaf, ok := n.(*node.Leaf)
		if ok && len(out) > 0 {
			if prev, ok := out[len(out)-1].(*node.Leaf); ok && sameLeafKind(prev, leaf) {
				out[len(out)-1] = prev.WithValue(prev.Value + leaf.Value)
				continue
			}
		}
		out = append(out, n)
	}
	return out
}

func sameLeafKind(a, b *node.Leaf) bool {
	return a.Kind() == b.Kind() && a.Status == b.Status
}

// inlines normalizes v into an inline sequence for attribute field of kind
// parent. Strings become text leaves.
func inlines(parent node.Kind, field string, v any) ([]node.Inline, error) {
	nodes, err := normalize(parent, node.KindText, []any{v})
	if err != nil {
		return nil, err
	}
	return toInlines(parent, field, nodes)
}

// toInlines checks that every normalized node may appear inline.
func toInlines(parent node.Kind, field string, nodes []node.Node) ([]node.Inline, error) {
	out := make([]node.Inline, 0, len(nodes))
	for _, n := range nodes {
		in, ok := n.(node.Inline)
		if !ok {
			return nil, node.Grammarf(parent, "%s may only contain text, subject, input, code or link nodes, got %q", field, n.Kind())
		}
		out = append(out, in)
	}
	return out, nil
}

func checkStatus(k node.Kind, st status.Status) error {
	if !st.Valid() {
		return node.Grammarf(k, "unknown status %q", st)
	}
	return nil
}
