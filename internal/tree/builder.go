// Package tree builds validated test line document trees.
//
// Build is the single generic entry point: given a node kind, an attribute
// bag and a list of children it returns one node of that kind or a
// *node.GrammarError. Children may be strings, nodes, slices of either
// (arbitrarily nested) or falsy values (nil, false, typed nil pointers),
// which are dropped so that callers can express optional parts inline.
//
// The typed constructors (Text, Condition, Result, ...) panic with the
// *node.GrammarError instead of returning it: a structural violation is a
// bug in the translator assembling the tree. Catch converts such a panic
// back into an error at a package boundary.
package tree

import (
	"strconv"
	"strings"

	"github.com/revyl/translate/internal/node"
	"github.com/revyl/translate/internal/status"
)

// Attrs is the attribute bag accepted by Build. Fields that do not apply to
// the requested kind are ignored.
type Attrs struct {
	// Language of a code block. Defaults to node.DefaultLanguage.
	Language string

	// Title of a condition, test line or code block.
	Title any

	// Status of a condition, test line, property or test line result.
	Status status.Status

	// Message of a test line result.
	Message any

	// Screenshot and Docs are URLs attached to a test line result.
	Screenshot string
	Docs       string

	// Name, Comparator, ExpectedValue and ActualValue describe a property.
	// ExpectedValue is either an inline sequence or a single *node.CodeBlock.
	// ActualValue is nil or a string, bool, integer or float.
	Name          any
	Comparator    string
	ExpectedValue any
	ActualValue   any

	// Href and Value describe a link.
	Href  string
	Value string
}

// Build validates children and attributes and assembles one node of kind k.
func Build(k node.Kind, attrs Attrs, children ...any) (node.Node, error) {
	stringKind := node.KindText
	if node.IsLeafKind(k) {
		stringKind = k
	}
	nodes, err := normalize(k, stringKind, children)
	if err != nil {
		return nil, err
	}

	switch k {
	case node.KindText, node.KindSubject, node.KindInput, node.KindCode:
		return buildLeaf(k, nodes)
	case node.KindCodeBlock:
		return buildCodeBlock(attrs, nodes)
	case node.KindLink:
		return buildLink(attrs, nodes)
	case node.KindProperty:
		return buildProperty(attrs, nodes)
	case node.KindProperties:
		return buildProperties(nodes)
	case node.KindCondition:
		title, st, children, err := buildBlock(k, attrs, nodes)
		if err != nil {
			return nil, err
		}
		return &node.Condition{Title: title, Status: st, Children: children}, nil
	case node.KindTestLine:
		title, st, children, err := buildBlock(k, attrs, nodes)
		if err != nil {
			return nil, err
		}
		return &node.TestLine{Title: title, Status: st, Children: children}, nil
	case node.KindTestLineResult:
		return buildResult(attrs, nodes)
	default:
		return nil, node.Grammarf(k, "unknown node kind")
	}
}

func buildLeaf(k node.Kind, nodes []node.Node) (node.Node, error) {
	var value strings.Builder
	for _, n := range nodes {
		leaf, ok := n.(*node.Leaf)
		if !ok || leaf.Kind() != k {
			return nil, node.Grammarf(k, "cannot contain %q nodes", n.Kind())
		}
		value.WriteString(leaf.Value)
	}
	// An all-empty children list still yields one empty leaf.
	return node.NewLeaf(k, value.String()), nil
}

// textValue reduces nodes to the concatenation of their text leaves.
func textValue(k node.Kind, nodes []node.Node) (string, error) {
	var value strings.Builder
	for _, n := range nodes {
		leaf, ok := n.(*node.Leaf)
		if !ok || leaf.Kind() != node.KindText {
			return "", node.Grammarf(k, "content must be a string, got %q", n.Kind())
		}
		value.WriteString(leaf.Value)
	}
	return value.String(), nil
}

func buildCodeBlock(attrs Attrs, nodes []node.Node) (node.Node, error) {
	value, err := textValue(node.KindCodeBlock, nodes)
	if err != nil {
		return nil, err
	}
	title, err := inlines(node.KindCodeBlock, "title", attrs.Title)
	if err != nil {
		return nil, err
	}
	lang := attrs.Language
	if lang == "" {
		lang = node.DefaultLanguage
	}
	return &node.CodeBlock{Language: lang, Title: title, Value: value}, nil
}

func buildLink(attrs Attrs, nodes []node.Node) (node.Node, error) {
	value := attrs.Value
	if value == "" {
		v, err := textValue(node.KindLink, nodes)
		if err != nil {
			return nil, err
		}
		value = v
	}
	return &node.Link{Href: attrs.Href, Value: value}, nil
}

func buildProperty(attrs Attrs, nodes []node.Node) (node.Node, error) {
	if len(nodes) > 0 {
		return nil, node.Grammarf(node.KindProperty, "cannot have children")
	}
	if err := checkStatus(node.KindProperty, attrs.Status); err != nil {
		return nil, err
	}
	name, err := inlines(node.KindProperty, "name", attrs.Name)
	if err != nil {
		return nil, err
	}
	if len(name) == 0 {
		return nil, node.Grammarf(node.KindProperty, "missing name")
	}

	prop := &node.Property{
		Name:        name,
		Comparator:  attrs.Comparator,
		ContentType: node.ContentInline,
		Status:      attrs.Status,
	}

	// Falsy parts are dropped before deciding between inline and block.
	expected, err := normalize(node.KindProperty, node.KindText, []any{attrs.ExpectedValue})
	if err != nil {
		return nil, err
	}
	if block, ok := singleCodeBlock(expected); ok {
		prop.ContentType = node.ContentBlock
		prop.ExpectedBlock = block
	} else {
		prop.Expected, err = toInlines(node.KindProperty, "expected value", expected)
		if err != nil {
			return nil, err
		}
	}

	actual, ok, err := formatPrimitive(attrs.ActualValue)
	if err != nil {
		return nil, err
	}
	if ok {
		prop.Actual = &actual
	}
	return prop, nil
}

func singleCodeBlock(nodes []node.Node) (*node.CodeBlock, bool) {
	if len(nodes) != 1 {
		return nil, false
	}
	cb, ok := nodes[0].(*node.CodeBlock)
	return cb, ok
}

func formatPrimitive(v any) (string, bool, error) {
	switch t := v.(type) {
	case nil:
		return "", false, nil
	case string:
		return t, true, nil
	case *string:
		if t == nil {
			return "", false, nil
		}
		return *t, true, nil
	case bool:
		return strconv.FormatBool(t), true, nil
	case int:
		return strconv.Itoa(t), true, nil
	case int32:
		return strconv.FormatInt(int64(t), 10), true, nil
	case int64:
		return strconv.FormatInt(t, 10), true, nil
	case uint:
		return strconv.FormatUint(uint64(t), 10), true, nil
	case uint64:
		return strconv.FormatUint(t, 10), true, nil
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), true, nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true, nil
	default:
		return "", false, node.Grammarf(node.KindProperty, "actual value must be a primitive, got %T", v)
	}
}

func buildProperties(nodes []node.Node) (node.Node, error) {
	props := make([]*node.Property, 0, len(nodes))
	for _, n := range nodes {
		p, ok := n.(*node.Property)
		if !ok {
			return nil, node.Grammarf(node.KindProperties, "child %q is not a property", n.Kind())
		}
		props = append(props, p)
	}
	return &node.Properties{Children: props}, nil
}

// buildBlock validates the shared shape of conditions and test lines.
func buildBlock(k node.Kind, attrs Attrs, nodes []node.Node) ([]node.Inline, status.Status, []node.Node, error) {
	if err := checkStatus(k, attrs.Status); err != nil {
		return nil, "", nil, err
	}
	title, err := inlines(k, "title", attrs.Title)
	if err != nil {
		return nil, "", nil, err
	}
	for _, n := range nodes {
		switch n.(type) {
		case *node.Properties, *node.Condition:
		default:
			return nil, "", nil, node.Grammarf(k, "child %q must be props or condition", n.Kind())
		}
	}
	return title, attrs.Status, nodes, nil
}

func buildResult(attrs Attrs, nodes []node.Node) (node.Node, error) {
	k := node.KindTestLineResult
	if attrs.Status == status.None {
		return nil, node.Grammarf(k, "missing status")
	}
	if err := checkStatus(k, attrs.Status); err != nil {
		return nil, err
	}
	if len(nodes) != 1 {
		return nil, node.Grammarf(k, "expected exactly one test-line child, got %d", len(nodes))
	}
	line, ok := nodes[0].(*node.TestLine)
	if !ok {
		return nil, node.Grammarf(k, "child %q is not a test-line", nodes[0].Kind())
	}
	message, err := inlines(k, "message", attrs.Message)
	if err != nil {
		return nil, err
	}
	return &node.TestLineResult{
		Status:     attrs.Status,
		Message:    message,
		Screenshot: attrs.Screenshot,
		Docs:       attrs.Docs,
		Child:      line,
	}, nil
}
