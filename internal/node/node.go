// Package node defines the closed grammar of the test line document tree.
//
// A tree is built once by the tree builder and then read by the text and
// HTML renderers. Nodes are values: nothing in this module mutates a node
// after construction, and transformations (such as splitting a leaf while
// wrapping text) always produce new nodes.
package node

import "github.com/revyl/translate/internal/status"

// Kind identifies the node type.
type Kind string

const (
	KindText           Kind = "text"
	KindSubject        Kind = "subject"
	KindInput          Kind = "input"
	KindCode           Kind = "code"
	KindCodeBlock      Kind = "code-block"
	KindProperty       Kind = "prop"
	KindProperties     Kind = "props"
	KindCondition      Kind = "condition"
	KindTestLine       Kind = "test-line"
	KindTestLineResult Kind = "test-line-result"
	KindLink           Kind = "link"
)

// DefaultLanguage is the language tag applied to code blocks without one.
const DefaultLanguage = "javascript"

// IsLeafKind reports whether k is one of the plain text leaf kinds.
func IsLeafKind(k Kind) bool {
	switch k {
	case KindText, KindSubject, KindInput, KindCode:
		return true
	}
	return false
}

// Node is implemented by every node type of the grammar. The set of
// implementations is closed to this package.
type Node interface {
	Kind() Kind
	node()
}

// Inline is a node allowed inside titles, messages, property names and
// inline expected values: a *Leaf or a *Link.
type Inline interface {
	Node
	inline()
}

// Leaf is a text, subject, input or code node carrying one string value.
// An empty value is meaningful and still renders as an (empty) span.
type Leaf struct {
	kind  Kind
	Value string
	// Status colors the leaf with the result status. Only set for message
	// leaves of a test line result and for status icons.
	Status status.Status
}

// NewLeaf returns a leaf of kind k. It does not validate k; use the tree
// builder for validated construction.
func NewLeaf(k Kind, value string) *Leaf {
	return &Leaf{kind: k, Value: value}
}

// NewStatusLeaf returns a text leaf colored by st.
func NewStatusLeaf(st status.Status, value string) *Leaf {
	return &Leaf{kind: KindText, Value: value, Status: st}
}

func (l *Leaf) Kind() Kind { return l.kind }
func (l *Leaf) node()      {}
func (l *Leaf) inline()    {}

// WithValue returns a copy of l carrying value instead.
func (l *Leaf) WithValue(value string) *Leaf {
	cp := *l
	cp.Value = value
	return &cp
}

// CodeBlock is an opaque block of source code.
type CodeBlock struct {
	Language string
	// Title is an optional caption.
	Title []Inline
	Value string
}

func (*CodeBlock) Kind() Kind { return KindCodeBlock }
func (*CodeBlock) node()      {}

// Link is a hyperlink. Value defaults to Href.
type Link struct {
	Href  string
	Value string
}

func (*Link) Kind() Kind { return KindLink }
func (*Link) node()      {}
func (*Link) inline()    {}

// Text returns the display value of the link.
func (l *Link) Text() string {
	if l.Value == "" {
		return l.Href
	}
	return l.Value
}

// ContentType discriminates inline from block expected values.
type ContentType string

const (
	ContentInline ContentType = "inline"
	ContentBlock  ContentType = "block"
)

// Property is one row group of a properties table.
type Property struct {
	Name       []Inline
	Comparator string
	// ContentType selects Expected (inline) or ExpectedBlock (block).
	ContentType   ContentType
	Expected      []Inline
	ExpectedBlock *CodeBlock
	// Actual is nil when no actual value was reported.
	Actual *string
	Status status.Status
}

func (*Property) Kind() Kind { return KindProperty }
func (*Property) node()      {}

// Properties is an ordered list of properties.
type Properties struct {
	Children []*Property
}

func (*Properties) Kind() Kind { return KindProperties }
func (*Properties) node()      {}

// Condition is a titled group of properties or nested conditions.
type Condition struct {
	Title    []Inline
	Status   status.Status
	Children []Node
}

func (*Condition) Kind() Kind { return KindCondition }
func (*Condition) node()      {}

// TestLine is the outermost line-level wrapper. It has the same shape as
// Condition.
type TestLine struct {
	Title    []Inline
	Status   status.Status
	Children []Node
}

func (*TestLine) Kind() Kind { return KindTestLine }
func (*TestLine) node()      {}

// TestLineResult wraps a test line with its execution outcome.
type TestLineResult struct {
	Status     status.Status
	Message    []Inline
	Screenshot string
	Docs       string
	Child      *TestLine
}

func (*TestLineResult) Kind() Kind { return KindTestLineResult }
func (*TestLineResult) node()      {}
