package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revyl/translate/internal/node"
	"github.com/revyl/translate/internal/status"
)

func TestBuild_LeafMerging(t *testing.T) {
	for _, k := range []node.Kind{node.KindText, node.KindSubject, node.KindInput, node.KindCode} {
		t.Run(string(k), func(t *testing.T) {
			split, err := Build(k, Attrs{}, "a", "b", "c")
			require.NoError(t, err)
			whole, err := Build(k, Attrs{}, "abc")
			require.NoError(t, err)
			assert.Equal(t, whole, split)
			assert.Equal(t, "abc", split.(*node.Leaf).Value)
			assert.Equal(t, k, split.Kind())
		})
	}
}

func TestBuild_EmptyLeafPreserved(t *testing.T) {
	n, err := Build(node.KindText, Attrs{}, "")
	require.NoError(t, err)
	leaf, ok := n.(*node.Leaf)
	require.True(t, ok)
	assert.Equal(t, "", leaf.Value)

	n, err = Build(node.KindSubject, Attrs{})
	require.NoError(t, err)
	assert.Equal(t, "", n.(*node.Leaf).Value)
}

func TestBuild_FalsyChildrenFiltered(t *testing.T) {
	var nilLeaf *node.Leaf
	withFalsy, err := Build(node.KindText, Attrs{}, nil, "x", nil, false, nilLeaf, "y")
	require.NoError(t, err)
	plain, err := Build(node.KindText, Attrs{}, "x", "y")
	require.NoError(t, err)
	assert.Equal(t, plain, withFalsy)
	assert.Equal(t, "xy", withFalsy.(*node.Leaf).Value)
}

func TestBuild_FlattensNestedSlices(t *testing.T) {
	title := []any{"Open ", []any{Subject("app"), nil, []any{" at ", Input("url")}}}
	c, err := Build(node.KindCondition, Attrs{Title: title})
	require.NoError(t, err)

	cond := c.(*node.Condition)
	require.Len(t, cond.Title, 4)
	assert.Equal(t, node.KindText, cond.Title[0].Kind())
	assert.Equal(t, node.KindSubject, cond.Title[1].Kind())
	assert.Equal(t, node.KindText, cond.Title[2].Kind())
	assert.Equal(t, node.KindInput, cond.Title[3].Kind())
	assert.Equal(t, "Open app at url", node.PlainText(cond.Title))
}

func TestBuild_MergesOnlyMatchingNeighbours(t *testing.T) {
	c := Condition(Attrs{Title: []any{"a", Text("b"), Subject("c"), Subject("d"), "e"}})
	require.Len(t, c.Title, 3)
	assert.Equal(t, "ab", c.Title[0].(*node.Leaf).Value)
	assert.Equal(t, "cd", c.Title[1].(*node.Leaf).Value)
	assert.Equal(t, "e", c.Title[2].(*node.Leaf).Value)
}

func TestBuild_MergeDoesNotMutateInputs(t *testing.T) {
	a := Text("a")
	b := Text("b")
	c := Condition(Attrs{Title: []any{a, b}})
	assert.Equal(t, "ab", c.Title[0].(*node.Leaf).Value)
	assert.Equal(t, "a", a.Value)
	assert.Equal(t, "b", b.Value)
}

func TestBuild_LeafRejectsOtherKinds(t *testing.T) {
	_, err := Build(node.KindSubject, Attrs{}, Text("x"))
	assert.ErrorIs(t, err, node.ErrGrammar)
}

func TestBuild_PropertiesOnlyContainProperties(t *testing.T) {
	prop := Prop(Attrs{Name: "width", Comparator: "=", ExpectedValue: "10"})
	others := []node.Node{
		Text("x"),
		Subject("x"),
		Input("x"),
		Code("x"),
		CodeBlock(Attrs{}, "x"),
		Link("http://x", ""),
		Props(),
		Condition(Attrs{Title: "c"}),
		TestLine(Attrs{Title: "l"}),
		Result(Attrs{Status: status.Success}, TestLine(Attrs{Title: "l"})),
	}

	_, err := Build(node.KindProperties, Attrs{}, prop, prop)
	require.NoError(t, err)

	for _, other := range others {
		t.Run(string(other.Kind()), func(t *testing.T) {
			_, err := Build(node.KindProperties, Attrs{}, prop, other)
			require.ErrorIs(t, err, node.ErrGrammar)
			assert.Contains(t, err.Error(), string(other.Kind()))
		})
	}

	t.Run("bare string", func(t *testing.T) {
		_, err := Build(node.KindProperties, Attrs{}, "text")
		assert.ErrorIs(t, err, node.ErrGrammar)
	})
}

func TestBuild_ResultArity(t *testing.T) {
	line := func() *node.TestLine { return TestLine(Attrs{Title: "Open app"}) }

	_, err := Build(node.KindTestLineResult, Attrs{Status: status.Fail})
	assert.ErrorIs(t, err, node.ErrGrammar, "zero children")

	_, err = Build(node.KindTestLineResult, Attrs{Status: status.Fail}, line(), line())
	assert.ErrorIs(t, err, node.ErrGrammar, "two children")

	_, err = Build(node.KindTestLineResult, Attrs{Status: status.Fail}, []*node.TestLine{line(), line()})
	assert.ErrorIs(t, err, node.ErrGrammar, "array of two")

	_, err = Build(node.KindTestLineResult, Attrs{Status: status.Fail}, Condition(Attrs{Title: "c"}))
	assert.ErrorIs(t, err, node.ErrGrammar, "wrong kind")

	n, err := Build(node.KindTestLineResult, Attrs{Status: status.Fail}, line())
	require.NoError(t, err)
	assert.Equal(t, "Open app", node.PlainText(n.(*node.TestLineResult).Child.Title))

	_, err = Build(node.KindTestLineResult, Attrs{Status: status.Fail}, []node.Node{line()})
	assert.NoError(t, err, "resolved single-element array")
}

func TestBuild_ResultRequiresStatus(t *testing.T) {
	_, err := Build(node.KindTestLineResult, Attrs{}, TestLine(Attrs{Title: "x"}))
	assert.ErrorIs(t, err, node.ErrGrammar)

	_, err = Build(node.KindTestLineResult, Attrs{Status: "running"}, TestLine(Attrs{Title: "x"}))
	assert.ErrorIs(t, err, node.ErrGrammar)
}

func TestBuild_ResultMessageNormalized(t *testing.T) {
	r := Result(Attrs{Status: status.Fail, Message: []any{"Element ", "not found", nil}}, TestLine(Attrs{Title: "x"}))
	require.Len(t, r.Message, 1)
	assert.Equal(t, "Element not found", r.Message[0].(*node.Leaf).Value)
}

func TestBuild_Property(t *testing.T) {
	t.Run("inline", func(t *testing.T) {
		p := Prop(Attrs{
			Name:          "current location",
			Comparator:    "=",
			ExpectedValue: Input("http://some.url"),
			ActualValue:   "http://other.url",
			Status:        status.Fail,
		})
		assert.Equal(t, node.ContentInline, p.ContentType)
		assert.Nil(t, p.ExpectedBlock)
		require.NotNil(t, p.Actual)
		assert.Equal(t, "http://other.url", *p.Actual)
		assert.Equal(t, "current location", node.PlainText(p.Name))
	})

	t.Run("block", func(t *testing.T) {
		p := Prop(Attrs{Name: "expression", ExpectedValue: CodeBlock(Attrs{}, "return 1")})
		assert.Equal(t, node.ContentBlock, p.ContentType)
		require.NotNil(t, p.ExpectedBlock)
		assert.Equal(t, "return 1", p.ExpectedBlock.Value)
		assert.Empty(t, p.Expected)
	})

	t.Run("block with falsy siblings", func(t *testing.T) {
		cb := CodeBlock(Attrs{}, "return 1")
		for _, expected := range []any{
			cb,
			[]any{cb},
			[]any{[]any{cb}},
			[]any{nil, cb},
			[]any{cb, false},
			[]any{false, []any{nil, cb}},
		} {
			n, err := Build(node.KindProperty, Attrs{Name: "expression", ExpectedValue: expected})
			require.NoError(t, err, "%#v", expected)
			p := n.(*node.Property)
			assert.Equal(t, node.ContentBlock, p.ContentType)
			assert.Same(t, cb, p.ExpectedBlock)
			assert.Empty(t, p.Expected)
		}
	})

	t.Run("block mixed with inline content", func(t *testing.T) {
		_, err := Build(node.KindProperty, Attrs{
			Name:          "expression",
			ExpectedValue: []any{"x", CodeBlock(Attrs{}, "return 1")},
		})
		assert.ErrorIs(t, err, node.ErrGrammar)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := Build(node.KindProperty, Attrs{ExpectedValue: "x"})
		assert.ErrorIs(t, err, node.ErrGrammar)
	})

	t.Run("actual primitives", func(t *testing.T) {
		tests := []struct {
			value    any
			expected string
		}{
			{true, "true"},
			{42, "42"},
			{int64(-7), "-7"},
			{1.5, "1.5"},
			{float64(100), "100"},
			{"", ""},
		}
		for _, tt := range tests {
			p := Prop(Attrs{Name: "n", ActualValue: tt.value})
			require.NotNil(t, p.Actual)
			assert.Equal(t, tt.expected, *p.Actual)
		}

		p := Prop(Attrs{Name: "n"})
		assert.Nil(t, p.Actual)

		_, err := Build(node.KindProperty, Attrs{Name: "n", ActualValue: []int{1}})
		assert.ErrorIs(t, err, node.ErrGrammar)
	})
}

func TestBuild_CodeBlock(t *testing.T) {
	cb := CodeBlock(Attrs{}, "a", "b")
	assert.Equal(t, "javascript", cb.Language)
	assert.Equal(t, "ab", cb.Value)

	cb = CodeBlock(Attrs{Language: "bash", Title: "script"}, "ls")
	assert.Equal(t, "bash", cb.Language)
	assert.Equal(t, "script", node.PlainText(cb.Title))

	_, err := Build(node.KindCodeBlock, Attrs{}, Subject("x"))
	assert.ErrorIs(t, err, node.ErrGrammar)
}

func TestBuild_ConditionChildren(t *testing.T) {
	c, err := Build(node.KindCondition, Attrs{Title: "Element exists"})
	require.NoError(t, err)
	assert.Equal(t, status.None, c.(*node.Condition).Status)
	assert.Empty(t, c.(*node.Condition).Children)

	_, err = Build(node.KindCondition, Attrs{Title: "x"}, "stray text")
	assert.ErrorIs(t, err, node.ErrGrammar)

	_, err = Build(node.KindTestLine, Attrs{Title: "x"}, TestLine(Attrs{Title: "nested"}))
	assert.ErrorIs(t, err, node.ErrGrammar)

	_, err = Build(node.KindTestLine, Attrs{Title: "x"}, Condition(Attrs{Title: "c"}), Props())
	assert.NoError(t, err)

	_, err = Build(node.KindCondition, Attrs{Title: CodeBlock(Attrs{}, "x")})
	assert.ErrorIs(t, err, node.ErrGrammar)
}

func TestBuild_Link(t *testing.T) {
	l := Link("http://x", "")
	assert.Equal(t, "http://x", l.Text())

	n, err := Build(node.KindLink, Attrs{Href: "http://x"}, "label")
	require.NoError(t, err)
	assert.Equal(t, "label", n.(*node.Link).Value)
}

func TestBuild_UnknownKind(t *testing.T) {
	_, err := Build("table", Attrs{})
	require.ErrorIs(t, err, node.ErrGrammar)
	assert.Contains(t, err.Error(), "unknown node kind")
}

func TestBuild_UnsupportedChildType(t *testing.T) {
	_, err := Build(node.KindText, Attrs{}, 42)
	assert.ErrorIs(t, err, node.ErrGrammar)

	_, err = Build(node.KindText, Attrs{}, true)
	assert.ErrorIs(t, err, node.ErrGrammar)
}

func TestCatch(t *testing.T) {
	n, err := Catch(func() *node.Properties { return Props(Text("x")) })
	assert.Nil(t, n)
	require.ErrorIs(t, err, node.ErrGrammar)

	p, err := Catch(func() *node.Properties { return Props() })
	require.NoError(t, err)
	assert.NotNil(t, p)

	assert.Panics(t, func() {
		_, _ = Catch(func() node.Node { panic("other") })
	})
}
