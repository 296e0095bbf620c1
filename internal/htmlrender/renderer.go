// Package htmlrender renders test line trees as HTML fragments.
//
// Output is built by plain string concatenation. Class names follow the
// suitest-test-line__<part>--<modifier> scheme that external stylesheets
// key on, so they must not change.
package htmlrender

import (
	"strings"

	"github.com/revyl/translate/internal/node"
	"github.com/revyl/translate/internal/status"
)

const prefix = "suitest-test-line"

// class returns the class name for a part, e.g. class("props") is
// "suitest-test-line__props". An empty part names the block itself.
func class(part string) string {
	if part == "" {
		return prefix
	}
	return prefix + "__" + part
}

// classes returns the part class and its status modifier.
func classes(part string, st status.Status) string {
	c := class(part)
	return c + " " + c + "--" + status.Modifier(st)
}

// Render renders n. It panics with a *node.UnsupportedError when n contains
// a property outside of a properties node or a node kind it does not know.
func Render(n node.Node) string {
	var b strings.Builder
	render(&b, n)
	return b.String()
}

func render(b *strings.Builder, n node.Node) {
	switch v := n.(type) {
	case *node.Leaf:
		leaf(b, v)
	case *node.Link:
		link(b, v)
	case *node.CodeBlock:
		codeBlock(b, v)
	case *node.Properties:
		properties(b, v)
	case *node.Property:
		panic(&node.UnsupportedError{Kind: v.Kind(), Renderer: "html", Context: "outside of props"})
	case *node.Condition:
		b.WriteString(`<div class="` + classes("condition", v.Status) + `">`)
		b.WriteString(`<div class="` + class("condition__header") + `">condition: `)
		inlines(b, v.Title)
		b.WriteString(`</div>`)
		for _, child := range v.Children {
			render(b, child)
		}
		b.WriteString(`</div>`)
	case *node.TestLine:
		b.WriteString(`<div class="` + classes("", v.Status) + `">`)
		b.WriteString(`<div class="` + class("title") + `">`)
		inlines(b, v.Title)
		b.WriteString(`</div>`)
		for _, child := range v.Children {
			render(b, child)
		}
		b.WriteString(`</div>`)
	case *node.TestLineResult:
		result(b, v)
	default:
		panic(&node.UnsupportedError{Kind: node.KindOf(n), Renderer: "html"})
	}
}

func leaf(b *strings.Builder, l *node.Leaf) {
	value := EscapeHTML(l.Value)
	switch l.Kind() {
	case node.KindSubject:
		b.WriteString(`<span class="` + class("text--bold") + `">` + value + `</span>`)
	case node.KindInput:
		b.WriteString(`<span class="` + class("text--input") + `">` + value + `</span>`)
	case node.KindCode:
		b.WriteString(`<code class="` + class("text--code") + `">` + value + `</code>`)
	case node.KindText:
		b.WriteString(value)
	default:
		panic(&node.UnsupportedError{Kind: l.Kind(), Renderer: "html", Context: "as leaf"})
	}
}

func link(b *strings.Builder, l *node.Link) {
	b.WriteString(`<a class="` + class("link") + `" href="` + EscapeHTML(l.Href) + `">`)
	b.WriteString(EscapeHTML(l.Text()))
	b.WriteString(`</a>`)
}

func inlines(b *strings.Builder, in []node.Inline) {
	for _, i := range in {
		render(b, i)
	}
}

func codeBlock(b *strings.Builder, cb *node.CodeBlock) {
	b.WriteString(`<figure class="` + class("code-block") + `">`)
	if len(cb.Title) > 0 {
		b.WriteString(`<figcaption class="` + class("code-block__caption") + `">`)
		inlines(b, cb.Title)
		b.WriteString(`</figcaption>`)
	}
	b.WriteString(`<pre><code class="language-` + EscapeHTML(cb.Language) + `">`)
	b.WriteString(EscapeHTML(cb.Value))
	b.WriteString(`</code></pre></figure>`)
}

// properties renders a table with the same row policy as the text renderer:
// a name row, a full-width row for code block expected values and an arrow
// row for the actual value.
func properties(b *strings.Builder, props *node.Properties) {
	b.WriteString(`<table class="` + class("props") + `">`)
	for _, p := range props.Children {
		b.WriteString(`<tr class="` + classes("props__prop", p.Status) + `">`)
		b.WriteString(`<td class="` + class("props__name") + `">`)
		inlines(b, p.Name)
		b.WriteString(`</td><td class="` + class("props__comparator") + `">`)
		b.WriteString(EscapeHTML(p.Comparator))
		b.WriteString(`</td><td class="` + class("props__expected") + `">`)
		if p.ContentType == node.ContentInline {
			inlines(b, p.Expected)
		}
		b.WriteString(`</td></tr>`)

		if p.ContentType == node.ContentBlock && p.ExpectedBlock != nil {
			b.WriteString(`<tr class="` + class("props__block") + `"><td colspan="3">`)
			codeBlock(b, p.ExpectedBlock)
			b.WriteString(`</td></tr>`)
			continue
		}
		if p.Actual != nil {
			b.WriteString(`<tr class="` + class("props__actual") + `"><td></td>`)
			b.WriteString(`<td class="` + class("props__comparator") + `">→</td>`)
			b.WriteString(`<td class="` + class("props__expected") + `">`)
			b.WriteString(EscapeHTML(*p.Actual))
			b.WriteString(`</td></tr>`)
		}
	}
	b.WriteString(`</table>`)
}

func result(b *strings.Builder, res *node.TestLineResult) {
	render(b, res.Child)
	if len(res.Message) > 0 {
		b.WriteString(`<div class="` + classes("result", res.Status) + `">`)
		inlines(b, res.Message)
		b.WriteString(`</div>`)
	}
	if res.Docs != "" {
		b.WriteString(`<div class="` + class("docs") + `">`)
		link(b, &node.Link{Href: res.Docs, Value: "Read more"})
		b.WriteString(`</div>`)
	}
	if res.Screenshot != "" {
		b.WriteString(`<div class="` + class("screenshot") + `">`)
		link(b, &node.Link{Href: res.Screenshot, Value: "Screenshot"})
		b.WriteString(`</div>`)
	}
}
