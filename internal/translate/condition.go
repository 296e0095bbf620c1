package translate

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/revyl/translate/internal/node"
	"github.com/revyl/translate/internal/tree"
)

// comparatorSigns maps condition comparators to the sign shown in the
// comparator column.
var comparatorSigns = map[string]string{
	"=":  "=",
	"!=": "≠",
	"~":  "~",
	"!~": "!~",
	"^":  "^",
	"!^": "!^",
	"$":  "$",
	"!$": "!$",
	">":  ">",
	">=": "≥",
	"<":  "<",
	"<=": "≤",
	"+-": "=",
}

// propertyNames overrides the humanized name of element properties that read
// badly when split on case.
var propertyNames = map[string]string{
	"href":  "link",
	"class": "class name",
}

func comparator(c string) (string, error) {
	sign, ok := comparatorSigns[c]
	if !ok {
		return "", fmt.Errorf("%w: comparator %q", ErrUnknownCondition, c)
	}
	return sign, nil
}

// humanize splits a camelCase property name into lower case words.
func humanize(name string) string {
	if n, ok := propertyNames[name]; ok {
		return n
	}
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte(' ')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return formatFloat(x)
	}
	return fmt.Sprint(v)
}

func (t *translator) condition(c Condition) (*node.Condition, error) {
	st := t.conditionStatus()
	attrs := tree.Attrs{Status: st}

	switch c.Subject.Type {
	case "element":
		name := c.Subject.Val
		if c.Subject.ElementID != "" {
			name = t.ctx.ElementName(c.Subject.ElementID)
		}
		subject := tree.Subject(name)
		switch c.Type {
		case "exists":
			attrs.Title = []any{"Element ", subject, " exists"}
		case "!exists":
			attrs.Title = []any{"Element ", subject, " does not exist"}
		case "visible":
			attrs.Title = []any{"Element ", subject, " is visible"}
		case "!visible":
			attrs.Title = []any{"Element ", subject, " is not visible"}
		case "has":
			attrs.Title = []any{"Element ", subject, " properties"}
			props, err := t.elementProps(c.Properties)
			if err != nil {
				return nil, err
			}
			return tree.Condition(attrs, props), nil
		default:
			return nil, fmt.Errorf("%w: element condition %q", ErrUnknownCondition, c.Type)
		}
		return tree.Condition(attrs), nil

	case "location":
		sign, err := comparator(c.Type)
		if err != nil {
			return nil, err
		}
		attrs.Title = "Current location"
		return tree.Condition(attrs, tree.Props(tree.Prop(tree.Attrs{
			Name:          "current location",
			Comparator:    sign,
			ExpectedValue: tree.Input(t.ctx.Substitute(formatValue(c.Val))),
			ActualValue:   t.actual(),
			Status:        st,
		}))), nil

	case "application":
		switch c.Type {
		case "exited":
			attrs.Title = "Application has exited"
		case "!exited":
			attrs.Title = "Application is running"
		default:
			return nil, fmt.Errorf("%w: application condition %q", ErrUnknownCondition, c.Type)
		}
		return tree.Condition(attrs), nil

	case "javascript":
		expr := c.Expression
		if expr == "" {
			expr = c.Subject.Val
		}
		attrs.Title = "JavaScript expression"
		props := []*node.Property{tree.Prop(tree.Attrs{
			Name:          "expression",
			ExpectedValue: tree.CodeBlock(tree.Attrs{Language: node.DefaultLanguage}, t.ctx.Substitute(expr)),
		})}
		if c.Type != "" {
			sign, err := comparator(c.Type)
			if err != nil {
				return nil, err
			}
			props = append(props, tree.Prop(tree.Attrs{
				Name:          "result",
				Comparator:    sign,
				ExpectedValue: tree.Input(t.ctx.Substitute(formatValue(c.Val))),
				ActualValue:   t.expressionResult(),
				Status:        st,
			}))
		}
		return tree.Condition(attrs, tree.Props(props)), nil

	case "network":
		url := tree.Input(t.ctx.Substitute(c.Subject.Val))
		switch c.Type {
		case "made":
			attrs.Title = []any{"Network request to ", url, " was made"}
		case "!made":
			attrs.Title = []any{"Network request to ", url, " was not made"}
		default:
			return nil, fmt.Errorf("%w: network condition %q", ErrUnknownCondition, c.Type)
		}
		return tree.Condition(attrs), nil
	}

	return nil, fmt.Errorf("%w: subject %q", ErrUnknownCondition, c.Subject.Type)
}

func (t *translator) elementProps(props []ElementProperty) (*node.Properties, error) {
	rows := make([]*node.Property, 0, len(props))
	for _, p := range props {
		sign, err := comparator(p.Type)
		if err != nil {
			return nil, err
		}
		expected := t.ctx.Substitute(formatValue(p.Val))
		if p.Type == "+-" {
			expected = fmt.Sprintf("%s ± %d", expected, p.Deviation)
		}
		attrs := tree.Attrs{
			Name:          humanize(p.Property),
			Comparator:    sign,
			ExpectedValue: tree.Input(expected),
		}
		if e, ok := t.expectation(p.Property); ok {
			attrs.Status = e.status
			attrs.ActualValue = e.actual
		}
		rows = append(rows, tree.Prop(attrs))
	}
	return tree.Props(rows), nil
}
