package translate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/revyl/translate/internal/node"
	"github.com/revyl/translate/internal/tree"
)

func ms(v int) string {
	return strconv.Itoa(v) + "ms"
}

func (t *translator) line(l TestLine) (*node.TestLine, error) {
	var title []any
	var children []any

	withCondition := func(required bool) error {
		if l.Condition == nil {
			if required {
				return fmt.Errorf("%w: %s line without condition", ErrInvalidLine, l.Type)
			}
			return nil
		}
		cond, err := t.condition(*l.Condition)
		if err != nil {
			return err
		}
		children = append(children, cond)
		return nil
	}

	switch l.Type {
	case "assert":
		title = []any{"Assert"}
		if l.Then != "" && l.Then != "fail" {
			title = append(title, ", otherwise ", tree.Subject(l.Then))
		}
		if err := withCondition(true); err != nil {
			return nil, err
		}
	case "wait":
		title = []any{"Wait until condition is met"}
		if l.Timeout > 0 {
			title = append(title, " (timeout ", tree.Input(ms(l.Timeout)), ")")
		}
		if err := withCondition(true); err != nil {
			return nil, err
		}
	case "sleep":
		title = []any{"Sleep ", tree.Input(t.ctx.Substitute(l.Val) + "ms")}
	case "click":
		title = append([]any{"Click on "}, t.target(l.Target)...)
		title = append(title, t.repeat(l)...)
		if err := withCondition(false); err != nil {
			return nil, err
		}
	case "press":
		if len(l.IDs) == 0 {
			return nil, fmt.Errorf("%w: press line without buttons", ErrInvalidLine)
		}
		title = []any{"Press ", tree.Input(strings.Join(l.IDs, ", "))}
		title = append(title, t.repeat(l)...)
		if err := withCondition(false); err != nil {
			return nil, err
		}
	case "sendText":
		title = []any{"Send text ", tree.Input(t.ctx.Substitute(l.Val)), " to "}
		title = append(title, t.target(l.Target)...)
		title = append(title, t.repeat(l)...)
		if err := withCondition(false); err != nil {
			return nil, err
		}
	case "swipe":
		title = append([]any{"Swipe from "}, t.target(l.Target)...)
		title = append(title,
			" ", tree.Input(l.Direction),
			" by ", tree.Input(strconv.Itoa(l.Distance)+"px"),
			" in ", tree.Input(ms(l.Duration)),
		)
	case "openApp":
		title = []any{"Open app"}
		if l.Relaunch {
			title = []any{"Relaunch app"}
		}
		if l.Val != "" {
			title = append(title, " at ", tree.Input(t.ctx.AppURL(l.Val)))
		}
	case "closeApp":
		title = []any{"Close app"}
	case "openUrl":
		title = []any{"Open URL ", tree.Input(t.ctx.Substitute(l.Val))}
	case "runSnippet":
		if l.SnippetID == "" {
			return nil, fmt.Errorf("%w: runSnippet line without snippetId", ErrInvalidLine)
		}
		title = []any{"Run test ", tree.Subject(t.ctx.SnippetName(l.SnippetID))}
		title = append(title, t.repeat(l)...)
		if err := withCondition(false); err != nil {
			return nil, err
		}
	case "comment":
		title = []any{tree.Text(t.ctx.Substitute(l.Val))}
	case "takeScreenshot":
		title = []any{"Take screenshot"}
	case "execCmd":
		title = []any{"Execute command"}
		children = append(children, tree.Props(tree.Prop(tree.Attrs{
			Name:          "command",
			ExpectedValue: tree.CodeBlock(tree.Attrs{}, t.ctx.Substitute(l.Val)),
			Status:        t.conditionStatus(),
		})))
	case "pollUrl":
		title = []any{"Poll URL ", tree.Input(t.ctx.Substitute(l.Val))}
		if l.Delay > 0 {
			title = append(title, " every ", tree.Input(ms(l.Delay)))
		}
		if l.Response != "" {
			title = append(title, " until response is ", tree.Input(l.Response))
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLineType, l.Type)
	}

	return tree.TestLine(tree.Attrs{Title: title, Status: t.lineStatus(l)}, children...), nil
}

// target describes the element or window a line acts on.
func (t *translator) target(tg *Target) []any {
	if tg == nil || tg.Type == "window" {
		out := []any{tree.Subject("window")}
		if tg != nil && tg.Coordinates != nil {
			out = append(out, " at ", tree.Input(fmt.Sprintf("%d, %d", tg.Coordinates.X, tg.Coordinates.Y)))
		}
		return out
	}
	name := tg.Val
	if tg.ElementID != "" {
		name = t.ctx.ElementName(tg.ElementID)
	}
	return []any{tree.Subject(name)}
}

// repeat describes how often a click, press, sendText or runSnippet line
// repeats.
func (t *translator) repeat(l TestLine) []any {
	var out []any
	if l.Condition != nil {
		out = append(out, " until condition is met")
		if l.Count > 1 {
			out = append(out, " (max ", tree.Input(strconv.Itoa(l.Count)), " times)")
		}
	} else if l.Count > 1 {
		out = append(out, " ", tree.Input(strconv.Itoa(l.Count)), " times")
	}
	if l.Count > 1 && l.Delay > 0 {
		out = append(out, " every ", tree.Input(ms(l.Delay)))
	}
	return out
}
