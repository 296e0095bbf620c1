// Package translate turns test line definitions and execution results into
// document trees.
//
// Translators decide what to show for every line type and condition; the
// tree package enforces the shape of what they build and the renderers
// decide how it looks.
package translate

import (
	"errors"
	"fmt"

	"github.com/revyl/translate/internal/node"
	"github.com/revyl/translate/internal/status"
	"github.com/revyl/translate/internal/tree"
)

var (
	// ErrUnknownLineType is returned for line types without a translator.
	ErrUnknownLineType = errors.New("unknown line type")

	// ErrUnknownCondition is returned for unsupported subjects or comparators.
	ErrUnknownCondition = errors.New("unknown condition")

	// ErrInvalidLine is returned when a line misses a field its type needs.
	ErrInvalidLine = errors.New("invalid line")

	// ErrInvalidResult is returned for malformed execution result payloads.
	ErrInvalidResult = errors.New("invalid result")
)

// translator carries the context and, when translating a result, the
// parsed execution outcome.
type translator struct {
	ctx     Context
	outcome *outcome
}

// TranslateLine translates a test line definition into a test-line tree.
//
// Parameters:
//   - line: The line definition
//   - ctx: Names and variables used to resolve IDs and placeholders
//
// Returns:
//   - *node.TestLine: The root node
//   - error: ErrUnknownLineType, ErrUnknownCondition, ErrInvalidLine or a
//     node.ErrGrammar error
func TranslateLine(line TestLine, ctx Context) (*node.TestLine, error) {
	t := &translator{ctx: ctx}
	return catch(func() (*node.TestLine, error) {
		return t.line(line)
	})
}

// TranslateCondition translates a standalone condition.
func TranslateCondition(cond Condition, ctx Context) (*node.Condition, error) {
	t := &translator{ctx: ctx}
	return catch(func() (*node.Condition, error) {
		return t.condition(cond)
	})
}

// catch runs fn and converts grammar panics raised while building into
// errors.
func catch[T any](fn func() (T, error)) (T, error) {
	var inner error
	out, err := tree.Catch(func() T {
		var v T
		v, inner = fn()
		return v
	})
	if err != nil {
		var zero T
		return zero, fmt.Errorf("build tree: %w", err)
	}
	if inner != nil {
		var zero T
		return zero, inner
	}
	return out, nil
}

// lineStatus returns the status shown on the test line.
func (t *translator) lineStatus(l TestLine) status.Status {
	if l.Excluded {
		return status.Excluded
	}
	if t.outcome != nil {
		return t.outcome.status
	}
	return status.None
}

// conditionStatus returns the status shown on conditions: only a passed or
// failed evaluation says something about the condition itself.
func (t *translator) conditionStatus() status.Status {
	if t.outcome == nil {
		return status.None
	}
	switch t.outcome.status {
	case status.Success, status.Fail:
		return t.outcome.status
	}
	return status.None
}
