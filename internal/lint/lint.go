// Package lint provides static checks of test line definitions.
//
// Translation only fails on lines it cannot describe at all. This package
// checks the fields each line type needs and reports names and variables
// the configuration cannot resolve.
package lint

import (
	"fmt"
	"strings"

	"github.com/revyl/translate/internal/translate"
)

// Issue is one problem found in a line.
type Issue struct {
	// Line is the 1-based index of the line.
	Line    int    `json:"line"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("line %d: %s", i.Line, i.Message)
}

// ValidationResult contains the result of validating a list of lines.
//
// Fields:
//   - Valid: Whether no errors were found
//   - Errors: Problems that make a line unusable
//   - Warnings: Problems that only degrade the rendered text
type ValidationResult struct {
	Valid    bool    `json:"valid"`
	Errors   []Issue `json:"errors,omitempty"`
	Warnings []Issue `json:"warnings,omitempty"`
}

// ErrorsFor returns the error messages of the given line.
func (r *ValidationResult) ErrorsFor(line int) []string {
	var out []string
	for _, e := range r.Errors {
		if e.Line == line {
			out = append(out, e.Message)
		}
	}
	return out
}

// validThen contains the outcomes an assert line may choose after failing.
var validThen = map[string]bool{
	"":        true,
	"fail":    true,
	"exit":    true,
	"warning": true,
	"success": true,
}

// validDirections contains the swipe directions.
var validDirections = map[string]bool{
	"up":    true,
	"down":  true,
	"left":  true,
	"right": true,
}

// ValidateLines checks a list of line definitions.
//
// This function checks:
//   - Required fields per line type
//   - Numeric values (sleep durations)
//   - Assert outcomes and swipe directions
//   - Element and snippet IDs without a configured name (warnings)
//   - Variables without a configured value (warnings)
//
// Parameters:
//   - lines: The line definitions
//   - ctx: The names and variables available to translation
//
// Returns:
//   - *ValidationResult: Validation result with errors/warnings
func ValidateLines(lines []translate.TestLine, ctx translate.Context) *ValidationResult {
	result := &ValidationResult{Valid: true}

	for i, line := range lines {
		errs, warns := validateLine(line, ctx)
		for _, e := range errs {
			result.Errors = append(result.Errors, Issue{Line: i + 1, Message: e})
		}
		for _, w := range warns {
			result.Warnings = append(result.Warnings, Issue{Line: i + 1, Message: w})
		}
	}

	if len(lines) > 0 && lines[0].Type == "sleep" {
		result.Warnings = append(result.Warnings, Issue{Line: 1, Message: "test starts with a sleep line; wait for a condition instead"})
	}

	result.Valid = len(result.Errors) == 0
	return result
}

// validateLine validates a single line.
//
// Returns:
//   - []string: List of errors
//   - []string: List of warnings
func validateLine(line translate.TestLine, ctx translate.Context) ([]string, []string) {
	var errors, warnings []string
	require := func(ok bool, field string) {
		if !ok {
			errors = append(errors, fmt.Sprintf("%s: missing %s", line.Type, field))
		}
	}

	switch line.Type {
	case "assert", "wait":
		require(line.Condition != nil, "condition")
		if !validThen[line.Then] {
			errors = append(errors, fmt.Sprintf("%s: invalid then '%s' - must be one of: fail, exit, warning, success", line.Type, line.Then))
		}
	case "sleep":
		require(line.Val != "", "val")
		if line.Val != "" && !isNumeric(line.Val) && len(translate.Variables(line.Val)) == 0 {
			errors = append(errors, fmt.Sprintf("sleep: val should be a number of milliseconds, got '%s'", line.Val))
		}
	case "click":
		require(line.Target != nil, "target")
	case "sendText":
		require(line.Target != nil, "target")
		if line.Val == "" {
			warnings = append(warnings, "sendText: sends an empty text")
		}
	case "swipe":
		require(line.Target != nil, "target")
		if !validDirections[line.Direction] {
			errors = append(errors, fmt.Sprintf("swipe: invalid direction '%s' - must be one of: up, down, left, right", line.Direction))
		}
		require(line.Distance > 0, "distance")
	case "openUrl", "pollUrl", "execCmd":
		require(line.Val != "", "val")
	case "press":
		require(len(line.IDs) > 0, "ids")
	case "runSnippet":
		require(line.SnippetID != "", "snippetId")
		if line.SnippetID != "" && ctx.SnippetName(line.SnippetID) == line.SnippetID {
			warnings = append(warnings, fmt.Sprintf("runSnippet: snippet '%s' has no configured name", line.SnippetID))
		}
	}

	if line.Delay > 0 && line.Count <= 1 && line.Type != "pollUrl" {
		warnings = append(warnings, fmt.Sprintf("%s: delay has no effect without count", line.Type))
	}

	if line.Target != nil && line.Target.ElementID != "" && ctx.ElementName(line.Target.ElementID) == line.Target.ElementID {
		warnings = append(warnings, fmt.Sprintf("%s: element '%s' has no configured name", line.Type, line.Target.ElementID))
	}
	if c := line.Condition; c != nil && c.Subject.ElementID != "" && ctx.ElementName(c.Subject.ElementID) == c.Subject.ElementID {
		warnings = append(warnings, fmt.Sprintf("%s: element '%s' has no configured name", line.Type, c.Subject.ElementID))
	}

	for _, name := range usedVariables(line) {
		if ctx.AppConfig == nil || !hasKey(ctx.AppConfig.Variables, name) {
			warnings = append(warnings, fmt.Sprintf("%s: variable '{{%s}}' is not defined in app_config", line.Type, name))
		}
	}

	return errors, warnings
}

// usedVariables returns the variable names referenced by a line, in order
// of first use.
func usedVariables(line translate.TestLine) []string {
	texts := []string{line.Val}
	if t := line.Target; t != nil {
		texts = append(texts, t.Val)
	}
	if c := line.Condition; c != nil {
		texts = append(texts, c.Subject.Val, c.Expression)
		if s, ok := c.Val.(string); ok {
			texts = append(texts, s)
		}
		for _, p := range c.Properties {
			if s, ok := p.Val.(string); ok {
				texts = append(texts, s)
			}
		}
	}

	seen := make(map[string]bool)
	var out []string
	for _, text := range texts {
		for _, name := range translate.Variables(text) {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	return out
}

func hasKey(m map[string]string, k string) bool {
	_, ok := m[k]
	return ok
}

// isNumeric checks if a string represents a non-negative integer.
func isNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
