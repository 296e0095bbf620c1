package translate

import (
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/revyl/translate/internal/node"
	"github.com/revyl/translate/internal/status"
	"github.com/revyl/translate/internal/tree"
)

// errorMessages maps execution error types to the message shown under a
// failed line.
var errorMessages = map[string]string{
	"failedStart":           "Failed to start the application",
	"appRunning":            "Application is still running",
	"appNotRunning":         "Application is not running",
	"noHasLines":            "No properties were defined for the element",
	"elementNotFound":       "Element was not found",
	"invalidInput":          "Input could not be sent to the element",
	"invalidUrl":            "URL is not valid",
	"invalidValue":          "Value is not valid",
	"invalidReference":      "Element reference is not valid",
	"snippetNotFound":       "Test to run was not found",
	"queryFailed":           "Condition was not met",
	"queryTimeout":          "Condition was not met before the timeout",
	"conditionNotMet":       "Condition was not met",
	"deviceError":           "Device reported an error",
	"deviceDisconnected":    "Device disconnected",
	"executionTimeout":      "Line did not finish in time",
	"invalidExpression":     "JavaScript expression could not be evaluated",
	"commandFailed":         "Command exited with an error",
	"networkRequestMissing": "Network request was not made",
	"networkRequestPresent": "Network request was made",
	"screenshotFailed":      "Screenshot could not be taken",
	"pollTimeout":           "URL did not return the expected response in time",
	"internalError":         "Internal error occurred",
	"unsupportedLine":       "Line is not supported by this device",
	"unsupportedCondition":  "Condition is not supported by this device",
}

// statusMessages is shown when a non-successful result carries no error type.
var statusMessages = map[status.Status]string{
	status.Fail:     "Condition was not met",
	status.Fatal:    "Line could not be executed",
	status.Warning:  "Condition was not met, continuing",
	status.Exit:     "Test execution was stopped",
	status.Excluded: "Line was excluded from execution",
	status.Aborted:  "Test execution was aborted",
}

// outcome is the part of an execution result payload the translators use.
type outcome struct {
	status           status.Status
	errorType        string
	message          string
	screenshot       string
	docs             string
	actual           any
	expressionResult any
	expectations     map[string]expectation
}

// expectation is the evaluated state of one element property.
type expectation struct {
	status status.Status
	actual any
}

func (t *translator) actual() any {
	if t.outcome == nil {
		return nil
	}
	return t.outcome.actual
}

func (t *translator) expressionResult() any {
	if t.outcome == nil {
		return nil
	}
	return t.outcome.expressionResult
}

func (t *translator) expectation(name string) (expectation, bool) {
	if t.outcome == nil {
		return expectation{}, false
	}
	e, ok := t.outcome.expectations[name]
	return e, ok
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// primitive converts a JSON value into something a property can display.
// Objects and arrays are kept as their raw JSON text.
func primitive(r gjson.Result) any {
	switch r.Type {
	case gjson.String:
		return r.Str
	case gjson.Number:
		return r.Num
	case gjson.True, gjson.False:
		return r.Bool()
	case gjson.Null:
		return "null"
	}
	return r.Raw
}

// parseOutcome reads an execution result payload.
//
// Parameters:
//   - raw: The JSON payload reported for the line
//
// Returns:
//   - *outcome: The parsed outcome
//   - error: ErrInvalidResult when the payload is not JSON or has no valid result
func parseOutcome(raw []byte) (*outcome, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%w: payload is not valid JSON", ErrInvalidResult)
	}
	res := gjson.ParseBytes(raw)

	st, ok := status.Parse(res.Get("result").String())
	if !ok || st == status.None {
		return nil, fmt.Errorf("%w: unknown result %q", ErrInvalidResult, res.Get("result").String())
	}

	out := &outcome{
		status:       st,
		errorType:    res.Get("errorType").String(),
		screenshot:   res.Get("screenshot").String(),
		docs:         res.Get("docs").String(),
		expectations: map[string]expectation{},
	}

	msg := res.Get("message")
	if msg.IsObject() {
		msg = msg.Get("info.reason")
	}
	out.message = msg.String()

	if v := res.Get("actualValue"); v.Exists() {
		out.actual = primitive(v)
	}
	if v := res.Get("expressionResult"); v.Exists() {
		out.expressionResult = primitive(v)
	}

	res.Get("expectation").ForEach(func(_, e gjson.Result) bool {
		name := e.Get("name").String()
		if name == "" {
			return true
		}
		var exp expectation
		if r := e.Get("result"); r.Exists() {
			if s, ok := status.Parse(r.String()); ok {
				exp.status = s
			}
		}
		if a := e.Get("actualValue"); a.Exists() {
			exp.actual = primitive(a)
		}
		out.expectations[name] = exp
		return true
	})

	return out, nil
}

// TranslateResult translates a line together with its execution result.
//
// Parameters:
//   - line: The line definition
//   - raw: The JSON result payload reported for the line
//   - ctx: Names and variables used to resolve IDs and placeholders
//
// Returns:
//   - *node.TestLineResult: The root node
//   - error: ErrInvalidResult or any error TranslateLine returns
func TranslateResult(line TestLine, raw []byte, ctx Context) (*node.TestLineResult, error) {
	out, err := parseOutcome(raw)
	if err != nil {
		return nil, err
	}
	if line.Excluded {
		out.status = status.Excluded
	}
	t := &translator{ctx: ctx, outcome: out}
	return catch(func() (*node.TestLineResult, error) {
		l, err := t.line(line)
		if err != nil {
			return nil, err
		}
		return tree.Result(tree.Attrs{
			Status:     out.status,
			Message:    t.message(),
			Screenshot: out.screenshot,
			Docs:       out.docs,
		}, l), nil
	})
}

// message describes why a line did not succeed.
func (t *translator) message() []any {
	o := t.outcome
	if o.status == status.Success {
		if o.message == "" {
			return nil
		}
		return []any{o.message}
	}

	var out []any
	switch text, ok := errorMessages[o.errorType]; {
	case ok:
		out = append(out, text)
	case o.errorType != "":
		out = append(out, "Unknown error ", tree.Code(o.errorType))
	default:
		out = append(out, statusMessages[o.status])
	}
	if o.message != "" {
		out = append(out, ": ", tree.Input(o.message))
	}
	return out
}
