package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revyl/translate/internal/translate"
)

var ctx = translate.Context{
	AppConfig: &translate.AppConfig{Variables: map[string]string{"user": "ada"}},
	Elements:  map[string]string{"el-1": "Login button"},
	Snippets:  map[string]string{"sn-1": "Log in"},
}

func element(id string) *translate.Target {
	return &translate.Target{Type: "element", ElementID: id}
}

func TestValidateLines_Valid(t *testing.T) {
	result := ValidateLines([]translate.TestLine{
		{Type: "openApp"},
		{Type: "click", Target: element("el-1"), Count: 2, Delay: 100},
		{Type: "sendText", Target: element("el-1"), Val: "{{user}}"},
		{Type: "sleep", Val: "500"},
		{Type: "runSnippet", SnippetID: "sn-1"},
		{Type: "swipe", Target: &translate.Target{Type: "window"}, Direction: "up", Distance: 100},
	}, ctx)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestValidateLines_Errors(t *testing.T) {
	tests := []struct {
		name string
		line translate.TestLine
		want string
	}{
		{"assert without condition", translate.TestLine{Type: "assert"}, "assert: missing condition"},
		{"bad then", translate.TestLine{Type: "assert", Then: "retry", Condition: &translate.Condition{}}, "assert: invalid then 'retry' - must be one of: fail, exit, warning, success"},
		{"sleep not numeric", translate.TestLine{Type: "sleep", Val: "soon"}, "sleep: val should be a number of milliseconds, got 'soon'"},
		{"click without target", translate.TestLine{Type: "click"}, "click: missing target"},
		{"swipe direction", translate.TestLine{Type: "swipe", Target: element("el-1"), Direction: "sideways", Distance: 1}, "swipe: invalid direction 'sideways' - must be one of: up, down, left, right"},
		{"open url", translate.TestLine{Type: "openUrl"}, "openUrl: missing val"},
		{"press", translate.TestLine{Type: "press"}, "press: missing ids"},
		{"snippet", translate.TestLine{Type: "runSnippet"}, "runSnippet: missing snippetId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateLines([]translate.TestLine{{Type: "closeApp"}, tt.line}, ctx)
			assert.False(t, result.Valid)
			assert.Contains(t, result.ErrorsFor(2), tt.want)
			assert.Empty(t, result.ErrorsFor(1))
		})
	}
}

func TestValidateLines_Warnings(t *testing.T) {
	result := ValidateLines([]translate.TestLine{
		{Type: "sleep", Val: "{{pause}}"},
		{Type: "click", Target: element("el-9"), Delay: 100},
		{Type: "runSnippet", SnippetID: "sn-9"},
		{Type: "assert", Condition: &translate.Condition{
			Subject: translate.Subject{Type: "element", ElementID: "el-1"},
			Type:    "has",
			Properties: []translate.ElementProperty{
				{Property: "text", Type: "=", Val: "{{user}} {{greeting}}"},
			},
		}},
	}, ctx)

	require.True(t, result.Valid)
	var messages []string
	for _, w := range result.Warnings {
		messages = append(messages, w.String())
	}
	assert.Equal(t, []string{
		"line 1: sleep: variable '{{pause}}' is not defined in app_config",
		"line 2: click: delay has no effect without count",
		"line 2: click: element 'el-9' has no configured name",
		"line 3: runSnippet: snippet 'sn-9' has no configured name",
		"line 4: assert: variable '{{greeting}}' is not defined in app_config",
		"line 1: test starts with a sleep line; wait for a condition instead",
	}, messages)
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, isNumeric("250"))
	assert.True(t, isNumeric(" 7 "))
	assert.False(t, isNumeric(""))
	assert.False(t, isNumeric("1.5"))
	assert.False(t, isNumeric("-1"))
}

func TestValidateLines_VariablesMatchSubstitution(t *testing.T) {
	line := translate.TestLine{Type: "openUrl", Val: "https://{{user}}.{{user-id}}/{{ bad }}"}
	result := ValidateLines([]translate.TestLine{line}, ctx)

	var undefined []string
	for _, w := range result.Warnings {
		undefined = append(undefined, w.Message)
	}
	// Only the placeholder Substitute leaves in place is reported.
	assert.Equal(t, "https://ada.{{user-id}}/{{ bad }}", ctx.Substitute(line.Val))
	assert.Equal(t, []string{"openUrl: variable '{{user-id}}' is not defined in app_config"}, undefined)
}
