package translate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revyl/translate/internal/htmlrender"
	"github.com/revyl/translate/internal/node"
	"github.com/revyl/translate/internal/status"
	"github.com/revyl/translate/internal/textrender"
)

var testCtx = Context{
	AppConfig: &AppConfig{
		URL:       "https://{{host}}/",
		Variables: map[string]string{"host": "shop.example.com"},
	},
	Elements: map[string]string{"el-1": "Login button"},
	Snippets: map[string]string{"sn-1": "Log in"},
}

func exists(id string) *Condition {
	return &Condition{Subject: Subject{Type: "element", ElementID: id}, Type: "exists"}
}

func TestTranslateLine_Titles(t *testing.T) {
	tests := []struct {
		name string
		line TestLine
		want string
	}{
		{"click", TestLine{Type: "click", Target: &Target{Type: "element", ElementID: "el-1"}}, "Click on Login button"},
		{"click repeated", TestLine{Type: "click", Target: &Target{Type: "element", ElementID: "el-1"}, Count: 3, Delay: 500}, "Click on Login button 3 times every 500ms"},
		{"click window", TestLine{Type: "click", Target: &Target{Type: "window", Coordinates: &Point{X: 10, Y: 20}}}, "Click on window at 10, 20"},
		{"click until", TestLine{Type: "click", Target: &Target{Type: "element", ElementID: "el-1"}, Count: 5, Condition: exists("el-2")}, "Click on Login button until condition is met (max 5 times)"},
		{"press", TestLine{Type: "press", IDs: []string{"LEFT", "OK"}}, "Press LEFT, OK"},
		{"send text", TestLine{Type: "sendText", Val: "hello", Target: &Target{Type: "element", ElementID: "el-1"}}, "Send text hello to Login button"},
		{"swipe", TestLine{Type: "swipe", Target: &Target{Type: "window"}, Direction: "up", Distance: 300, Duration: 200}, "Swipe from window up by 300px in 200ms"},
		{"sleep", TestLine{Type: "sleep", Val: "1000"}, "Sleep 1000ms"},
		{"wait", TestLine{Type: "wait", Timeout: 2000, Condition: exists("el-1")}, "Wait until condition is met (timeout 2000ms)"},
		{"assert", TestLine{Type: "assert", Condition: exists("el-1")}, "Assert"},
		{"assert then", TestLine{Type: "assert", Then: "exit", Condition: exists("el-1")}, "Assert, otherwise exit"},
		{"open app", TestLine{Type: "openApp"}, "Open app"},
		{"open app relative", TestLine{Type: "openApp", Val: "/start"}, "Open app at https://shop.example.com/start"},
		{"relaunch app", TestLine{Type: "openApp", Relaunch: true}, "Relaunch app"},
		{"close app", TestLine{Type: "closeApp"}, "Close app"},
		{"open url", TestLine{Type: "openUrl", Val: "https://{{host}}/{{missing}}"}, "Open URL https://shop.example.com/{{missing}}"},
		{"run snippet", TestLine{Type: "runSnippet", SnippetID: "sn-1"}, "Run test Log in"},
		{"unknown snippet", TestLine{Type: "runSnippet", SnippetID: "sn-9"}, "Run test sn-9"},
		{"comment", TestLine{Type: "comment", Val: "check the cart"}, "check the cart"},
		{"screenshot", TestLine{Type: "takeScreenshot"}, "Take screenshot"},
		{"exec", TestLine{Type: "execCmd", Val: "ls"}, "Execute command"},
		{"poll", TestLine{Type: "pollUrl", Val: "https://x", Delay: 100, Response: "200"}, "Poll URL https://x every 100ms until response is 200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TranslateLine(tt.line, testCtx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, node.PlainText(got.Title))
			assert.Equal(t, status.None, got.Status)
		})
	}
}

func TestTranslateLine_SubjectLeaves(t *testing.T) {
	got, err := TranslateLine(TestLine{Type: "click", Target: &Target{Type: "element", ElementID: "el-1"}}, testCtx)
	require.NoError(t, err)
	require.Len(t, got.Title, 2)
	assert.Equal(t, node.KindText, got.Title[0].Kind())
	assert.Equal(t, node.KindSubject, got.Title[1].Kind())
}

func TestTranslateLine_Errors(t *testing.T) {
	tests := []struct {
		name string
		line TestLine
		want error
	}{
		{"unknown type", TestLine{Type: "teleport"}, ErrUnknownLineType},
		{"assert without condition", TestLine{Type: "assert"}, ErrInvalidLine},
		{"press without ids", TestLine{Type: "press"}, ErrInvalidLine},
		{"unknown subject", TestLine{Type: "assert", Condition: &Condition{Subject: Subject{Type: "weather"}}}, ErrUnknownCondition},
		{"unknown element condition", TestLine{Type: "assert", Condition: &Condition{Subject: Subject{Type: "element"}, Type: "glows"}}, ErrUnknownCondition},
		{"unknown comparator", TestLine{Type: "assert", Condition: &Condition{Subject: Subject{Type: "location"}, Type: "<>"}}, ErrUnknownCondition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TranslateLine(tt.line, testCtx)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, got)
		})
	}
}

func TestTranslateLine_Excluded(t *testing.T) {
	got, err := TranslateLine(TestLine{Type: "closeApp", Excluded: true}, testCtx)
	require.NoError(t, err)
	assert.Equal(t, status.Excluded, got.Status)
}

func TestTranslateLine_AssertRendersCondition(t *testing.T) {
	got, err := TranslateLine(TestLine{Type: "assert", Condition: exists("el-1")}, testCtx)
	require.NoError(t, err)
	assert.Equal(t, "Assert\n  Element Login button exists\n", textrender.Render(got, false))
}

func TestTranslateLine_ExecCmd(t *testing.T) {
	got, err := TranslateLine(TestLine{Type: "execCmd", Val: "ls -la"}, testCtx)
	require.NoError(t, err)
	require.Len(t, got.Children, 1)

	props := got.Children[0].(*node.Properties)
	require.Len(t, props.Children, 1)
	p := props.Children[0]
	assert.Equal(t, node.ContentBlock, p.ContentType)
	require.NotNil(t, p.ExpectedBlock)
	assert.Equal(t, "ls -la", p.ExpectedBlock.Value)
}

func TestTranslateCondition(t *testing.T) {
	tests := []struct {
		name string
		cond Condition
		want string
	}{
		{"not exists", Condition{Subject: Subject{Type: "element", Val: "#menu"}, Type: "!exists"}, "Element #menu does not exist"},
		{"visible", Condition{Subject: Subject{Type: "element", ElementID: "el-1"}, Type: "visible"}, "Element Login button is visible"},
		{"not visible", Condition{Subject: Subject{Type: "element", ElementID: "el-1"}, Type: "!visible"}, "Element Login button is not visible"},
		{"exited", Condition{Subject: Subject{Type: "application"}, Type: "exited"}, "Application has exited"},
		{"running", Condition{Subject: Subject{Type: "application"}, Type: "!exited"}, "Application is running"},
		{"network", Condition{Subject: Subject{Type: "network", Val: "https://{{host}}/api"}, Type: "made"}, "Network request to https://shop.example.com/api was made"},
		{"no network", Condition{Subject: Subject{Type: "network", Val: "/api"}, Type: "!made"}, "Network request to /api was not made"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TranslateCondition(tt.cond, testCtx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, node.PlainText(got.Title))
			assert.Empty(t, got.Children)
		})
	}
}

func TestTranslateCondition_ElementProperties(t *testing.T) {
	got, err := TranslateCondition(Condition{
		Subject: Subject{Type: "element", ElementID: "el-1"},
		Type:    "has",
		Properties: []ElementProperty{
			{Property: "text", Type: "~", Val: "Log"},
			{Property: "backgroundColor", Type: "+-", Val: 10, Deviation: 2},
			{Property: "href", Type: "!=", Val: "/{{host}}"},
		},
	}, testCtx)
	require.NoError(t, err)
	assert.Equal(t, "Element Login button properties", node.PlainText(got.Title))

	require.Len(t, got.Children, 1)
	props := got.Children[0].(*node.Properties)
	require.Len(t, props.Children, 3)

	rows := make([][3]string, 0, 3)
	for _, p := range props.Children {
		rows = append(rows, [3]string{node.PlainText(p.Name), p.Comparator, node.PlainText(p.Expected)})
		assert.Nil(t, p.Actual)
		assert.Equal(t, status.None, p.Status)
	}
	assert.Equal(t, [][3]string{
		{"text", "~", "Log"},
		{"background color", "=", "10 ± 2"},
		{"link", "≠", "/shop.example.com"},
	}, rows)
}

func TestTranslateCondition_JavaScript(t *testing.T) {
	got, err := TranslateCondition(Condition{
		Subject:    Subject{Type: "javascript"},
		Expression: "window.cart.length",
		Type:       ">=",
		Val:        "1",
	}, testCtx)
	require.NoError(t, err)

	props := got.Children[0].(*node.Properties)
	require.Len(t, props.Children, 2)
	expr := props.Children[0]
	require.NotNil(t, expr.ExpectedBlock)
	assert.Equal(t, node.DefaultLanguage, expr.ExpectedBlock.Language)
	assert.Equal(t, "window.cart.length", expr.ExpectedBlock.Value)
	assert.Equal(t, "≥", props.Children[1].Comparator)
}

func TestHumanize(t *testing.T) {
	tests := map[string]string{
		"text":            "text",
		"backgroundColor": "background color",
		"fontSize":        "font size",
		"href":            "link",
		"class":           "class name",
		"":                "",
	}
	for in, want := range tests {
		assert.Equal(t, want, humanize(in), in)
	}
}

func TestTranslateResult_LocationMismatch(t *testing.T) {
	line := TestLine{
		Type:      "assert",
		Condition: &Condition{Subject: Subject{Type: "location"}, Type: "=", Val: "http://some.url"},
	}
	raw := []byte(`{"result":"fail","errorType":"queryFailed","actualValue":"http://other.url","screenshot":"http://shot"}`)

	got, err := TranslateResult(line, raw, Context{})
	require.NoError(t, err)
	assert.Equal(t, status.Fail, got.Status)
	assert.Equal(t, "http://shot", got.Screenshot)

	want := "✖ Assert\n" +
		"  ✖ Current location\n" +
		"    ✖ current location = http://some.url\n" +
		"    " + strings.Repeat(" ", 18) + " → http://other.url\n" +
		"  ✖ Condition was not met\n" +
		"screenshot: http://shot\n"
	assert.Equal(t, want, textrender.Render(got, false))
}

func TestTranslateResult_ElementExpectations(t *testing.T) {
	line := TestLine{
		Type: "assert",
		Condition: &Condition{
			Subject: Subject{Type: "element", ElementID: "el-1"},
			Type:    "has",
			Properties: []ElementProperty{
				{Property: "text", Type: "=", Val: "Log in"},
				{Property: "opacity", Type: "+-", Val: 1, Deviation: 0},
			},
		},
	}
	raw := []byte(`{
		"result": "fail",
		"expectation": [
			{"name": "text", "result": "success", "actualValue": "Log in"},
			{"name": "opacity", "result": "fail", "actualValue": 0.5}
		]
	}`)

	got, err := TranslateResult(line, raw, testCtx)
	require.NoError(t, err)

	cond := got.Child.Children[0].(*node.Condition)
	assert.Equal(t, status.Fail, cond.Status)
	props := cond.Children[0].(*node.Properties)

	text, opacity := props.Children[0], props.Children[1]
	assert.Equal(t, status.Success, text.Status)
	require.NotNil(t, text.Actual)
	assert.Equal(t, "Log in", *text.Actual)
	assert.Equal(t, status.Fail, opacity.Status)
	require.NotNil(t, opacity.Actual)
	assert.Equal(t, "0.5", *opacity.Actual)
}

func TestTranslateResult_ExpressionResult(t *testing.T) {
	line := TestLine{
		Type:      "assert",
		Condition: &Condition{Subject: Subject{Type: "javascript"}, Expression: "1 + 1", Type: "=", Val: "3"},
	}
	got, err := TranslateResult(line, []byte(`{"result":"fail","expressionResult":2}`), testCtx)
	require.NoError(t, err)

	props := got.Child.Children[0].(*node.Condition).Children[0].(*node.Properties)
	res := props.Children[1]
	require.NotNil(t, res.Actual)
	assert.Equal(t, "2", *res.Actual)
	assert.Equal(t, status.Fail, res.Status)
}

func TestTranslateResult_Messages(t *testing.T) {
	line := TestLine{Type: "click", Target: &Target{Type: "element", ElementID: "el-1"}}
	tests := []struct {
		name    string
		raw     string
		status  status.Status
		message string
	}{
		{"success", `{"result":"success"}`, status.Success, ""},
		{"legacy success", `{"result":"passed"}`, status.Success, ""},
		{"known error", `{"result":"fail","errorType":"elementNotFound"}`, status.Fail, "Element was not found"},
		{"unknown error", `{"result":"fatal","errorType":"cosmicRay"}`, status.Fatal, "Unknown error cosmicRay"},
		{"status default", `{"result":"exit"}`, status.Exit, "Test execution was stopped"},
		{"with reason", `{"result":"fail","errorType":"elementNotFound","message":"timed out"}`, status.Fail, "Element was not found: timed out"},
		{"nested reason", `{"result":"warning","message":{"info":{"reason":"slow"}}}`, status.Warning, "Condition was not met, continuing: slow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TranslateResult(line, []byte(tt.raw), testCtx)
			require.NoError(t, err)
			assert.Equal(t, tt.status, got.Status)
			assert.Equal(t, tt.status, got.Child.Status)
			assert.Equal(t, tt.message, node.PlainText(got.Message))
		})
	}
}

func TestTranslateResult_UnknownErrorIsCode(t *testing.T) {
	got, err := TranslateResult(TestLine{Type: "closeApp"}, []byte(`{"result":"fail","errorType":"cosmicRay"}`), testCtx)
	require.NoError(t, err)
	require.Len(t, got.Message, 2)
	assert.Equal(t, node.KindCode, got.Message[1].Kind())
}

func TestTranslateResult_ExcludedLine(t *testing.T) {
	got, err := TranslateResult(TestLine{Type: "closeApp", Excluded: true}, []byte(`{"result":"success"}`), testCtx)
	require.NoError(t, err)
	assert.Equal(t, status.Excluded, got.Status)
	assert.Equal(t, "Line was excluded from execution", node.PlainText(got.Message))
}

func TestTranslateResult_Invalid(t *testing.T) {
	for _, raw := range []string{`not json`, `{}`, `{"result":"maybe"}`} {
		_, err := TranslateResult(TestLine{Type: "closeApp"}, []byte(raw), testCtx)
		assert.ErrorIs(t, err, ErrInvalidResult, raw)
	}

	_, err := TranslateResult(TestLine{Type: "teleport"}, []byte(`{"result":"success"}`), testCtx)
	assert.ErrorIs(t, err, ErrUnknownLineType)
}

func TestTranslateResult_HTML(t *testing.T) {
	got, err := TranslateResult(
		TestLine{Type: "click", Target: &Target{Type: "element", ElementID: "el-1"}},
		[]byte(`{"result":"fail","errorType":"elementNotFound","docs":"https://docs.example.com/e"}`),
		testCtx,
	)
	require.NoError(t, err)

	html := htmlrender.Render(got)
	assert.Contains(t, html, `<div class="suitest-test-line suitest-test-line--fail">`)
	assert.Contains(t, html, `<span class="suitest-test-line__text--bold">Login button</span>`)
	assert.Contains(t, html, `Element was not found`)
	assert.Contains(t, html, `href="https://docs.example.com/e"`)
}

func TestParseLine(t *testing.T) {
	line, err := ParseLine([]byte(`{"type":"click","target":{"type":"element","elementId":"el-1"},"count":2}`))
	require.NoError(t, err)
	assert.Equal(t, "click", line.Type)
	require.NotNil(t, line.Target)
	assert.Equal(t, "el-1", line.Target.ElementID)
	assert.Equal(t, 2, line.Count)

	line, err = ParseLine([]byte("type: assert\ncondition:\n  subject:\n    type: location\n  type: \"=\"\n  val: /home\n"))
	require.NoError(t, err)
	require.NotNil(t, line.Condition)
	assert.Equal(t, "location", line.Condition.Subject.Type)
	assert.Equal(t, "/home", line.Condition.Val)

	_, err = ParseLine([]byte(`{"count":2}`))
	assert.ErrorIs(t, err, ErrInvalidLine)
	_, err = ParseLine([]byte("type: [unclosed"))
	assert.ErrorIs(t, err, ErrInvalidLine)
}

func TestParseLines(t *testing.T) {
	lines, err := ParseLines([]byte("- type: openApp\n- type: sleep\n  val: \"500\"\n"))
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "sleep", lines[1].Type)
	assert.Equal(t, "500", lines[1].Val)

	lines, err = ParseLines([]byte(`{"type":"closeApp"}`))
	require.NoError(t, err)
	require.Len(t, lines, 1)

	lines, err = ParseLines(nil)
	require.NoError(t, err)
	assert.Empty(t, lines)

	_, err = ParseLines([]byte("- type: openApp\n- val: x\n"))
	assert.ErrorIs(t, err, ErrInvalidLine)
	_, err = ParseLines([]byte(`"just a string"`))
	assert.ErrorIs(t, err, ErrInvalidLine)
}

func TestVariables(t *testing.T) {
	assert.Equal(t, []string{"host", "user_id", "host"}, Variables("{{host}}/u/{{user_id}}?h={{host}}"))
	assert.Nil(t, Variables("{{ spaced }} {{}} plain"))

	// Every name Variables reports is one Substitute resolves.
	s := "https://{{host}}/{{missing}}"
	assert.Equal(t, "https://shop.example.com/{{missing}}", testCtx.Substitute(s))
	for _, name := range Variables(testCtx.Substitute(s)) {
		assert.Equal(t, "missing", name)
	}
}
