package htmlrender

import "strings"

// escaper replaces in a single pass, so entities it introduces are never
// escaped again and every ampersand is handled independently.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML escapes the characters that are reserved in HTML text and
// attribute values.
func EscapeHTML(s string) string {
	return escaper.Replace(s)
}
