// Package status provides the shared result status vocabulary for test lines.
//
// This package centralizes status-related logic so the tree builder, both
// renderers and the translators agree on the closed set of result tags, the
// icons shown next to titles and property names, and the CSS modifiers used
// by the HTML output.
package status

import "strings"

// Status is the result tag attached to conditions, test lines, properties and
// test line results. The zero value means "no status".
type Status string

const (
	// None indicates that no status was attached.
	None Status = ""

	// Success indicates the line or condition passed.
	Success Status = "success"

	// Fail indicates an assertion did not hold.
	Fail Status = "fail"

	// Fatal indicates the line could not be executed at all.
	Fatal Status = "fatal"

	// Warning indicates the line passed with a warning.
	Warning Status = "warning"

	// Exit indicates the line stopped the test early on purpose.
	Exit Status = "exit"

	// Excluded indicates the line was excluded from execution.
	Excluded Status = "excluded"

	// Aborted indicates the execution was aborted before the line finished.
	Aborted Status = "aborted"
)

// undefinedModifier is emitted as the CSS modifier for status-less nodes.
// Existing stylesheets key on it.
const undefinedModifier = "undefined"

// knownStatuses contains every valid non-empty status.
var knownStatuses = map[Status]bool{
	Success:  true,
	Fail:     true,
	Fatal:    true,
	Warning:  true,
	Exit:     true,
	Excluded: true,
	Aborted:  true,
}

// legacyStatuses maps values reported by older execution backends.
var legacyStatuses = map[string]Status{
	"passed":  Success,
	"failure": Fail,
	"failed":  Fail,
	"error":   Fatal,
	"skipped": Excluded,
}

// Parse converts a raw status string into a Status.
//
// Parameters:
//   - raw: The status string (case-insensitive, surrounding spaces ignored)
//
// Returns:
//   - Status: The parsed status (None when raw is empty)
//   - bool: False when raw is neither empty nor a known or legacy status
func Parse(raw string) (Status, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return None, true
	}
	if knownStatuses[Status(s)] {
		return Status(s), true
	}
	if st, ok := legacyStatuses[s]; ok {
		return st, true
	}
	return None, false
}

// Valid reports whether s is None or one of the known statuses.
func (s Status) Valid() bool {
	return s == None || knownStatuses[s]
}

// IsFailure reports whether s marks a failed line (fail or fatal).
func (s Status) IsFailure() bool {
	return s == Fail || s == Fatal
}

// Icon returns the icon prefixed to titles and property names.
//
// Icons:
//   - success: ✔
//   - fail/fatal: ✖
//   - warning: ‼
//   - excluded/exit: »
//   - anything else: no icon
func Icon(s Status) string {
	switch s {
	case Success:
		return "✔"
	case Fail, Fatal:
		return "✖"
	case Warning:
		return "‼"
	case Excluded, Exit:
		return "»"
	default:
		return ""
	}
}

// Prefix returns the icon followed by a space, or an empty string when the
// status has no icon.
func Prefix(s Status) string {
	if icon := Icon(s); icon != "" {
		return icon + " "
	}
	return ""
}

// Modifier returns the CSS modifier for s.
func Modifier(s Status) string {
	if s == None {
		return undefinedModifier
	}
	return string(s)
}
