// Package util provides shared utility functions for the CLI.
package util

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// disallowedChars matches anything not in [a-z0-9-_].
	disallowedChars = regexp.MustCompile(`[^a-z0-9\-_]`)
	// multiHyphen collapses consecutive hyphens.
	multiHyphen = regexp.MustCompile(`-{2,}`)
	// camelBoundary finds a lower case letter or digit followed by an upper case letter.
	camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// SanitizeForFilename converts a string to a filesystem-safe name.
//   - Lowercases
//   - Replaces spaces with hyphens
//   - Strips all characters not in [a-z0-9-_]
//   - Collapses consecutive hyphens
//   - Trims leading/trailing hyphens
//
// Example: "Login Test (iOS)" → "login-test-ios"
func SanitizeForFilename(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, " ", "-")
	s = disallowedChars.ReplaceAllString(s, "")
	s = multiHyphen.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return s
}

// LineFileName names the output file of the index-th (0-based) line of an
// input file. camelCase words in label are split, the name sorts in line
// order, and it falls back to "line" when label sanitizes to nothing.
//
// Example: LineFileName(0, "openApp", "html") → "001-open-app.html"
func LineFileName(index int, label, ext string) string {
	name := SanitizeForFilename(camelBoundary.ReplaceAllString(label, "$1-$2"))
	if name == "" {
		name = "line"
	}
	return fmt.Sprintf("%03d-%s.%s", index+1, name, strings.TrimPrefix(ext, "."))
}
