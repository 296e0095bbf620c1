// Package ui provides message printing utilities.
package ui

import (
	"fmt"
	"io"
	"os"
)

var (
	out       io.Writer = os.Stdout
	errOut    io.Writer = os.Stderr
	quietMode bool
)

// SetOutput redirects messages. Errors go to errW, everything else to w.
//
// Parameters:
//   - w: Writer for regular messages
//   - errW: Writer for error messages
func SetOutput(w, errW io.Writer) {
	out = w
	errOut = errW
}

// SetQuietMode suppresses everything but errors when quiet is true.
func SetQuietMode(quiet bool) {
	quietMode = quiet
}

// IsQuietMode reports whether quiet mode is on.
func IsQuietMode() bool {
	return quietMode
}

func emit(s string) {
	if quietMode {
		return
	}
	fmt.Fprintln(out, s)
}

// Println prints an empty line.
func Println() {
	emit("")
}

// PrintTitle prints a heading.
func PrintTitle(format string, args ...interface{}) {
	emit(TitleStyle.Render(fmt.Sprintf(format, args...)))
}

// PrintSuccess prints a success message.
//
// Parameters:
//   - format: Printf format string
//   - args: Printf arguments
func PrintSuccess(format string, args ...interface{}) {
	emit(SuccessStyle.Render("✓ " + fmt.Sprintf(format, args...)))
}

// PrintError prints an error message. Errors are printed in quiet mode too.
//
// Parameters:
//   - format: Printf format string
//   - args: Printf arguments
func PrintError(format string, args ...interface{}) {
	fmt.Fprintln(errOut, ErrorStyle.Render("✗ "+fmt.Sprintf(format, args...)))
}

// PrintWarning prints a warning message.
//
// Parameters:
//   - format: Printf format string
//   - args: Printf arguments
func PrintWarning(format string, args ...interface{}) {
	emit(WarningStyle.Render("⚠ " + fmt.Sprintf(format, args...)))
}

// PrintInfo prints an informational message.
func PrintInfo(format string, args ...interface{}) {
	emit(InfoStyle.Render(fmt.Sprintf(format, args...)))
}

// PrintDim prints a dimmed message.
func PrintDim(format string, args ...interface{}) {
	emit(DimStyle.Render(fmt.Sprintf(format, args...)))
}

// PrintLink prints a labeled link or file path.
//
// Parameters:
//   - label: The link label
//   - url: The URL or path
func PrintLink(label, url string) {
	emit(DimStyle.Render(label+":") + " " + LinkStyle.Render(url))
}
