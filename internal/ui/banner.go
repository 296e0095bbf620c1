// Package ui provides the banner and help text for the revyl-translate CLI.
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// tagline is the product tagline.
const tagline = "Readable test lines for people and pages"

// PrintBanner prints the tool name with version info.
//
// Parameters:
//   - version: The CLI version string to display
func PrintBanner(version string) {
	if quietMode {
		return
	}

	name := lipgloss.NewStyle().
		Foreground(Purple).
		Bold(true).
		Render("revyl-translate")

	infoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		PaddingLeft(2)

	emit(name + " " + DimStyle.Render(tagline))
	emit(infoStyle.Render(fmt.Sprintf("Version: %s", version)))
}

// GetHelpText returns the long help text for the root command.
func GetHelpText() string {
	purple := lipgloss.NewStyle().Foreground(Purple).Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	return fmt.Sprintf(`%s

%s
  %s       Render test lines as text
  %s       Render test lines as HTML
  %s   Check that test lines translate
  %s       Write a default .revyl/translate.yaml

%s
  %s  Render the lines together with an execution result`,
		dim.Render(tagline+"."),
		purple.Render("Commands:"),
		purple.Render("text <file>"),
		purple.Render("html <file>"),
		purple.Render("validate <file>"),
		purple.Render("init"),
		purple.Render("Results:"),
		purple.Render("text <file> --result <json>"),
	)
}
