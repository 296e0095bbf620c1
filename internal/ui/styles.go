// Package ui provides terminal styling and message printing for the
// revyl-translate CLI.
//
// Rendered test lines never pass through this package; it only styles the
// CLI's own messages, tables and banner.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Brand colors for Revyl.
var (
	// Primary brand color - Revyl purple
	Purple = lipgloss.Color("#9D61FF")

	// Secondary colors
	Red     = lipgloss.Color("#EF4444")
	Amber   = lipgloss.Color("#F59E0B")
	Green   = lipgloss.Color("#22C55E")
	DimGray = lipgloss.Color("#9CA3AF")
)

// Text styles.
var (
	// TitleStyle for main headings
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Purple)

	// SuccessStyle for success messages
	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	// WarningStyle for warning messages
	WarningStyle = lipgloss.NewStyle().
			Foreground(Amber)

	// InfoStyle for informational messages
	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E5E7EB"))

	// DimStyle for less important text
	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	// LinkStyle for URLs and paths
	LinkStyle = lipgloss.NewStyle().
			Foreground(Purple).
			Underline(true)
)

// Table styles.
var (
	// TableHeaderStyle for table headers
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(DimGray).
				Bold(true)

	// TableCellStyle for table cells
	TableCellStyle = lipgloss.NewStyle()
)

// Status indicator styles.
var (
	// StatusPassedStyle for lines that translated
	StatusPassedStyle = lipgloss.NewStyle().
				Foreground(Green)

	// StatusFailedStyle for lines that did not
	StatusFailedStyle = lipgloss.NewStyle().
				Foreground(Red)
)
