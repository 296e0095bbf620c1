package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/revyl/translate/internal/lint"
	"github.com/revyl/translate/internal/node"
	"github.com/revyl/translate/internal/translate"
	"github.com/revyl/translate/internal/ui"
)

// validateCmd checks that every line of a file translates.
var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check that test lines translate",
	Long: `Translate every line of a file without rendering it and report the
lines that fail, for example because of an unknown line type or condition.

Lines are also checked for missing fields, and for element, snippet and
variable names the configuration cannot resolve (reported as warnings).`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

// Values of the STATUS column.
const (
	statusOK    = "ok"
	statusError = "error"
)

// statusStyle colors the STATUS column of the validation table.
func statusStyle(value string) lipgloss.Style {
	if value == statusOK {
		return ui.StatusPassedStyle
	}
	return ui.StatusFailedStyle
}

// lineReport is the validation outcome of one line.
type lineReport struct {
	lineType string
	nodes    int
	err      error
}

// validateLines lints and translates every line and counts the nodes of
// each tree.
func validateLines(lines []translate.TestLine, ctx translate.Context) ([]lineReport, []lint.Issue) {
	checks := lint.ValidateLines(lines, ctx)
	reports := make([]lineReport, len(lines))
	for i, line := range lines {
		reports[i].lineType = line.Type
		n, err := translate.TranslateLine(line, ctx)
		if err != nil {
			reports[i].err = err
			continue
		}
		if problems := checks.ErrorsFor(i + 1); len(problems) > 0 {
			reports[i].err = errors.New(strings.Join(problems, "; "))
			continue
		}
		node.Walk(n, func(node.Node) bool {
			reports[i].nodes++
			return true
		})
	}
	return reports, checks.Warnings
}

func init() {
	validateCmd.Flags().Bool("json", false, "Print the report as JSON")
}

// lineJSON is one line of the JSON report.
type lineJSON struct {
	Index int    `json:"index"`
	Type  string `json:"type"`
	OK    bool   `json:"ok"`
	Nodes int    `json:"nodes,omitempty"`
	Error string `json:"error,omitempty"`
}

// jsonReport builds the JSON validation report.
func jsonReport(reports []lineReport, warnings []lint.Issue, failed int) ([]byte, error) {
	doc := []byte(`{"lines":[],"warnings":[]}`)
	doc, err := sjson.SetBytes(doc, "valid", failed == 0)
	if err != nil {
		return nil, err
	}
	for i, r := range reports {
		entry := lineJSON{Index: i + 1, Type: r.lineType, OK: r.err == nil, Nodes: r.nodes}
		if r.err != nil {
			entry.Error = r.err.Error()
		}
		if doc, err = sjson.SetBytes(doc, "lines.-1", entry); err != nil {
			return nil, err
		}
	}
	for _, w := range warnings {
		if doc, err = sjson.SetBytes(doc, "warnings.-1", w); err != nil {
			return nil, err
		}
	}
	return pretty.Pretty(doc), nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	lines, err := readLines(cmd, args[0])
	if err != nil {
		return err
	}

	reports, warnings := validateLines(lines, cfg.Context())
	failed := 0
	for i, r := range reports {
		if r.err != nil {
			failed++
			log.Debug("Line failed", "index", i+1, "err", r.err)
		}
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		doc, err := jsonReport(reports, warnings, failed)
		if err != nil {
			return fmt.Errorf("failed to build report: %w", err)
		}
		if _, err := cmd.OutOrStdout().Write(doc); err != nil {
			return err
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d lines failed to translate", failed, len(lines))
		}
		return nil
	}

	ui.PrintTitle("%s", args[0])
	table := ui.NewTable("#", "TYPE", "STATUS", "DETAIL")
	table.SetMaxWidth(3, 60)
	table.SetColumnStyle(2, statusStyle)
	for i, r := range reports {
		if r.err != nil {
			table.AddRow(strconv.Itoa(i+1), r.lineType, statusError, r.err.Error())
			continue
		}
		table.AddRow(strconv.Itoa(i+1), r.lineType, "ok", fmt.Sprintf("%d nodes", r.nodes))
	}
	table.Render()
	ui.Println()
	for _, w := range warnings {
		ui.PrintWarning("%s", w)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d lines failed to translate", failed, len(lines))
	}
	ui.PrintSuccess("All %d lines translate", len(lines))
	return nil
}
