package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/acarl005/stripansi"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/revyl/translate/internal/config"
	"github.com/revyl/translate/internal/htmlrender"
	"github.com/revyl/translate/internal/node"
	"github.com/revyl/translate/internal/textrender"
	"github.com/revyl/translate/internal/translate"
	"github.com/revyl/translate/internal/ui"
	"github.com/revyl/translate/internal/util"
)

// textCmd renders lines as text.
var textCmd = &cobra.Command{
	Use:   "text <file>",
	Short: "Render test lines as text",
	Long: `Render test lines as text.

The file holds one line definition or a list of them, as JSON or YAML.
Use "-" to read from stdin. With --result, every line is rendered together
with its execution result.

Output is styled with ANSI escapes when the config format is "ansi", or
"auto" and stdout is a terminal.`,
	Example: `  revyl-translate text lines.yaml
  revyl-translate text lines.json --result results.json --width 80
  cat line.json | revyl-translate text - --format plain`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(cmd, args[0], "txt")
	},
}

// htmlCmd renders lines as HTML fragments.
var htmlCmd = &cobra.Command{
	Use:   "html <file>",
	Short: "Render test lines as HTML",
	Long: `Render test lines as HTML fragments.

The fragments carry suitest-test-line__* class names and no styles.`,
	Example: `  revyl-translate html lines.yaml --out-dir out/`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(cmd, args[0], "html")
	},
}

func init() {
	for _, c := range []*cobra.Command{textCmd, htmlCmd} {
		c.Flags().String("result", "", "JSON execution result file (one object, or an array ordered like the lines)")
		c.Flags().String("out-dir", "", "Write one file per line into this directory instead of stdout")
	}
	textCmd.Flags().Int("width", 0, "Wrap width in columns (default from config)")
	textCmd.Flags().String("format", "", "Output format: auto, plain or ansi (default from config)")
	textCmd.Flags().Bool("strip", false, "Strip ANSI escapes from the output")
}

// renderOptions collects the flags and config values used by runRender.
type renderOptions struct {
	cfg    *config.Config
	ext    string
	result string
	outDir string
	strip  bool
}

func renderFlags(cmd *cobra.Command, ext string) (*renderOptions, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	opts := &renderOptions{cfg: cfg, ext: ext}
	opts.result, _ = cmd.Flags().GetString("result")
	opts.outDir, _ = cmd.Flags().GetString("out-dir")

	if ext == "txt" {
		if width, _ := cmd.Flags().GetInt("width"); width != 0 {
			cfg.Width = width
		}
		if format, _ := cmd.Flags().GetString("format"); format != "" {
			cfg.Format = config.Format(format)
		}
		opts.strip, _ = cmd.Flags().GetBool("strip")
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func runRender(cmd *cobra.Command, path, ext string) error {
	opts, err := renderFlags(cmd, ext)
	if err != nil {
		return err
	}

	lines, err := readLines(cmd, path)
	if err != nil {
		return err
	}

	var results [][]byte
	if opts.result != "" {
		results, err = readResults(cmd, opts.result, len(lines))
		if err != nil {
			return err
		}
	}

	ctx := opts.cfg.Context()
	outputs := make([]string, len(lines))
	failed := 0
	for i, line := range lines {
		var n node.Node
		if results != nil {
			n, err = translate.TranslateResult(line, results[i], ctx)
		} else {
			n, err = translate.TranslateLine(line, ctx)
		}
		if err != nil {
			return fmt.Errorf("line %d (%s): %w", i+1, line.Type, err)
		}
		log.Debug("Translated line", "index", i+1, "type", line.Type, "root", n.Kind())
		if res, ok := n.(*node.TestLineResult); ok && res.Status.IsFailure() {
			failed++
		}

		outputs[i], err = opts.render(n, cmd.OutOrStdout())
		if err != nil {
			return fmt.Errorf("line %d (%s): %w", i+1, line.Type, err)
		}
	}

	if failed > 0 {
		log.Debug("Results with failures", "failed", failed, "lines", len(lines))
	}
	if opts.outDir != "" {
		if err := writeOutputs(opts.outDir, ext, lines, outputs); err != nil {
			return err
		}
		if failed > 0 {
			ui.PrintWarning("%d of %d lines failed", failed, len(lines))
		}
		return nil
	}

	sep := "\n"
	if ext == "html" {
		sep = ""
	}
	for i, out := range outputs {
		if i > 0 {
			fmt.Fprint(cmd.OutOrStdout(), sep)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		if ext == "html" {
			fmt.Fprintln(cmd.OutOrStdout())
		}
	}
	return nil
}

// render renders n and converts an unsupported-node panic into an error.
func (o *renderOptions) render(n node.Node, stdout io.Writer) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			ue, ok := r.(*node.UnsupportedError)
			if !ok {
				panic(r)
			}
			err = ue
		}
	}()

	if o.ext == "html" {
		return htmlrender.Render(n), nil
	}

	formatted := o.cfg.Formatted(o.outDir == "" && isTerminal(stdout))
	out = textrender.New(
		textrender.WithWidth(o.cfg.Width),
		textrender.WithFormatting(formatted),
	).Render(n)
	if o.strip {
		out = stripansi.Strip(out)
	}
	return out, nil
}

// writeOutputs writes one file per line into dir.
func writeOutputs(dir, ext string, lines []translate.TestLine, outputs []string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	for i, line := range lines {
		label := line.LineID
		if label == "" {
			label = line.Type
		}
		path := filepath.Join(dir, util.LineFileName(i, label, ext))
		content := outputs[i]
		if ext == "html" && !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		ui.PrintLink(fmt.Sprintf("Line %d", i+1), path)
	}
	ui.PrintSuccess("Wrote %d files to %s", len(lines), dir)
	return nil
}
