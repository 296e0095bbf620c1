package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/revyl/translate/internal/config"
	"github.com/revyl/translate/internal/ui"
)

// initCmd writes a default configuration file.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default " + config.Dir + "/" + config.FileName,
	Long: `Write a default configuration file.

The file holds the text width, the output format and the element, snippet
and variable names used to resolve test lines. Use --config to choose
another location.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite an existing configuration file")
}

func runInit(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = filepath.Join(config.Dir, config.FileName)
	}
	force, _ := cmd.Flags().GetBool("force")

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.Write(path, config.Default()); err != nil {
		return err
	}
	ui.PrintSuccess("Created %s", path)
	ui.PrintInfo("Add element and snippet names to show them instead of IDs")
	return nil
}
