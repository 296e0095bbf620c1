// Package main provides the entry point for the revyl-translate CLI.
//
// revyl-translate renders test line definitions, optionally together with
// their execution results, as terminal text or HTML fragments.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/revyl/translate/internal/config"
	"github.com/revyl/translate/internal/ui"
)

// Version information set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "revyl-translate",
	Short:         "Render test lines as text or HTML",
	Long:          ui.GetHelpText(),
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetOutput(cmd.ErrOrStderr())
		debug, _ := cmd.Flags().GetBool("debug")
		if debug {
			log.SetLevel(log.DebugLevel)
			log.Debug("Debug logging enabled")
		} else {
			log.SetLevel(log.InfoLevel)
		}

		ui.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
		quiet, _ := cmd.Flags().GetBool("quiet")
		ui.SetQuietMode(quiet)
	},
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.PrintError("%v", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().String("config", "", "Path to translate.yaml (default: nearest "+config.Dir+"/"+config.FileName+")")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(textCmd)
	rootCmd.AddCommand(htmlCmd)
	rootCmd.AddCommand(validateCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		if ui.IsQuietMode() {
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return
		}
		ui.PrintBanner(version)
		ui.PrintDim("Commit: %s", commit)
		ui.PrintDim("Built: %s", date)
	},
}

// loadConfig loads the --config file, or the nearest translate.yaml above
// the working directory, or the defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		log.Debug("Loaded config", "path", path)
		return cfg, nil
	}

	cfg, found, err := config.LoadFromDir(".")
	if err != nil {
		return nil, err
	}
	if found == "" {
		log.Debug("No config file found, using defaults")
	} else {
		log.Debug("Loaded config", "path", found)
	}
	return cfg, nil
}

func main() {
	Execute()
}
