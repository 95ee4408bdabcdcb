package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// verbose is a global flag for verbose output
var verbose bool

// configPath is an explicit config file, overriding the lookup order
var configPath string

var rootCmd = &cobra.Command{
	Use:   "pylens",
	Short: "pylens - inline lint annotations for Python files",
	Long: `pylens runs the standard Python linters (pycodestyle, pyflakes, flake8)
and merges their reports into per-line annotations.

Features:
  - One annotation bubble per source line, ordered by linter priority
  - flake8 mode with configurable argument sets
  - Trailing-whitespace cleanup before analysis
  - Watch mode for analyze-on-save
  - MCP server for host editor integration`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: .pylens.toml, then ~/.config/pylens/config.toml)")
}
