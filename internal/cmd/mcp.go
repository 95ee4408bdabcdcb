package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pylens-dev/pylens/internal/config"
	"github.com/pylens-dev/pylens/internal/mcpserver"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server for host editor integration",
	Long: `Serves the analyzer over the Model Context Protocol on stdio. Hosts get
two tools: analyze_python (per-line annotations) and outline_python
(classes, functions, TODO/FIXME markers).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}

		cfg, err := config.Load(configPath, cwd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return mcpserver.NewServer(version, cfg).Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
