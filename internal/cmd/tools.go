package cmd

import (
	"context"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/pylens-dev/pylens/internal/linter"
	"github.com/pylens-dev/pylens/internal/ui"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Manage the external linter tools",
}

var toolsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check which linters are installed",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		registry := linter.Global()
		missing := 0
		for _, name := range registry.Names() {
			l, err := registry.Get(name)
			if err != nil {
				return err
			}
			if err := l.CheckAvailability(ctx); err != nil {
				fmt.Println(ui.Warn(fmt.Sprintf("%s: %v", name, err)))
				missing++
				continue
			}
			fmt.Println(ui.OK(name))
		}

		if missing > 0 {
			fmt.Println(ui.Info("run 'pylens tools install' to install missing linters"))
		}
		return nil
	},
}

var toolsInstallCmd = &cobra.Command{
	Use:   "install [tool...]",
	Short: "Install linters via pip into ~/.pylens/tools",
	Long: `Installs the named linters (default: all registered ones) into
per-tool virtualenvs under ~/.pylens/tools. Requires Python 3.8+.`,
	RunE: runToolsInstall,
}

func init() {
	rootCmd.AddCommand(toolsCmd)
	toolsCmd.AddCommand(toolsCheckCmd)
	toolsCmd.AddCommand(toolsInstallCmd)

	toolsInstallCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
	toolsInstallCmd.Flags().Bool("force", false, "reinstall even if already installed")
}

func runToolsInstall(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	registry := linter.Global()
	names := args
	if len(names) == 0 {
		names = registry.Names()
	}

	yes, _ := cmd.Flags().GetBool("yes")
	force, _ := cmd.Flags().GetBool("force")

	if !yes {
		prompt := promptui.Prompt{
			Label:     fmt.Sprintf("Install %d linter(s) into %s", len(names), linter.DefaultToolsDir()),
			IsConfirm: true,
		}
		if _, err := prompt.Run(); err != nil {
			fmt.Println("Installation cancelled")
			return nil
		}
	}

	installCfg := linter.InstallConfig{
		ToolsDir: linter.DefaultToolsDir(),
		Force:    force,
	}

	failed := 0
	for _, name := range names {
		l, err := registry.Get(name)
		if err != nil {
			return err
		}

		if !force {
			if err := l.CheckAvailability(ctx); err == nil {
				fmt.Println(ui.OK(fmt.Sprintf("%s already installed", name)))
				continue
			}
		}

		fmt.Println(ui.Info(fmt.Sprintf("installing %s ...", name)))
		if err := l.Install(ctx, installCfg); err != nil {
			fmt.Println(ui.Error(fmt.Sprintf("%s: %v", name, err)))
			failed++
			continue
		}
		fmt.Println(ui.OK(name))
	}

	if failed > 0 {
		return fmt.Errorf("%d linter(s) failed to install", failed)
	}
	return nil
}
