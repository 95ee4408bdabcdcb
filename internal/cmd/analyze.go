package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/pylens-dev/pylens/internal/analyzer"
	"github.com/pylens-dev/pylens/internal/annotation"
	"github.com/pylens-dev/pylens/internal/config"
	"github.com/pylens-dev/pylens/internal/render"
	"github.com/pylens-dev/pylens/internal/ui"
	"github.com/pylens-dev/pylens/internal/watch"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path...]",
	Short: "Run the Python linters and render inline annotations",
	Long: `Runs pycodestyle and pyflakes (or flake8 when configured) over the given
Python files or directories and renders one annotation bubble per source
line. Messages within a bubble are ordered by linter priority
(flake8 > pycodestyle > pyflakes), errors before warnings.`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("format", "f", "text", "output format (text|json)")
	analyzeCmd.Flags().Bool("flake8", false, "use flake8 instead of pycodestyle+pyflakes")
	analyzeCmd.Flags().StringSlice("ignore", nil, "check codes to suppress (overrides config)")
	analyzeCmd.Flags().Int("max-line-length", 0, "maximum line length (overrides config)")
	analyzeCmd.Flags().Bool("keep-whitespace", false, "skip the trailing-whitespace cleanup pass")
	analyzeCmd.Flags().BoolP("watch", "w", false, "re-analyze files on save")
	analyzeCmd.Flags().Bool("exit-zero", false, "always exit 0, even when issues are found")
}

// analyzeConfig resolves config and flag overrides into the effective
// analyzer configuration.
func analyzeConfig(cmd *cobra.Command) (*config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(configPath, cwd)
	if err != nil {
		return nil, err
	}

	if ignore, _ := cmd.Flags().GetStringSlice("ignore"); cmd.Flags().Changed("ignore") {
		cfg.Analyzer.Ignore = ignore
	}
	if maxLen, _ := cmd.Flags().GetInt("max-line-length"); maxLen > 0 {
		cfg.Analyzer.MaxLineLength = maxLen
	}
	if keep, _ := cmd.Flags().GetBool("keep-whitespace"); keep {
		cfg.Analyzer.StripWhitespace = false
	}
	if useFlake8, _ := cmd.Flags().GetBool("flake8"); useFlake8 && !cfg.Flake8.Enabled() {
		// One empty argument set = a single plain flake8 run
		cfg.Flake8.Args = [][]string{{}}
	}

	return cfg, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format: %s (want text or json)", format)
	}

	cfg, err := analyzeConfig(cmd)
	if err != nil {
		return err
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	if watchMode, _ := cmd.Flags().GetBool("watch"); watchMode {
		return runAnalyzeWatch(cfg, paths)
	}

	files, err := analyzer.CollectFiles(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println(ui.Warn("no Python files found"))
		return nil
	}

	an := analyzer.New(cfg)
	ctx := context.Background()

	var bar *progressbar.ProgressBar
	if len(files) > 1 && !verbose {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("analyzing"),
			progressbar.OptionClearOnFinish(),
		)
	}

	var jsonOut *render.JSON
	if format == "json" {
		jsonOut = render.NewJSON(os.Stdout, "")
	}

	annotated := 0
	for _, file := range files {
		anns, err := an.AnalyzeFile(ctx, file)
		if err != nil {
			fmt.Fprintln(os.Stderr, ui.Warn(fmt.Sprintf("%s: %v", file, err)))
			continue
		}
		groups := annotation.GroupByLine(anns)
		if len(groups) > 0 {
			annotated++
		}

		switch format {
		case "json":
			jsonOut.SetFile(file)
			render.Emit(jsonOut, groups)
		default:
			// Clean notices for every file drown a directory scan;
			// keep them for single-file runs and verbose mode.
			if len(groups) == 0 && len(files) > 1 && !verbose {
				break
			}
			src, _ := os.ReadFile(file)
			render.Emit(render.NewTerminal(os.Stdout, file, string(src)), groups)
		}

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if jsonOut != nil {
		if err := jsonOut.Flush(); err != nil {
			return err
		}
	} else if annotated == 0 && len(files) > 1 {
		fmt.Println(ui.OK(fmt.Sprintf("no issues found in %d files", len(files))))
	}

	if exitZero, _ := cmd.Flags().GetBool("exit-zero"); annotated > 0 && !exitZero {
		return fmt.Errorf("%d file(s) with issues", annotated)
	}
	return nil
}

// runAnalyzeWatch re-analyzes files as they are saved, until interrupted.
func runAnalyzeWatch(cfg *config.Config, paths []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	an := analyzer.New(cfg)

	analyzeOne := func(file string) {
		anns, err := an.AnalyzeFile(ctx, file)
		if err != nil {
			fmt.Fprintln(os.Stderr, ui.Warn(fmt.Sprintf("%s: %v", file, err)))
			return
		}
		src, _ := os.ReadFile(file)
		render.Emit(render.NewTerminal(os.Stdout, file, string(src)), annotation.GroupByLine(anns))
	}

	// Initial pass before settling into watch
	files, err := analyzer.CollectFiles(paths)
	if err != nil {
		return err
	}
	for _, file := range files {
		analyzeOne(file)
	}

	root := paths[0]
	w, err := watch.New(root, 200*time.Millisecond, func(changed []string) {
		for _, file := range changed {
			analyzeOne(file)
		}
	})
	if err != nil {
		return err
	}

	fmt.Println(ui.Info(fmt.Sprintf("watching %s (Ctrl-C to stop)", root)))
	if err := w.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
