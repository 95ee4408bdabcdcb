package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pylens-dev/pylens/internal/outline"
	"github.com/pylens-dev/pylens/internal/ui"
)

var outlineCmd = &cobra.Command{
	Use:   "outline FILE",
	Short: "Show the outline of a Python file",
	Long: `Lists the classes, functions, and TODO/FIXME markers of a Python file
with their line numbers, indented by nesting level.`,
	Args: cobra.ExactArgs(1),
	RunE: runOutline,
}

func init() {
	rootCmd.AddCommand(outlineCmd)

	outlineCmd.Flags().String("filter", "", "only show nodes whose name contains this substring")
}

func runOutline(cmd *cobra.Command, args []string) error {
	path := args[0]
	if !strings.HasSuffix(path, ".py") {
		return fmt.Errorf("not a Python file: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	nodes := outline.Parse(string(data), filepath.Base(path))
	filter, _ := cmd.Flags().GetString("filter")
	nodes, suggestions := outline.Filter(nodes, filter)

	if len(nodes) == 0 {
		if len(suggestions) > 0 {
			fmt.Println(ui.Info(fmt.Sprintf("no match for %q, did you mean: %s", filter, strings.Join(suggestions, ", "))))
			return nil
		}
		fmt.Println(ui.Info("no outline nodes found"))
		return nil
	}

	for _, n := range nodes {
		indent := strings.Repeat("    ", n.Level)
		switch n.Kind {
		case outline.KindTodo, outline.KindFixme:
			fmt.Printf("%s%s: %s (line %d)\n", indent, strings.ToUpper(string(n.Kind)), n.Name, n.Line)
		default:
			fmt.Printf("%s%s %s (%s, line %d)\n", indent, n.Kind, n.Name, n.Breadcrumb, n.Line)
		}
	}
	return nil
}
