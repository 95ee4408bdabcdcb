package flake8

import (
	"context"
	"fmt"
	"strings"

	"github.com/pylens-dev/pylens/internal/linter"
)

// execute runs flake8 against the given files.
func (l *Linter) execute(ctx context.Context, opts linter.Options, files []string) (*linter.ToolOutput, error) {
	if len(files) == 0 {
		return &linter.ToolOutput{ExitCode: 0}, nil
	}

	args := executionArgs(opts, files)
	return l.executor.Execute(ctx, l.tool.Command(), args...)
}

// executionArgs builds the flake8 invocation. "-j 1" keeps flake8 from
// forking its own worker processes; we already run it as a subprocess.
func executionArgs(opts linter.Options, files []string) []string {
	args := append([]string{}, opts.ExtraArgs...)
	args = append(args, "-j", "1")

	if opts.MaxLineLength > 0 {
		args = append(args, fmt.Sprintf("--max-line-length=%d", opts.MaxLineLength))
	}
	if len(opts.Ignore) > 0 {
		args = append(args, "--extend-ignore="+strings.Join(opts.Ignore, ","))
	}

	args = append(args, files...)
	return args
}
