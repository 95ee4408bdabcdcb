package pycodestyle

import (
	"context"
	"fmt"
	"strings"

	"github.com/pylens-dev/pylens/internal/linter"
)

// execute runs pycodestyle against the given files.
func (l *Linter) execute(ctx context.Context, opts linter.Options, files []string) (*linter.ToolOutput, error) {
	if len(files) == 0 {
		return &linter.ToolOutput{ExitCode: 0}, nil
	}

	args := executionArgs(opts, files)
	return l.executor.Execute(ctx, l.tool.Command(), args...)
}

// executionArgs builds the pycodestyle invocation.
func executionArgs(opts linter.Options, files []string) []string {
	args := []string{"--format=default"}

	if opts.MaxLineLength > 0 {
		args = append(args, fmt.Sprintf("--max-line-length=%d", opts.MaxLineLength))
	}
	if len(opts.Ignore) > 0 {
		args = append(args, "--ignore="+strings.Join(opts.Ignore, ","))
	}

	args = append(args, opts.ExtraArgs...)
	args = append(args, files...)
	return args
}
