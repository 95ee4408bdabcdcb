package pyflakes

import (
	"context"

	"github.com/pylens-dev/pylens/internal/linter"
)

// Compile-time interface check
var _ linter.Linter = (*Linter)(nil)

// Linter wraps pyflakes, the fast logical checker:
// - unused imports and variables
// - undefined and redefined names
// - syntax errors (reported on stderr)
//
// pyflakes has almost no knobs; Options is ignored except by convention.
type Linter struct {
	tool     linter.PipTool
	executor *linter.SubprocessExecutor
}

// New creates a new pyflakes linter.
func New(toolsDir string) *Linter {
	return &Linter{
		tool:     linter.NewPipTool("pyflakes", toolsDir),
		executor: linter.NewSubprocessExecutor(),
	}
}

// Name returns the linter name.
func (l *Linter) Name() string {
	return "pyflakes"
}

// GetCapabilities returns the pyflakes linter capabilities.
func (l *Linter) GetCapabilities() linter.Capabilities {
	return linter.Capabilities{
		Name:         "pyflakes",
		Checks:       []string{"imports", "names", "syntax"},
		CodePrefixes: nil, // pyflakes reports plain messages, no codes
		Version:      ">=3.0",
	}
}

// CheckAvailability checks if pyflakes is installed.
func (l *Linter) CheckAvailability(ctx context.Context) error {
	return l.tool.CheckAvailability(ctx)
}

// Install installs pyflakes via pip in a virtualenv.
func (l *Linter) Install(ctx context.Context, config linter.InstallConfig) error {
	return l.tool.Install(ctx, config, l.executor)
}

// Execute runs pyflakes against the given files.
func (l *Linter) Execute(ctx context.Context, opts linter.Options, files []string) (*linter.ToolOutput, error) {
	if len(files) == 0 {
		return &linter.ToolOutput{ExitCode: 0}, nil
	}

	args := append([]string{}, opts.ExtraArgs...)
	args = append(args, files...)
	return l.executor.Execute(ctx, l.tool.Command(), args...)
}

// ParseOutput converts the pyflakes report to violations.
func (l *Linter) ParseOutput(output *linter.ToolOutput) ([]linter.Violation, error) {
	return parseOutput(output)
}
