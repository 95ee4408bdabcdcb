package flake8

import (
	"context"

	"github.com/pylens-dev/pylens/internal/linter"
)

// Compile-time interface check
var _ linter.Linter = (*Linter)(nil)

// Linter wraps flake8, the meta-checker that bundles pycodestyle, pyflakes
// and mccabe behind one CLI. When flake8 is configured it replaces the
// individual tools entirely.
type Linter struct {
	tool     linter.PipTool
	executor *linter.SubprocessExecutor
}

// New creates a new flake8 linter.
func New(toolsDir string) *Linter {
	return &Linter{
		tool:     linter.NewPipTool("flake8", toolsDir),
		executor: linter.NewSubprocessExecutor(),
	}
}

// Name returns the linter name.
func (l *Linter) Name() string {
	return "flake8"
}

// GetCapabilities returns the flake8 linter capabilities.
func (l *Linter) GetCapabilities() linter.Capabilities {
	return linter.Capabilities{
		Name:         "flake8",
		Checks:       []string{"style", "whitespace", "imports", "names", "complexity"},
		CodePrefixes: []string{"E", "W", "F", "C"},
		Version:      ">=6.0",
	}
}

// CheckAvailability checks if flake8 is installed.
func (l *Linter) CheckAvailability(ctx context.Context) error {
	return l.tool.CheckAvailability(ctx)
}

// Install installs flake8 via pip in a virtualenv.
func (l *Linter) Install(ctx context.Context, config linter.InstallConfig) error {
	return l.tool.Install(ctx, config, l.executor)
}

// Execute runs flake8 against the given files.
func (l *Linter) Execute(ctx context.Context, opts linter.Options, files []string) (*linter.ToolOutput, error) {
	return l.execute(ctx, opts, files)
}

// ParseOutput converts the flake8 report to violations.
func (l *Linter) ParseOutput(output *linter.ToolOutput) ([]linter.Violation, error) {
	return parseOutput(output)
}
