package pycodestyle

import (
	"context"

	"github.com/pylens-dev/pylens/internal/linter"
)

// Compile-time interface check
var _ linter.Linter = (*Linter)(nil)

// Linter wraps pycodestyle (formerly pep8) for PEP 8 style checking.
//
// pycodestyle covers the layout side of Python hygiene:
// - E1xx indentation, E2xx whitespace, E3xx blank lines
// - E5xx line length, E7xx statements
// - W2xx/W3xx whitespace warnings, W6xx deprecations
//
// Note: Linter is goroutine-safe and stateless. The working directory is
// the CWD at execution time, not stored in the linter.
type Linter struct {
	tool     linter.PipTool
	executor *linter.SubprocessExecutor
}

// New creates a new pycodestyle linter.
func New(toolsDir string) *Linter {
	return &Linter{
		tool:     linter.NewPipTool("pycodestyle", toolsDir),
		executor: linter.NewSubprocessExecutor(),
	}
}

// Name returns the linter name.
func (l *Linter) Name() string {
	return "pycodestyle"
}

// GetCapabilities returns the pycodestyle linter capabilities.
func (l *Linter) GetCapabilities() linter.Capabilities {
	return linter.Capabilities{
		Name:         "pycodestyle",
		Checks:       []string{"style", "whitespace", "blank_lines", "line_length"},
		CodePrefixes: []string{"E", "W"},
		Version:      ">=2.11",
	}
}

// CheckAvailability checks if pycodestyle is installed.
func (l *Linter) CheckAvailability(ctx context.Context) error {
	return l.tool.CheckAvailability(ctx)
}

// Install installs pycodestyle via pip in a virtualenv.
func (l *Linter) Install(ctx context.Context, config linter.InstallConfig) error {
	return l.tool.Install(ctx, config, l.executor)
}

// Execute runs pycodestyle against the given files.
func (l *Linter) Execute(ctx context.Context, opts linter.Options, files []string) (*linter.ToolOutput, error) {
	return l.execute(ctx, opts, files)
}

// ParseOutput converts the pycodestyle report to violations.
func (l *Linter) ParseOutput(output *linter.ToolOutput) ([]linter.Violation, error) {
	return parseOutput(output)
}
