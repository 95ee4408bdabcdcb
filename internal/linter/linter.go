package linter

import (
	"context"
)

// Linter wraps one external Python checking tool (pycodestyle, pyflakes,
// flake8) behind a common surface.
//
// Design:
// - Linters handle tool discovery, installation, and execution
// - The analyzer delegates to linters and normalizes what they report
// - One linter per tool, registered at init time by its package
type Linter interface {
	// Name returns the tool name (e.g., "pyflakes").
	Name() string

	// GetCapabilities returns the linter's capabilities.
	GetCapabilities() Capabilities

	// CheckAvailability checks if the tool is installed and usable.
	// Returns nil if available, error with details if not.
	CheckAvailability(ctx context.Context) error

	// Install installs the tool if not available.
	Install(ctx context.Context, config InstallConfig) error

	// Execute runs the tool against the given files.
	// Returns raw tool output; a non-zero exit code is not an error,
	// linters exit non-zero whenever they find something.
	Execute(ctx context.Context, opts Options, files []string) (*ToolOutput, error)

	// ParseOutput converts the tool report to standard violations.
	ParseOutput(output *ToolOutput) ([]Violation, error)
}

// Capabilities describes what a linter can do.
type Capabilities struct {
	// Name is the tool identifier (e.g., "pycodestyle").
	Name string

	// Checks lists the diagnostic families the tool covers.
	// Examples: ["style", "whitespace"], ["imports", "names"]
	Checks []string

	// CodePrefixes lists the check code prefixes the tool emits
	// (e.g., ["E", "W"] for pycodestyle).
	CodePrefixes []string

	// Version is the supported tool version constraint.
	Version string
}

// Options holds the per-run settings a linter may honor. Fields a tool has
// no flag for are ignored by that tool.
type Options struct {
	// MaxLineLength caps line length for style checks. 0 = tool default.
	MaxLineLength int

	// Ignore lists check codes to suppress (e.g., ["W391", "W293"]).
	Ignore []string

	// ExtraArgs are raw arguments appended to the invocation.
	// flake8 option sets from the config arrive here.
	ExtraArgs []string
}

// InstallConfig holds tool installation settings.
type InstallConfig struct {
	// ToolsDir is where to install the tool.
	// Default: ~/.pylens/tools
	ToolsDir string

	// Version is the tool version to install. Empty = latest.
	Version string

	// Force reinstalls even if already installed.
	Force bool
}

// ToolOutput is the raw output from a tool execution.
type ToolOutput struct {
	// Stdout is the standard output.
	Stdout string

	// Stderr is the error output.
	Stderr string

	// ExitCode is the process exit code.
	ExitCode int

	// Duration is how long the tool took to run.
	Duration string
}

// Violation is a single finding in a linter report, normalized out of the
// tool's own textual format.
type Violation struct {
	File     string
	Line     int
	Column   int // 1-indexed, 0 if the report had no column
	Message  string
	Severity string // "error" or "warning"
	Code     string // check code when the tool reports one (E501, F401, ...)
}
