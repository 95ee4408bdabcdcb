package linter

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// PipTool manages a pip-installed Python tool inside its own virtualenv
// under the tools directory. All three linters install the same way, so the
// venv plumbing lives here and linters embed a PipTool.
type PipTool struct {
	// Tool is the pip package and executable name (e.g., "pyflakes").
	Tool string

	// ToolsDir is where the virtualenv lives. Default: ~/.pylens/tools.
	ToolsDir string

	// BinPath is an explicit path to the executable (optional override).
	BinPath string
}

// NewPipTool creates a PipTool rooted at toolsDir.
func NewPipTool(tool, toolsDir string) PipTool {
	if toolsDir == "" {
		toolsDir = DefaultToolsDir()
	}
	return PipTool{Tool: tool, ToolsDir: toolsDir}
}

// CheckAvailability checks if the tool is installed locally or on PATH.
func (p PipTool) CheckAvailability(ctx context.Context) error {
	if _, err := os.Stat(p.venvBinPath()); err == nil {
		return nil // Found in tools dir
	}

	cmd := exec.CommandContext(ctx, p.Tool, "--version")
	if err := cmd.Run(); err == nil {
		return nil // Found globally
	}

	return fmt.Errorf("%s not found (checked: %s and global PATH)", p.Tool, p.venvBinPath())
}

// Install installs the tool via pip in a dedicated virtualenv.
func (p PipTool) Install(ctx context.Context, config InstallConfig, executor *SubprocessExecutor) error {
	if err := EnsureDir(p.ToolsDir); err != nil {
		return fmt.Errorf("failed to create tools dir: %w", err)
	}

	pythonCmd := pythonCommand()
	if _, err := exec.LookPath(pythonCmd); err != nil {
		return fmt.Errorf("python not found: please install Python 3.8+ first")
	}

	venvPath := p.venvPath()
	pipPath := p.pipPath()

	if config.Force {
		if err := os.RemoveAll(venvPath); err != nil {
			return fmt.Errorf("failed to remove existing venv: %w", err)
		}
	}

	// A venv without pip or without the tool is a broken leftover; rebuild it
	if _, err := os.Stat(venvPath); err == nil {
		_, pipErr := os.Stat(pipPath)
		_, binErr := os.Stat(p.venvBinPath())
		if os.IsNotExist(pipErr) || os.IsNotExist(binErr) {
			if err := os.RemoveAll(venvPath); err != nil {
				return fmt.Errorf("failed to remove incomplete venv: %w", err)
			}
		}
	}

	if _, err := os.Stat(venvPath); os.IsNotExist(err) {
		output, err := executor.Execute(ctx, pythonCmd, "-m", "venv", venvPath)
		if err != nil {
			return fmt.Errorf("failed to create virtualenv: %w", err)
		}
		if output.ExitCode != 0 {
			errMsg := output.Stderr
			if errMsg == "" {
				errMsg = output.Stdout
			}
			if errMsg == "" {
				errMsg = "venv creation failed (no error message)"
			}
			if strings.Contains(errMsg, "ensurepip") || strings.Contains(errMsg, "python3-venv") {
				return fmt.Errorf("failed to create virtualenv: python3-venv package not installed. " +
					"On Debian/Ubuntu, run: sudo apt install python3-venv")
			}
			return fmt.Errorf("failed to create virtualenv: %s", errMsg)
		}
	}

	// Some Linux distros ship venvs without pip
	if _, err := os.Stat(pipPath); os.IsNotExist(err) {
		output, err := executor.Execute(ctx, p.venvPython(), "-m", "ensurepip", "--upgrade")
		if err != nil {
			return fmt.Errorf("failed to install pip via ensurepip: %w", err)
		}
		if output.ExitCode != 0 {
			return fmt.Errorf("failed to install pip via ensurepip: %s", output.Stderr)
		}
	}

	spec := p.Tool
	if config.Version != "" {
		spec = p.Tool + config.Version
	}

	output, err := executor.Execute(ctx, pipPath, "install", spec)
	if err != nil {
		return fmt.Errorf("pip install failed: %w", err)
	}
	if output.ExitCode != 0 {
		return fmt.Errorf("pip install failed: %s", output.Stderr)
	}

	return nil
}

// Command resolves the executable to invoke: explicit override, then the
// venv binary, then whatever is on PATH.
func (p PipTool) Command() string {
	if p.BinPath != "" {
		return p.BinPath
	}

	if found := FindTool(p.venvBinPath(), p.Tool); found != "" {
		return found
	}

	// Fall back to local path (will fail with proper error)
	return p.venvBinPath()
}

func (p PipTool) venvPath() string {
	return filepath.Join(p.ToolsDir, p.Tool+"-venv")
}

func (p PipTool) venvBinPath() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(p.venvPath(), "Scripts", p.Tool+".exe")
	}
	return filepath.Join(p.venvPath(), "bin", p.Tool)
}

func (p PipTool) pipPath() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(p.venvPath(), "Scripts", "pip.exe")
	}
	return filepath.Join(p.venvPath(), "bin", "pip")
}

func (p PipTool) venvPython() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(p.venvPath(), "Scripts", "python.exe")
	}
	return filepath.Join(p.venvPath(), "bin", "python")
}

// pythonCommand returns the Python interpreter to use for venv creation.
func pythonCommand() string {
	if _, err := exec.LookPath("python3"); err == nil {
		return "python3"
	}
	return "python"
}
