package linter

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ===== Path/Directory Helpers =====

// DefaultToolsDir returns the standard tools directory (~/.pylens/tools).
// Used by all linters for consistent tool installation location.
func DefaultToolsDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".pylens", "tools")
}

// EnsureDir creates directory if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// FindTool locates a tool binary, checking local path first, then global PATH.
// Returns empty string if not found.
func FindTool(localPath, globalName string) string {
	if localPath != "" {
		if _, err := os.Stat(localPath); err == nil {
			return localPath
		}
	}
	if path, err := exec.LookPath(globalName); err == nil {
		return path
	}
	return ""
}

// ===== Severity Helpers =====

// SeverityForCode maps a pycodestyle/flake8 check code to a severity.
// W-codes are warnings, everything else (E, F, C, ...) is an error.
func SeverityForCode(code string) string {
	if strings.HasPrefix(code, "W") {
		return "warning"
	}
	return "error"
}

// MapSeverity normalizes severity strings to standard values.
// Returns "error" or "warning".
func MapSeverity(s string) string {
	switch strings.ToLower(s) {
	case "error", "err", "fatal", "critical":
		return "error"
	default:
		return "warning"
	}
}
