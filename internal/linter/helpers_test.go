package linter

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSeverityForCode(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"W291", "warning"},
		{"W605", "warning"},
		{"E501", "error"},
		{"F401", "error"},
		{"C901", "error"},
		{"", "error"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := SeverityForCode(tt.code); got != tt.want {
				t.Errorf("SeverityForCode(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestMapSeverity(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"error", "error"},
		{"FATAL", "error"},
		{"critical", "error"},
		{"warning", "warning"},
		{"anything-else", "warning"},
	}

	for _, tt := range tests {
		if got := MapSeverity(tt.in); got != tt.want {
			t.Errorf("MapSeverity(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFindTool(t *testing.T) {
	dir := t.TempDir()
	local := filepath.Join(dir, "sometool")
	if err := os.WriteFile(local, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	if got := FindTool(local, "no-such-tool-anywhere"); got != local {
		t.Errorf("FindTool() = %q, want local path %q", got, local)
	}
	if got := FindTool(filepath.Join(dir, "missing"), "no-such-tool-anywhere"); got != "" {
		t.Errorf("FindTool() = %q, want empty for missing tool", got)
	}
}

func TestEnsureDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b")
	if err := EnsureDir(path); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}
	fi, err := os.Stat(path)
	if err != nil || !fi.IsDir() {
		t.Errorf("EnsureDir() did not create %s", path)
	}
}

func TestPipToolCommand(t *testing.T) {
	dir := t.TempDir()
	p := NewPipTool("no-such-tool-anywhere", dir)

	// Nothing installed: fall back to the venv path so the eventual
	// exec error names the expected location
	if got, want := p.Command(), p.venvBinPath(); got != want {
		t.Errorf("Command() = %q, want venv fallback %q", got, want)
	}

	// Installed in the venv: resolve to the venv binary
	if err := EnsureDir(filepath.Dir(p.venvBinPath())); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p.venvBinPath(), []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	if got, want := p.Command(), p.venvBinPath(); got != want {
		t.Errorf("Command() = %q, want venv binary %q", got, want)
	}

	// Explicit override wins
	p.BinPath = "/opt/bin/sometool"
	if got := p.Command(); got != "/opt/bin/sometool" {
		t.Errorf("Command() = %q, want explicit override", got)
	}
}

func TestRegistry(t *testing.T) {
	r := &Registry{tools: make(map[string]Linter)}

	if err := r.Register(nil); err == nil {
		t.Error("Register(nil) expected error")
	}

	if _, err := r.Get("missing"); err == nil {
		t.Error("Get(missing) expected error")
	}
}
