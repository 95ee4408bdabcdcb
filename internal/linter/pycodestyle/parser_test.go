package pycodestyle

import (
	"testing"

	"github.com/pylens-dev/pylens/internal/linter"
)

func TestParseOutput_Empty(t *testing.T) {
	tests := []struct {
		name   string
		stdout string
	}{
		{"nil output", ""},
		{"blank lines only", "\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := &linter.ToolOutput{
				Stdout:   tt.stdout,
				ExitCode: 0,
			}

			violations, err := parseOutput(output)
			if err != nil {
				t.Errorf("parseOutput() error = %v", err)
			}
			if len(violations) != 0 {
				t.Errorf("parseOutput() returned %d violations, want 0", len(violations))
			}
		})
	}
}

func TestParseOutput_SingleViolation(t *testing.T) {
	output := &linter.ToolOutput{
		Stdout:   "src/app.py:3:1: E302 expected 2 blank lines, got 1\n",
		ExitCode: 1,
	}

	violations, err := parseOutput(output)
	if err != nil {
		t.Fatalf("parseOutput() error = %v", err)
	}

	if len(violations) != 1 {
		t.Fatalf("parseOutput() returned %d violations, want 1", len(violations))
	}

	v := violations[0]
	if v.File != "src/app.py" {
		t.Errorf("File = %q, want %q", v.File, "src/app.py")
	}
	if v.Line != 3 {
		t.Errorf("Line = %d, want %d", v.Line, 3)
	}
	if v.Column != 1 {
		t.Errorf("Column = %d, want %d", v.Column, 1)
	}
	if v.Message != "E302 expected 2 blank lines, got 1" {
		t.Errorf("Message = %q", v.Message)
	}
	if v.Code != "E302" {
		t.Errorf("Code = %q, want %q", v.Code, "E302")
	}
	if v.Severity != "warning" {
		t.Errorf("Severity = %q, want %q", v.Severity, "warning")
	}
}

func TestParseOutput_EverythingIsAWarning(t *testing.T) {
	// Style findings never block, including E-codes
	output := &linter.ToolOutput{
		Stdout: "a.py:1:80: E501 line too long (88 > 79 characters)\n" +
			"a.py:2:10: W291 trailing whitespace\n",
		ExitCode: 1,
	}

	violations, err := parseOutput(output)
	if err != nil {
		t.Fatalf("parseOutput() error = %v", err)
	}
	if len(violations) != 2 {
		t.Fatalf("parseOutput() returned %d violations, want 2", len(violations))
	}
	for _, v := range violations {
		if v.Severity != "warning" {
			t.Errorf("Severity for %s = %q, want %q", v.Code, v.Severity, "warning")
		}
	}
}

func TestParseOutput_SkipsNoise(t *testing.T) {
	output := &linter.ToolOutput{
		Stdout: "some stray header\n" +
			"a.py:5:1: E303 too many blank lines (4)\n" +
			"not:a:report:line\n",
		ExitCode: 1,
	}

	violations, err := parseOutput(output)
	if err != nil {
		t.Fatalf("parseOutput() error = %v", err)
	}
	if len(violations) != 1 {
		t.Fatalf("parseOutput() returned %d violations, want 1", len(violations))
	}
	if violations[0].Code != "E303" {
		t.Errorf("Code = %q, want %q", violations[0].Code, "E303")
	}
}

func TestExecutionArgs(t *testing.T) {
	opts := linter.Options{
		MaxLineLength: 100,
		Ignore:        []string{"W391", "W293"},
	}

	args := executionArgs(opts, []string{"a.py", "b.py"})

	want := []string{
		"--format=default",
		"--max-line-length=100",
		"--ignore=W391,W293",
		"a.py", "b.py",
	}
	if len(args) != len(want) {
		t.Fatalf("executionArgs() = %v, want %v", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("args[%d] = %q, want %q", i, args[i], want[i])
		}
	}
}
