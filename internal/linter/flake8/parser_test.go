package flake8

import (
	"testing"

	"github.com/pylens-dev/pylens/internal/linter"
)

func TestParseOutput_Empty(t *testing.T) {
	violations, err := parseOutput(&linter.ToolOutput{Stdout: ""})
	if err != nil {
		t.Errorf("parseOutput() error = %v", err)
	}
	if len(violations) != 0 {
		t.Errorf("parseOutput() returned %d violations, want 0", len(violations))
	}
}

func TestParseOutput_SeverityFromCode(t *testing.T) {
	output := &linter.ToolOutput{
		Stdout: "app.py:2:1: W291 trailing whitespace\n" +
			"app.py:3:1: E302 expected 2 blank lines, got 1\n" +
			"app.py:7:1: F401 'os' imported but unused\n" +
			"app.py:20:5: C901 'main' is too complex (12)\n",
		ExitCode: 1,
	}

	violations, err := parseOutput(output)
	if err != nil {
		t.Fatalf("parseOutput() error = %v", err)
	}
	if len(violations) != 4 {
		t.Fatalf("parseOutput() returned %d violations, want 4", len(violations))
	}

	wantSeverity := map[string]string{
		"W291": "warning",
		"E302": "error",
		"F401": "error",
		"C901": "error",
	}
	for _, v := range violations {
		if want := wantSeverity[v.Code]; v.Severity != want {
			t.Errorf("Severity for %s = %q, want %q", v.Code, v.Severity, want)
		}
	}
}

func TestParseOutput_MessageKeepsCode(t *testing.T) {
	output := &linter.ToolOutput{
		Stdout:   "app.py:7:1: F401 'os' imported but unused\n",
		ExitCode: 1,
	}

	violations, err := parseOutput(output)
	if err != nil {
		t.Fatalf("parseOutput() error = %v", err)
	}
	if len(violations) != 1 {
		t.Fatalf("parseOutput() returned %d violations, want 1", len(violations))
	}
	if violations[0].Message != "F401 'os' imported but unused" {
		t.Errorf("Message = %q", violations[0].Message)
	}
}

func TestParseOutput_SkipsNonReportLines(t *testing.T) {
	output := &linter.ToolOutput{
		Stdout: "app.py:7:1: F401 'os' imported but unused\n" +
			"plugin warning: something unrelated\n",
		ExitCode: 1,
	}

	violations, err := parseOutput(output)
	if err != nil {
		t.Fatalf("parseOutput() error = %v", err)
	}
	if len(violations) != 1 {
		t.Fatalf("parseOutput() returned %d violations, want 1", len(violations))
	}
}

func TestExecutionArgs(t *testing.T) {
	opts := linter.Options{
		Ignore:    []string{"W391"},
		ExtraArgs: []string{"--select=E,W,F"},
	}

	args := executionArgs(opts, []string{"a.py"})

	want := []string{"--select=E,W,F", "-j", "1", "--extend-ignore=W391", "a.py"}
	if len(args) != len(want) {
		t.Fatalf("executionArgs() = %v, want %v", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("args[%d] = %q, want %q", i, args[i], want[i])
		}
	}
}
