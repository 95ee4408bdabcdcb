package pyflakes

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pylens-dev/pylens/internal/linter"
)

// pyflakes report lines come in two shapes:
//
//	path/to/file.py:5:1: 'os' imported but unused
//	path/to/file.py:3: invalid syntax
//
// Syntax errors on stderr are followed by a source excerpt and a caret
// marker; those extra lines match neither pattern and are skipped.
var (
	lineColMessage = regexp.MustCompile(`^(.+?):(\d+):(\d+): (.*)$`)
	lineMessage    = regexp.MustCompile(`^(.+?):(\d+): (.*)$`)
)

// parseOutput parses the pyflakes report into violations.
// Stdout findings are warnings; stderr findings are syntax errors.
func parseOutput(output *linter.ToolOutput) ([]linter.Violation, error) {
	if output == nil {
		return nil, nil
	}

	violations := parseStream(output.Stdout, "warning")
	violations = append(violations, parseStream(output.Stderr, "error")...)
	return violations, nil
}

// parseStream parses one report stream, assigning every finding the given
// severity.
func parseStream(report, severity string) []linter.Violation {
	var violations []linter.Violation

	for _, line := range strings.Split(report, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}

		if matches := lineColMessage.FindStringSubmatch(line); matches != nil {
			lineNum, _ := strconv.Atoi(matches[2])
			col, _ := strconv.Atoi(matches[3])
			violations = append(violations, linter.Violation{
				File:     matches[1],
				Line:     lineNum,
				Column:   col,
				Message:  matches[4],
				Severity: severity,
			})
			continue
		}

		if matches := lineMessage.FindStringSubmatch(line); matches != nil {
			lineNum, _ := strconv.Atoi(matches[2])
			violations = append(violations, linter.Violation{
				File:     matches[1],
				Line:     lineNum,
				Message:  matches[3],
				Severity: severity,
			})
		}
	}

	return violations
}
