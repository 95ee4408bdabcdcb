package flake8

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pylens-dev/pylens/internal/linter"
)

// reportLine matches flake8's default format:
//
//	path/to/file.py:3:1: E302 expected 2 blank lines, got 1
//	path/to/file.py:7:1: F401 'os' imported but unused
var reportLine = regexp.MustCompile(`^(.+?):(\d+):(\d+): ([A-Z]\d+) (.*)$`)

// parseOutput parses the flake8 report into violations.
// Severity comes from the check code: W-codes are warnings, everything
// else (E, F, C, ...) is an error.
func parseOutput(output *linter.ToolOutput) ([]linter.Violation, error) {
	if output == nil || output.Stdout == "" {
		return nil, nil
	}

	var violations []linter.Violation

	for _, line := range strings.Split(output.Stdout, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		matches := reportLine.FindStringSubmatch(line)
		if matches == nil {
			continue
		}

		lineNum, _ := strconv.Atoi(matches[2])
		col, _ := strconv.Atoi(matches[3])
		code := matches[4]

		violations = append(violations, linter.Violation{
			File:     matches[1],
			Line:     lineNum,
			Column:   col,
			Message:  code + " " + matches[5],
			Severity: linter.SeverityForCode(code),
			Code:     code,
		})
	}

	return violations, nil
}
