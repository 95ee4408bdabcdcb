package pycodestyle

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pylens-dev/pylens/internal/linter"
)

// reportLine matches pycodestyle's default format:
//
//	path/to/file.py:3:1: E302 expected 2 blank lines, got 1
var reportLine = regexp.MustCompile(`^(.+?):(\d+):(\d+): ([EW]\d+) (.*)$`)

// parseOutput parses the pycodestyle report into violations.
// Style findings never block, so everything pycodestyle reports is a
// warning regardless of its E/W prefix.
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

		violations = append(violations, linter.Violation{
			File:     matches[1],
			Line:     lineNum,
			Column:   col,
			Message:  matches[4] + " " + matches[5],
			Severity: "warning",
			Code:     matches[4],
		})
	}

	return violations, nil
}
