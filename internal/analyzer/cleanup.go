package analyzer

import (
	"os"
	"regexp"
	"strings"
)

var trailingWhitespace = regexp.MustCompile(`(?m)[ \t]+$`)

// StripTrailing removes trailing whitespace from every line and trailing
// blank lines from the end, leaving exactly one final newline. Reports
// whether anything changed.
func StripTrailing(text string) (string, bool) {
	cleaned := trailingWhitespace.ReplaceAllString(text, "")
	cleaned = strings.TrimRight(cleaned, "\n")
	if cleaned != "" {
		cleaned += "\n"
	}
	return cleaned, cleaned != text
}

// CleanupFile applies StripTrailing to the file on disk, writing it back
// only when the content changed. This is the pre-analysis save.
func CleanupFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	cleaned, changed := StripTrailing(string(data))
	if !changed {
		return false, nil
	}

	if err := os.WriteFile(path, []byte(cleaned), info.Mode().Perm()); err != nil {
		return false, err
	}
	return true, nil
}
