package annotation

import (
	"fmt"
	"sort"
	"strings"
)

// Style is the severity class of an annotation. It maps directly to the
// annotation styles a host editor can render.
type Style string

const (
	StyleWarning Style = "warning"
	StyleError   Style = "error"
)

// Source identifies the linter that produced an annotation.
type Source string

const (
	SourcePycodestyle Source = "pycodestyle"
	SourcePyflakes    Source = "pyflakes"
	SourceFlake8      Source = "flake8"
)

// priority returns the display priority of a source.
// flake8 outranks pycodestyle, which outranks pyflakes.
func (s Source) priority() int {
	switch s {
	case SourceFlake8:
		return 3
	case SourcePycodestyle:
		return 2
	case SourcePyflakes:
		return 1
	default:
		return 0
	}
}

// Annotation is a single normalized diagnostic bound to a source line.
// Annotations live for one analyze invocation only: they are created from a
// linter report, sorted, rendered, and discarded.
type Annotation struct {
	Line   int    // 1-indexed source line
	Text   string // display text, already formatted for the bubble
	Source Source
	Style  Style
}

// String returns "line: text [source]" for logs and errors.
func (a Annotation) String() string {
	return fmt.Sprintf("%d: %s [%s]", a.Line, a.Text, a.Source)
}

// Less reports whether a should be displayed before b inside a line bubble:
// higher source priority first, then errors before warnings.
func Less(a, b Annotation) bool {
	if a.Source.priority() != b.Source.priority() {
		return a.Source.priority() > b.Source.priority()
	}
	return a.Style == StyleError && b.Style == StyleWarning
}

// SortForDisplay orders annotations for rendering inside one bubble.
// The sort is stable so same-priority records keep report order.
func SortForDisplay(anns []Annotation) {
	sort.SliceStable(anns, func(i, j int) bool {
		return Less(anns[i], anns[j])
	})
}

// Dedupe removes annotations that repeat an earlier (line, source, text)
// triple. Order is preserved.
func Dedupe(anns []Annotation) []Annotation {
	type key struct {
		line   int
		source Source
		text   string
	}
	seen := make(map[key]struct{}, len(anns))
	out := anns[:0]
	for _, a := range anns {
		k := key{a.Line, a.Source, a.Text}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, a)
	}
	return out
}

// LineGroup is everything annotated on one source line, merged into a single
// bubble: texts joined in display order, style escalated to the highest
// severity found on the line.
type LineGroup struct {
	Line  int
	Texts []string
	Style Style
}

// Text joins the group's messages the way the editor bubble shows them.
func (g LineGroup) Text() string {
	return strings.Join(g.Texts, ",\n")
}

// GroupByLine deduplicates, buckets by line, and merges each bucket into a
// LineGroup. Groups come back ordered by ascending line number.
func GroupByLine(anns []Annotation) []LineGroup {
	anns = Dedupe(anns)
	byLine := make(map[int][]Annotation)
	for _, a := range anns {
		byLine[a.Line] = append(byLine[a.Line], a)
	}

	lines := make([]int, 0, len(byLine))
	for line := range byLine {
		lines = append(lines, line)
	}
	sort.Ints(lines)

	groups := make([]LineGroup, 0, len(lines))
	for _, line := range lines {
		bucket := byLine[line]
		SortForDisplay(bucket)

		g := LineGroup{Line: line, Style: StyleWarning}
		for _, a := range bucket {
			g.Texts = append(g.Texts, a.Text)
			if a.Style == StyleError {
				g.Style = StyleError
			}
		}
		groups = append(groups, g)
	}
	return groups
}
