package outline

import (
	"regexp"
	"sort"
	"strings"
)

// Kind classifies an outline node.
type Kind string

const (
	KindClass    Kind = "class"
	KindFunction Kind = "function"
	KindTodo     Kind = "todo"
	KindFixme    Kind = "fixme"
)

// Node is one entry in a file outline: a class or function definition, or
// a TODO/FIXME comment marker.
type Node struct {
	Kind       Kind
	Name       string
	Line       int // 1-indexed
	Column     int // 0-indexed indent offset
	Level      int // nesting depth, 0 = module level
	Breadcrumb string
}

var (
	defLine   = regexp.MustCompile(`^([ \t]*)(?:async\s+)?(class|def)\s+([A-Za-z_]\w*)`)
	todoLine  = regexp.MustCompile(`(?i)^.*#\s*\[?TODO\]?[ :]*(.*?)\s*$`)
	fixmeLine = regexp.MustCompile(`(?i)^.*#\s*\[?FIXME\]?[ :]*(.*?)\s*$`)
)

type scope struct {
	indent int
	name   string
}

// Parse scans Python source into outline nodes ordered by line. Nesting is
// tracked by indentation, which is what the layout of a well-formed Python
// file encodes anyway.
func Parse(src, filename string) []Node {
	var nodes []Node
	var stack []scope

	for i, line := range strings.Split(src, "\n") {
		lineNo := i + 1

		if m := defLine.FindStringSubmatch(line); m != nil {
			indent := indentWidth(m[1])

			// Leave scopes this definition is not nested in
			for len(stack) > 0 && stack[len(stack)-1].indent >= indent {
				stack = stack[:len(stack)-1]
			}

			kind := KindFunction
			if m[2] == "class" {
				kind = KindClass
			}

			nodes = append(nodes, Node{
				Kind:       kind,
				Name:       m[3],
				Line:       lineNo,
				Column:     indent,
				Level:      len(stack),
				Breadcrumb: breadcrumb(filename, stack),
			})

			stack = append(stack, scope{indent: indent, name: m[3]})
		}

		// Markers may share a line with a definition
		if m := todoLine.FindStringSubmatch(line); m != nil {
			nodes = append(nodes, Node{
				Kind:       KindTodo,
				Name:       markerText(m[1], "TODO"),
				Line:       lineNo,
				Breadcrumb: filename,
			})
		}
		if m := fixmeLine.FindStringSubmatch(line); m != nil {
			nodes = append(nodes, Node{
				Kind:       KindFixme,
				Name:       markerText(m[1], "FIXME"),
				Line:       lineNo,
				Breadcrumb: filename,
			})
		}
	}

	sort.SliceStable(nodes, func(i, j int) bool { return nodes[i].Line < nodes[j].Line })
	return nodes
}

// indentWidth counts the indent in columns, tabs as 8 per CPython.
func indentWidth(indent string) int {
	width := 0
	for _, r := range indent {
		if r == '\t' {
			width += 8 - width%8
		} else {
			width++
		}
	}
	return width
}

func breadcrumb(filename string, stack []scope) string {
	parts := []string{filename}
	for _, s := range stack {
		parts = append(parts, s.name)
	}
	return strings.Join(parts, " • ")
}

func markerText(text, fallback string) string {
	if text == "" {
		return fallback
	}
	return text
}
