package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `import os


class Shape:
    def area(self):
        pass

    def perimeter(self):
        # TODO compute from vertices
        pass


async def fetch(url):
    pass


def main():  # FIXME handle args
    pass
`

func TestParse_Definitions(t *testing.T) {
	nodes := Parse(sample, "shapes.py")

	var defs []Node
	for _, n := range nodes {
		if n.Kind == KindClass || n.Kind == KindFunction {
			defs = append(defs, n)
		}
	}
	require.Len(t, defs, 4)

	assert.Equal(t, KindClass, defs[0].Kind)
	assert.Equal(t, "Shape", defs[0].Name)
	assert.Equal(t, 4, defs[0].Line)
	assert.Equal(t, 0, defs[0].Level)
	assert.Equal(t, "shapes.py", defs[0].Breadcrumb)

	assert.Equal(t, "area", defs[1].Name)
	assert.Equal(t, 1, defs[1].Level)
	assert.Equal(t, "shapes.py • Shape", defs[1].Breadcrumb)

	assert.Equal(t, "perimeter", defs[2].Name)
	assert.Equal(t, 1, defs[2].Level)

	// async def at module level closes the class scope
	assert.Equal(t, "fetch", defs[3].Name)
	assert.Equal(t, KindFunction, defs[3].Kind)
	assert.Equal(t, 0, defs[3].Level)
	assert.Equal(t, "shapes.py", defs[3].Breadcrumb)
}

func TestParse_Markers(t *testing.T) {
	nodes := Parse(sample, "shapes.py")

	var markers []Node
	for _, n := range nodes {
		if n.Kind == KindTodo || n.Kind == KindFixme {
			markers = append(markers, n)
		}
	}
	require.Len(t, markers, 2)

	assert.Equal(t, KindTodo, markers[0].Kind)
	assert.Equal(t, "compute from vertices", markers[0].Name)
	assert.Equal(t, 9, markers[0].Line)

	assert.Equal(t, KindFixme, markers[1].Kind)
	assert.Equal(t, "handle args", markers[1].Name)
}

func TestParse_EmptyMarkerFallsBack(t *testing.T) {
	nodes := Parse("x = 1  # TODO\n", "a.py")
	require.Len(t, nodes, 1)
	assert.Equal(t, "TODO", nodes[0].Name)
}

func TestParse_MainlineDefCatchesMainFunction(t *testing.T) {
	// "def main" also appears inside the FIXME line sample; make sure a
	// def with trailing comment still parses as a function
	nodes := Parse(sample, "shapes.py")
	found := false
	for _, n := range nodes {
		if n.Kind == KindFunction && n.Name == "main" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestParse_OrderedByLine(t *testing.T) {
	nodes := Parse(sample, "shapes.py")
	for i := 1; i < len(nodes); i++ {
		assert.LessOrEqual(t, nodes[i-1].Line, nodes[i].Line)
	}
}

func TestFilter_Substring(t *testing.T) {
	nodes := Parse(sample, "shapes.py")

	matches, suggestions := Filter(nodes, "peri")
	require.Len(t, matches, 1)
	assert.Equal(t, "perimeter", matches[0].Name)
	assert.Empty(t, suggestions)
}

func TestFilter_EmptyQueryReturnsAll(t *testing.T) {
	nodes := Parse(sample, "shapes.py")
	matches, _ := Filter(nodes, "")
	assert.Equal(t, nodes, matches)
}

func TestFilter_FuzzySuggestion(t *testing.T) {
	nodes := Parse(sample, "shapes.py")

	// Transposed query: no substring match, fuzzy model suggests the name
	matches, suggestions := Filter(nodes, "shpae")
	assert.Empty(t, matches)
	assert.Contains(t, suggestions, "shape")
}
