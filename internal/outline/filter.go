package outline

import (
	"strings"

	"github.com/sajari/fuzzy"
)

// Filter narrows nodes to those whose name contains query
// (case-insensitive). When nothing matches, a fuzzy model trained on the
// node names suggests what the user probably meant.
func Filter(nodes []Node, query string) (matches []Node, suggestions []string) {
	if query == "" {
		return nodes, nil
	}

	q := strings.ToLower(query)
	for _, n := range nodes {
		if strings.Contains(strings.ToLower(n.Name), q) {
			matches = append(matches, n)
		}
	}
	if len(matches) > 0 {
		return matches, nil
	}

	model := fuzzy.NewModel()
	model.SetThreshold(1)
	model.SetDepth(2)

	names := make([]string, 0, len(nodes))
	seen := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		name := strings.ToLower(n.Name)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	model.Train(names)

	for _, s := range model.Suggestions(q, false) {
		if s != q {
			suggestions = append(suggestions, s)
		}
	}
	return nil, suggestions
}
