package render

import (
	"github.com/pylens-dev/pylens/internal/annotation"
)

// Renderer is the annotation surface the analyzer draws on. It mirrors the
// editor-side API: wipe the previous pass, place per-line bubbles, and show
// a transient notice when there is nothing to place.
type Renderer interface {
	// Clear removes annotations from the previous pass.
	Clear()

	// Annotate places one line bubble. scroll is set for the first
	// annotated line so hosts that can move the viewport do so.
	Annotate(line int, text string, style annotation.Style, scroll bool)

	// Notify shows a transient status message, typically for a clean pass.
	Notify(message string)
}

// Emit renders grouped annotations in ascending line order, marking the
// first group as the scroll target. No groups means a clean pass.
func Emit(r Renderer, groups []annotation.LineGroup) {
	r.Clear()

	if len(groups) == 0 {
		r.Notify("No issues found")
		return
	}

	scroll := true
	for _, g := range groups {
		r.Annotate(g.Line, g.Text(), g.Style, scroll)
		scroll = false
	}
}
