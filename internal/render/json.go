package render

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/pylens-dev/pylens/internal/annotation"
)

// JSONAnnotation is one line bubble in machine-readable form.
type JSONAnnotation struct {
	File     string   `json:"file"`
	Line     int      `json:"line"`
	Style    string   `json:"style"`
	Messages []string `json:"messages"`
	Scroll   bool     `json:"scroll,omitempty"`
}

// JSON collects annotations and flushes them as one JSON array, so output
// stays parseable even when several files are rendered into it.
type JSON struct {
	out         io.Writer
	file        string
	annotations []JSONAnnotation
	clean       []string
}

// NewJSON creates a JSON renderer for one file. Call SetFile before reuse
// and Flush once at the end.
func NewJSON(out io.Writer, file string) *JSON {
	return &JSON{out: out, file: file}
}

// SetFile switches the renderer to the next file.
func (j *JSON) SetFile(file string) { j.file = file }

// Clear is a no-op; every run emits a fresh document.
func (j *JSON) Clear() {}

// Annotate buffers one line bubble.
func (j *JSON) Annotate(line int, text string, style annotation.Style, scroll bool) {
	j.annotations = append(j.annotations, JSONAnnotation{
		File:     j.file,
		Line:     line,
		Style:    string(style),
		Messages: strings.Split(text, ",\n"),
		Scroll:   scroll,
	})
}

// Notify records a clean file; clean files appear with no annotations.
func (j *JSON) Notify(message string) {
	j.clean = append(j.clean, j.file)
}

// Flush writes the buffered document.
func (j *JSON) Flush() error {
	doc := struct {
		Annotations []JSONAnnotation `json:"annotations"`
		Clean       []string         `json:"clean,omitempty"`
	}{
		Annotations: j.annotations,
		Clean:       j.clean,
	}
	if doc.Annotations == nil {
		doc.Annotations = []JSONAnnotation{}
	}

	enc := json.NewEncoder(j.out)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
