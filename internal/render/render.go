// Package render produces the human-readable view of a serialized
// document by applying the external XSL stylesheet. Rendering is
// best-effort: a transform failure surfaces as an advisory error and
// never blocks export of the raw document.
package render

import (
	"fmt"
	"os"

	"github.com/wamuir/go-xslt"
)

// Renderer applies a fixed stylesheet file to serialized documents.
type Renderer struct {
	stylesheetPath string
}

// NewRenderer returns a renderer for the stylesheet at path. The file is
// read on each Render call; stylesheets are small and editing sessions
// are short-lived.
func NewRenderer(path string) *Renderer {
	return &Renderer{stylesheetPath: path}
}

// Render transforms the serialized document. On any failure it returns
// a nil rendering and the cause; callers degrade to empty output.
func (r *Renderer) Render(document []byte) ([]byte, error) {
	buf, err := os.ReadFile(r.stylesheetPath)
	if err != nil {
		return nil, fmt.Errorf("read stylesheet %s: %w", r.stylesheetPath, err)
	}
	style, err := xslt.NewStylesheet(buf)
	if err != nil {
		return nil, fmt.Errorf("parse stylesheet %s: %w", r.stylesheetPath, err)
	}
	defer style.Close()

	out, err := style.Transform(document)
	if err != nil {
		return nil, fmt.Errorf("transform document: %w", err)
	}
	return out, nil
}
