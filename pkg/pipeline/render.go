package pipeline

import (
	"strings"

	"github.com/texweave/texweave/pkg/document"
	"github.com/texweave/texweave/pkg/outline"
)

// RenderTeX returns the full LaTeX text of doc.
func RenderTeX(doc *document.Document) (string, error) {
	var b strings.Builder
	if _, err := doc.WriteTo(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderOutline returns Graphviz DOT for the structure of doc.
func RenderOutline(doc *document.Document) string {
	return outline.ToDOT(doc.Title(), doc.Nodes(), outline.Options{})
}
