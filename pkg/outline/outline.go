// Package outline draws the structure of a content tree as a Graphviz
// diagram.
//
// # Usage
//
//	dot := outline.ToDOT("Example", doc.Nodes(), outline.Options{})
//	svg, err := outline.RenderSVG(ctx, dot)
//
// Every node becomes a box labelled with its kind and title (or
// environment, tag name, file). Edges run from a container to its
// children in document order. Text and math leaves are left out unless
// [Options.Leaves] is set.
package outline

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/texweave/texweave/pkg/content"
	"github.com/texweave/texweave/pkg/errors"
)

// Options configures outline generation.
type Options struct {
	// Leaves includes text and math nodes in the diagram.
	Leaves bool
	// MaxLabel truncates leaf labels. Zero means 32 characters.
	MaxLabel int
}

const defaultMaxLabel = 32

// ToDOT converts the top-level nodes of a document to Graphviz DOT. The
// root box is labelled with title, or "document" when title is empty.
func ToDOT(title string, nodes []content.Node, opts Options) string {
	if opts.MaxLabel <= 0 {
		opts.MaxLabel = defaultMaxLabel
	}
	if title == "" {
		title = "document"
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")
	fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=lightgrey];\n", "root", title)

	var edges []string
	next := 0
	for _, top := range nodes {
		// parents[d] is the id of the enclosing node at depth d.
		parents := []string{"root"}
		content.Walk(top, func(n content.Node, depth int) bool {
			if !opts.Leaves && isLeaf(n) {
				return false
			}
			id := "n" + strconv.Itoa(next)
			next++
			fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(attrs(n, opts.MaxLabel), ", "))

			parents = parents[:depth+1]
			edges = append(edges, fmt.Sprintf("  %q -> %q;\n", parents[depth], id))
			parents = append(parents, id)
			return true
		})
	}

	buf.WriteString("\n")
	for _, e := range edges {
		buf.WriteString(e)
	}
	buf.WriteString("}\n")
	return buf.String()
}

func isLeaf(n content.Node) bool {
	switch n.Kind() {
	case content.KindText, content.KindMath:
		return true
	}
	return false
}

// Label returns the box label for a node. Text and math labels are cut
// to max runes; a non-positive max means the default of 32.
func Label(n content.Node, max int) string {
	switch v := n.(type) {
	case *content.Section:
		return v.Rank().Command() + ": " + v.Title()
	case *content.Block:
		return v.Environment()
	case *content.Tag:
		return `\` + v.Name()
	case *content.Table:
		return fmt.Sprintf("tabular %dx%d", v.NumRows(), v.Columns())
	case content.Equation:
		return fmt.Sprintf("equation (%d)", v.Len())
	case *content.Figure:
		return "figure: " + v.Filename()
	case *content.Listing:
		return "listing: " + v.Filename()
	case content.Text:
		return truncate(strings.TrimSpace(string(v)), max)
	case content.Math:
		return truncate("$"+string(v)+"$", max)
	}
	return n.Kind().String()
}

func attrs(n content.Node, max int) []string {
	a := []string{fmt.Sprintf("label=%q", Label(n, max))}
	switch n.Kind() {
	case content.KindSection:
		a = append(a, "fillcolor=lightblue")
	case content.KindText, content.KindMath:
		a = append(a, "style=\"rounded,dashed\"")
	}
	return a
}

func truncate(s string, max int) string {
	if max <= 0 {
		max = defaultMaxLabel
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

// RenderSVG renders DOT source to SVG using the embedded Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the SVG scales with its
// container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
