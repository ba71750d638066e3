// Package markdown imports Markdown source into a content tree.
//
// Headings open sections: levels 1 to 4 map to section, subsection,
// subsubsection and paragraph, and levels 5 and 6 also map to paragraph.
// The blocks that follow a heading nest inside it until a heading of the
// same or a lower level appears. Inline markup is flattened to plain
// text.
package markdown

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/texweave/texweave/pkg/content"
	"github.com/texweave/texweave/pkg/document"
	"github.com/texweave/texweave/pkg/errors"
)

// Parse converts src into top-level content nodes.
func Parse(src []byte) []content.Node {
	root := goldmark.New().Parser().Parse(text.NewReader(src))

	type level struct {
		sec   *content.Section
		depth int
	}
	var (
		top   []content.Node
		stack []level
	)
	emit := func(n content.Node) {
		if n == nil {
			return
		}
		if len(stack) == 0 {
			top = append(top, n)
			return
		}
		stack[len(stack)-1].sec.Append(n)
	}

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok {
			emit(convert(n, src))
			continue
		}

		for len(stack) > 0 && stack[len(stack)-1].depth >= h.Level {
			stack = stack[:len(stack)-1]
		}
		sec, _ := content.NewSectionRank(inlineText(h, src), rankFor(h.Level))
		emit(sec)
		stack = append(stack, level{sec: sec, depth: h.Level})
	}
	return top
}

// Read reads all of r and builds a document from it.
func Read(r io.Reader, defaults ...document.Option) (*document.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read markdown")
	}
	doc, err := document.New(defaults...)
	if err != nil {
		return nil, err
	}
	doc.Insert(Parse(src)...)
	return doc, nil
}

func rankFor(level int) content.Rank {
	if level >= 4 {
		return content.RankParagraph
	}
	return content.Rank(level - 1)
}

func convert(n ast.Node, src []byte) content.Node {
	switch n := n.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		return content.NewText(inlineText(n, src) + "\n")
	case *ast.List:
		env := "itemize"
		if n.IsOrdered() {
			env = "enumerate"
		}
		b := content.NewBlock(env)
		for item := n.FirstChild(); item != nil; item = item.NextSibling() {
			appendItem(b, item, src)
		}
		return b
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		return content.NewBlockWith("verbatim", content.NewText(string(lines(n, src))))
	case *ast.Blockquote:
		b := content.NewBlock("quote")
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			if node := convert(c, src); node != nil {
				b.Append(node)
			}
		}
		return b
	case *ast.ThematicBreak:
		return content.NewText("\\hrule\n")
	case *ast.HTMLBlock:
		return nil
	}
	if t := inlineText(n, src); t != "" {
		return content.NewText(t + "\n")
	}
	return nil
}

// appendItem adds one list item. Nested lists follow the item inside the
// same environment.
func appendItem(b *content.Block, item ast.Node, src []byte) {
	var (
		parts  []string
		nested []content.Node
	)
	for c := item.FirstChild(); c != nil; c = c.NextSibling() {
		if _, ok := c.(*ast.List); ok {
			nested = append(nested, convert(c, src))
			continue
		}
		if t := inlineText(c, src); t != "" {
			parts = append(parts, t)
		}
	}
	b.Append(content.Item(content.NewText(strings.Join(parts, " "))))
	b.Append(nested...)
}

func inlineText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	writeInline(&buf, n, src)
	return strings.TrimSpace(buf.String())
}

func writeInline(buf *bytes.Buffer, n ast.Node, src []byte) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			buf.Write(c.Segment.Value(src))
			switch {
			case c.HardLineBreak():
				buf.WriteByte('\n')
			case c.SoftLineBreak():
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(c.Value)
		case *ast.AutoLink:
			buf.Write(c.URL(src))
		default:
			writeInline(buf, c, src)
		}
	}
}

func lines(n ast.Node, src []byte) []byte {
	var buf bytes.Buffer
	segs := n.Lines()
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		buf.Write(seg.Value(src))
	}
	return buf.Bytes()
}
