// Package document wraps a list of top-level content nodes with the
// metadata and fixed preamble/footer of a LaTeX document.
//
// # Usage
//
//	doc, err := document.New(
//	    document.WithTitle("Example"),
//	    document.WithAuthor("Someone"),
//	    document.WithPackages("amsmath"),
//	)
//	if err != nil {
//	    return err
//	}
//	sec := content.NewSection("Introduction")
//	sec.Append(content.NewText("hello"))
//	doc.Insert(sec)
//	err = doc.Save("out.tex")
//
// Top-level nodes are rendered with [render.Render] in insertion order,
// between the preamble and \end{document}.
package document

import (
	"io"
	"slices"
	"strings"

	"github.com/texweave/texweave/pkg/content"
	"github.com/texweave/texweave/pkg/errors"
	"github.com/texweave/texweave/pkg/render"
	"github.com/texweave/texweave/pkg/sink"
)

// DefaultClass is the document class used when none is set.
const DefaultClass = "article"

// Document is a LaTeX document under construction.
type Document struct {
	class    string
	title    string
	author   string
	date     string
	packages []string
	nodes    []content.Node
}

// Option configures a Document.
type Option func(*Document) error

// WithClass sets the document class.
func WithClass(class string) Option {
	return func(d *Document) error {
		if class == "" {
			return errors.New(errors.ErrCodeInvalidArgument, "document class cannot be empty")
		}
		d.class = class
		return nil
	}
}

// WithTitle sets the title. A titled document also gets \maketitle.
func WithTitle(title string) Option {
	return func(d *Document) error {
		d.title = title
		return nil
	}
}

// WithAuthor sets the author.
func WithAuthor(author string) Option {
	return func(d *Document) error {
		d.author = author
		return nil
	}
}

// WithDate sets the date.
func WithDate(date string) Option {
	return func(d *Document) error {
		d.date = date
		return nil
	}
}

// WithPackages adds packages with [Document.UsePackage].
func WithPackages(names ...string) Option {
	return func(d *Document) error {
		for _, name := range names {
			if err := d.UsePackage(name); err != nil {
				return err
			}
		}
		return nil
	}
}

// New returns an empty document.
func New(opts ...Option) (*Document, error) {
	d := &Document{class: DefaultClass}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Class returns the document class.
func (d *Document) Class() string { return d.class }

// Title returns the title.
func (d *Document) Title() string { return d.title }

// Author returns the author.
func (d *Document) Author() string { return d.author }

// Date returns the date.
func (d *Document) Date() string { return d.date }

// SetTitle changes the title.
func (d *Document) SetTitle(title string) { d.title = title }

// SetAuthor changes the author.
func (d *Document) SetAuthor(author string) { d.author = author }

// SetDate changes the date.
func (d *Document) SetDate(date string) { d.date = date }

// UsePackage adds a \usepackage line. Names are validated; a package
// already present is ignored.
func (d *Document) UsePackage(name string) error {
	if err := errors.ValidatePackageName(name); err != nil {
		return err
	}
	if !slices.Contains(d.packages, name) {
		d.packages = append(d.packages, name)
	}
	return nil
}

// Packages returns the packages in the order they were added.
func (d *Document) Packages() []string { return slices.Clone(d.packages) }

// Insert appends top-level nodes. Nil nodes are skipped.
func (d *Document) Insert(nodes ...content.Node) {
	for _, n := range nodes {
		if n != nil {
			d.nodes = append(d.nodes, n)
		}
	}
}

// Nodes returns the top-level nodes in insertion order.
func (d *Document) Nodes() []content.Node { return slices.Clone(d.nodes) }

// Len returns the number of top-level nodes.
func (d *Document) Len() int { return len(d.nodes) }

// NodeCount returns the number of nodes in all top-level trees.
func (d *Document) NodeCount() int {
	total := 0
	for _, n := range d.nodes {
		total += content.Count(n)
	}
	return total
}

// Preamble returns everything up to and including \begin{document}
// (and \maketitle when a title is set).
func (d *Document) Preamble() string {
	var b strings.Builder
	b.WriteString(`\documentclass{` + d.class + "}\n")
	for _, p := range d.packages {
		b.WriteString(`\usepackage{` + p + "}\n")
	}
	if d.title != "" {
		b.WriteString(`\title{` + d.title + "}\n")
	}
	if d.author != "" {
		b.WriteString(`\author{` + d.author + "}\n")
	}
	if d.date != "" {
		b.WriteString(`\date{` + d.date + "}\n")
	}
	b.WriteString("\\begin{document}\n")
	if d.title != "" {
		b.WriteString("\\maketitle\n")
	}
	return b.String()
}

// Footer is written after the last top-level node.
const Footer = "\\end{document}\n"

// WriteTo writes the full document to w: preamble, each top-level node in
// insertion order, then the footer.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var total int64

	n, err := io.WriteString(w, d.Preamble())
	total += int64(n)
	if err != nil {
		return total, errors.Wrap(errors.ErrCodeIO, err, "write preamble")
	}

	written, err := render.RenderAll(w, d.nodes...)
	total += written
	if err != nil {
		return total, err
	}

	n, err = io.WriteString(w, Footer)
	total += int64(n)
	if err != nil {
		return total, errors.Wrap(errors.ErrCodeIO, err, "write footer")
	}
	return total, nil
}

// String returns the full document text.
func (d *Document) String() string {
	var b strings.Builder
	_, _ = d.WriteTo(&b)
	return b.String()
}

// Save writes the document to path, replacing any existing file.
func (d *Document) Save(path string) error {
	return d.writeFile(path, sink.ModeCreate)
}

// Append writes the document at the end of the file at path.
func (d *Document) Append(path string) error {
	return d.writeFile(path, sink.ModeAppend)
}

func (d *Document) writeFile(path string, mode sink.Mode) error {
	f, err := sink.Open(path, mode)
	if err != nil {
		return err
	}
	if _, err := d.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
