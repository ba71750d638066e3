// Package pkg holds the libraries behind texweave, a toolkit for building
// LaTeX documents from Go values, manifests and Markdown.
//
// # Layout
//
//   - [content]: the node tree (sections, blocks, tags, tables, equations,
//     figures, listings) and its symbols and operators
//   - [render]: turns a node tree into LaTeX text
//   - [document]: class, metadata, packages, preamble and footer
//   - [sink]: buffered output files with create and append modes
//   - [manifest], [markdown]: declarative and Markdown sources
//   - [outline]: Graphviz diagrams of a tree's structure
//   - [pipeline]: source to LaTeX with caching, shared by CLI and API
//   - [cache], [storage]: build cache and stored renderings
//   - [errors], [observability], [buildinfo]: supporting packages
//
// # Data Flow
//
//	manifest / markdown / Go code
//	         ↓
//	    [content] tree inside a [document]
//	         ↓
//	    [render] (LaTeX text)
//	         ↓
//	    [sink] file, HTTP response or [storage]
//
// # Quick Start
//
//	doc, _ := document.New(document.WithTitle("Example"))
//	intro := content.NewSection("Introduction")
//	intro.Append(content.NewText("hello\n"))
//	doc.Insert(intro)
//	if err := doc.Save("example.tex"); err != nil {
//	    return err
//	}
package pkg
