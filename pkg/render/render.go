package render

import (
	"io"
	"strings"

	"github.com/texweave/texweave/pkg/content"
	"github.com/texweave/texweave/pkg/errors"
)

// Render writes the LaTeX for n to w.
func Render(w io.Writer, n content.Node) error {
	_, err := renderTo(w, n)
	return err
}

// RenderAll renders nodes one after another, in order, and returns the number
// of bytes written.
func RenderAll(w io.Writer, nodes ...content.Node) (int64, error) {
	var total int64
	for _, n := range nodes {
		written, err := renderTo(w, n)
		total += written
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns the LaTeX for n. It panics only if n contains a variant
// the renderer does not know, which cannot happen for trees built with
// package content.
func String(n content.Node) string {
	var b strings.Builder
	if err := Render(&b, n); err != nil {
		panic(err)
	}
	return b.String()
}

func renderTo(w io.Writer, n content.Node) (int64, error) {
	ew := newWriter(w)
	if err := node(ew, n); err != nil {
		return ew.n, err
	}
	if ew.err != nil {
		return ew.n, errors.Wrap(errors.ErrCodeIO, ew.err, "write rendered output")
	}
	return ew.n, nil
}

// node dispatches on the closed set of content variants. Adding a variant to
// package content requires a case here; the default branch reports it.
// Nil nodes, including nil variant pointers, render as nothing.
func node(w *writer, n content.Node) error {
	if n == nil || nilPointer(n) {
		return nil
	}
	switch v := n.(type) {
	case content.Text:
		w.WriteString(string(v))
	case content.Math:
		w.WriteStrings("$", string(v), "$")
	case *content.Section:
		return section(w, v)
	case *content.Block:
		return block(w, v)
	case *content.Tag:
		return tag(w, v)
	case content.Equation:
		equation(w, v)
	case *content.Table:
		return table(w, v)
	case *content.Figure:
		w.WriteStrings(`\begin{figure}`, "\n\t", `\includegraphics[scale=`, v.ScaleString(), "]{", v.Filename(), "}\n\t",
			`\caption{`, v.Caption(), "}\n", `\end{figure}`, "\n")
	case *content.Listing:
		w.WriteStrings(`\lstinputlisting[language=`, v.Language(), "]{", v.Filename(), "}\n")
	default:
		return errors.New(errors.ErrCodeInternal, "no renderer for node type %T", n)
	}
	return nil
}

func nilPointer(n content.Node) bool {
	switch v := n.(type) {
	case *content.Section:
		return v == nil
	case *content.Block:
		return v == nil
	case *content.Tag:
		return v == nil
	case *content.Table:
		return v == nil
	case *content.Figure:
		return v == nil
	case *content.Listing:
		return v == nil
	}
	return false
}

func section(w *writer, s *content.Section) error {
	w.WriteStrings(`\`, s.Rank().Command(), "{", s.Title(), "}\n")
	if err := children(w, s); err != nil {
		return err
	}
	w.WriteString("\n\n")
	return nil
}

func block(w *writer, b *content.Block) error {
	w.WriteStrings(`\begin{`, b.Environment(), "}\n")
	if err := children(w, b); err != nil {
		return err
	}
	w.WriteStrings(`\end{`, b.Environment(), "}\n")
	return nil
}

func children(w *writer, c content.Container) error {
	for i := 0; i < c.Len(); i++ {
		if err := node(w, c.Child(i)); err != nil {
			return err
		}
	}
	return nil
}

func tag(w *writer, t *content.Tag) error {
	w.WriteStrings(`\`, t.Name(), " ")
	if err := node(w, t.Child()); err != nil {
		return err
	}
	w.WriteString("\n")
	return nil
}

func equation(w *writer, eq content.Equation) {
	w.WriteString("\\begin{equation}\n\\displaystyle ")
	for i := 0; i < eq.Len(); i++ {
		w.WriteStrings(element(eq.Element(i)), " ")
	}
	w.WriteString("\n\\end{equation}\n")
}

// element returns the fragment for one equation element.
func element(e content.Element) string {
	switch v := e.(type) {
	case content.Term:
		return string(v)
	case content.Symbol:
		return v.Code()
	case content.Operator:
		return v.Code()
	}
	return ""
}

// ColumnSpec returns the tabular column specification for n columns:
// "|" followed by " c |" per column.
func ColumnSpec(n int) string {
	return "|" + strings.Repeat(" c |", n)
}

func table(w *writer, t *content.Table) error {
	w.WriteStrings(`\begin{tabular}{`, ColumnSpec(t.Columns()), "}\n")
	for i := 0; i < t.NumRows(); i++ {
		w.WriteString("\\hline\n")
		for j := 0; j < t.RowLen(i); j++ {
			if j > 0 {
				w.WriteString(" & ")
			}
			if err := node(w, t.Cell(i, j)); err != nil {
				return err
			}
		}
		w.WriteString(" \\\\\n")
	}
	w.WriteString("\\hline\n\\end{tabular}\n")
	return nil
}
