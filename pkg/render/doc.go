// Package render turns a content tree into LaTeX.
//
// # Overview
//
// [Render] walks a [content.Node] depth-first and writes each variant's
// delimiters around its rendered children:
//
//	sec := content.NewSection("Intro")
//	sec.Append(content.NewText("hello"))
//	err := render.Render(w, sec) // "\section{Intro}\nhello\n\n"
//
// Rendering reads the tree and never mutates it. Text is written without
// escaping. The only failure is a write error from the destination, which
// is reported once as an IO_ERROR; bytes after the first failed write are
// dropped.
//
// # Output Format
//
//	\section{T}\n ... \n\n                      sections (also \subsection, ...)
//	\begin{K}\n ... \end{K}\n                   blocks
//	\N <child>\n                                tags
//	$...$                                       inline math
//	\begin{equation}\n\displaystyle e e ...\n\end{equation}\n
//	\begin{tabular}{| c | c |}\n\hline\n a & b \\\n ... \hline\n\end{tabular}\n
package render
