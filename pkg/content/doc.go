// Package content defines the document content model: a closed set of node
// variants that callers compose into a tree before rendering it to LaTeX.
//
// # Overview
//
// Every value a caller places in a document is a [Node]. The set of node
// variants is sealed (Node has an unexported method), so the renderer in
// package render can switch over all of them:
//
//   - [Text]: raw text, written verbatim
//   - [Math]: an inline math span ($...$)
//   - [Equation]: a displayed equation made of [Element] values
//   - [*Section]: a titled section at a fixed [Rank]
//   - [*Block]: a named environment (\begin{kind}...\end{kind})
//   - [*Tag]: a single-argument command wrapping exactly one child (\item)
//   - [*Table]: a tabular grid of nodes
//   - [*Figure], [*Listing]: included graphics and source listings
//
// # Building Trees
//
// Trees are built bottom-up. Only sections and blocks accept children after
// construction; they implement [Container]:
//
//	sec := content.NewSection("Examples")
//	list := content.NewBlock("itemize")
//	for _, c := range []string{"France", "UK"} {
//	    list.Append(content.Item(content.NewText(c)))
//	}
//	sec.Append(content.NewText("Some countries"), list)
//
// When the parent is only known as a Node, [Append] reports an
// UNSUPPORTED_OPERATION error for variants that cannot hold children.
//
// # Equations
//
// [Classify] turns a raw token into an equation element: the comparison
// literals "=", "==", "<=", "<", ">=", ">", "!=" and "<>" become a
// [Symbol]; every other token is kept as a [Term].
//
//	eq := content.EquationFromTokens("a", "=", "b")
//
// Text is never escaped. Characters that are significant to LaTeX are
// passed through unchanged.
package content
