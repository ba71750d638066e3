package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/texweave/texweave/pkg/content"
	"github.com/texweave/texweave/pkg/document"
	"github.com/texweave/texweave/pkg/outline"
	"github.com/texweave/texweave/pkg/pipeline"
)

// inspectRow is one node of the tree in display order.
type inspectRow struct {
	depth    int
	kind     string
	label    string
	children int
}

// inspectCommand prints the node tree of a source as a table without
// rendering it.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		flags    sourceFlags
		maxLabel int
	)

	cmd := &cobra.Command{
		Use:   "inspect [file|-]",
		Short: "Show the node tree of a document source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options(cmd, args[0], flags)
			if err != nil {
				return err
			}
			doc, err := pipeline.Decode(opts)
			if err != nil {
				return err
			}

			c.printDocumentHeader(doc)
			fmt.Fprintln(c.out, inspectTable(inspectRows(doc, maxLabel)))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&maxLabel, "width", 40, "truncate labels to this many characters")
	return cmd
}

func (c *CLI) printDocumentHeader(doc *document.Document) {
	title := doc.Title()
	if title == "" {
		title = "(untitled)"
	}
	fmt.Fprintln(c.out, styleTitle.Render(title))
	c.printKeyValue("Class", doc.Class())
	if a := doc.Author(); a != "" {
		c.printKeyValue("Author", a)
	}
	if p := doc.Packages(); len(p) > 0 {
		c.printKeyValue("Packages", strings.Join(p, ", "))
	}
	c.printKeyValue("Nodes", strconv.Itoa(doc.NodeCount()))
}

func inspectRows(doc *document.Document, maxLabel int) []inspectRow {
	var rows []inspectRow
	for _, top := range doc.Nodes() {
		content.Walk(top, func(n content.Node, depth int) bool {
			r := inspectRow{depth: depth, kind: n.Kind().String(), label: outline.Label(n, maxLabel)}
			if cn, ok := n.(content.Container); ok {
				r.children = cn.Len()
			}
			rows = append(rows, r)
			return true
		})
	}
	return rows
}

func inspectTable(rows []inspectRow) string {
	cells := make([][]string, len(rows))
	for i, r := range rows {
		children := ""
		if r.children > 0 {
			children = strconv.Itoa(r.children)
		}
		cells[i] = []string{
			strconv.Itoa(i),
			strings.Repeat("  ", r.depth) + r.kind,
			r.label,
			children,
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Kind", "Label", "Children").
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if row < len(rows) && rows[row].kind == content.KindSection.String() {
				return base.Foreground(colorCyan)
			}
			if col == 0 || col == 3 {
				return base.Foreground(colorDim)
			}
			return base
		})
	return t.Render()
}
