package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/texweave/texweave/pkg/outline"
	"github.com/texweave/texweave/pkg/pipeline"
)

// outlineCommand draws the section and environment structure of a
// source as Graphviz DOT or SVG.
func (c *CLI) outlineCommand() *cobra.Command {
	var (
		flags  sourceFlags
		output string
		leaves bool
	)

	cmd := &cobra.Command{
		Use:   "outline [file|-]",
		Short: "Draw the structure of a document as DOT or SVG",
		Example: `  texweave outline paper.toml               # writes paper.dot
  texweave outline notes.md -o notes.svg --leaves`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options(cmd, args[0], flags)
			if err != nil {
				return err
			}
			doc, err := pipeline.Decode(opts)
			if err != nil {
				return err
			}
			dot := outline.ToDOT(doc.Title(), doc.Nodes(), outline.Options{Leaves: leaves})

			if output == "-" {
				_, err := fmt.Fprint(c.out, dot)
				return err
			}
			if output == "" {
				output = defaultOutput(args[0], ".dot")
			}
			if err := c.writeDiagram(cmd.Context(), output, dot); err != nil {
				return err
			}
			c.printSuccess("Outlined %d nodes", doc.NodeCount())
			c.printFile(output)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", `output file, .dot or .svg ("-" for stdout DOT)`)
	cmd.Flags().BoolVar(&leaves, "leaves", false, "include text and math nodes")
	return cmd
}
