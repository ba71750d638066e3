package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/texweave/texweave/pkg/outline"
	"github.com/texweave/texweave/pkg/sink"
)

// buildOpts holds the flags for the build command.
type buildOpts struct {
	source  sourceFlags
	output  string // .tex path, default derived from the source
	stdout  bool   // write LaTeX to stdout instead of a file
	append  bool   // append to output instead of truncating
	outline string // optional .dot or .svg structure diagram
	noCache bool
	refresh bool
}

// buildCommand creates the build command, which renders a manifest or
// Markdown file to LaTeX.
func (c *CLI) buildCommand() *cobra.Command {
	var opts buildOpts

	cmd := &cobra.Command{
		Use:   "build [file|-]",
		Short: "Render a manifest or Markdown file to LaTeX",
		Long: `Render a TOML, YAML, JSON or Markdown document description to LaTeX.

The format is inferred from the file extension unless --format is given.
Use "-" to read from stdin.`,
		Example: `  texweave build paper.toml
  texweave build notes.md -o out/notes.tex --package amsmath
  cat doc.yaml | texweave build - -f yaml --stdout`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuild(cmd, args[0], opts)
		},
	}

	opts.source.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output .tex file (default: <input>.tex)")
	cmd.Flags().BoolVar(&opts.stdout, "stdout", false, "write LaTeX to stdout")
	cmd.Flags().BoolVar(&opts.append, "append", false, "append to the output file instead of replacing it")
	cmd.Flags().StringVar(&opts.outline, "outline", "", "also write a structure diagram (.dot or .svg)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the build cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "rebuild even when cached")
	cmd.MarkFlagsMutuallyExclusive("stdout", "output")
	cmd.MarkFlagsMutuallyExclusive("stdout", "append")

	return cmd
}

func (c *CLI) runBuild(cmd *cobra.Command, arg string, opts buildOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	popts, err := c.options(cmd, arg, opts.source)
	if err != nil {
		return err
	}
	popts.Refresh = opts.refresh
	popts.Outline = opts.outline != ""

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	result, err := runner.Execute(ctx, popts)
	if err != nil {
		return err
	}
	prog.done("Built " + arg)

	if opts.stdout {
		_, err := fmt.Fprint(c.out, result.TeX)
		return err
	}

	out := opts.output
	if out == "" {
		out = defaultOutput(arg, ".tex")
	}
	mode := sink.ModeCreate
	if opts.append {
		mode = sink.ModeAppend
	}
	if err := writeOutput(out, []byte(result.TeX), mode); err != nil {
		return err
	}

	c.printSuccess("Built %s", filepath.Base(out))
	c.printFile(out)
	if opts.outline != "" {
		if err := c.writeDiagram(ctx, opts.outline, result.OutlineDOT); err != nil {
			return err
		}
		c.printFile(opts.outline)
	}
	c.printStats(result.Stats.Nodes, result.Stats.Bytes, result.CacheHit)
	c.printNextStep("Compile with", "pdflatex "+out)
	return nil
}

// writeDiagram writes DOT as-is, or renders it to SVG for .svg paths.
func (c *CLI) writeDiagram(ctx context.Context, path, dot string) error {
	if !strings.EqualFold(filepath.Ext(path), ".svg") {
		return writeOutput(path, []byte(dot), sink.ModeCreate)
	}
	spin := newSpinner(ctx, c.errOut, "Rendering "+filepath.Base(path))
	spin.start()
	svg, err := outline.RenderSVG(ctx, dot)
	spin.stop()
	if err != nil {
		return err
	}
	return writeOutput(path, svg, sink.ModeCreate)
}
