package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/texweave/texweave/pkg/errors"
	"github.com/texweave/texweave/pkg/pipeline"
	"github.com/texweave/texweave/pkg/sink"
)

// stdinArg names standard input as a source.
const stdinArg = "-"

// sourceFlags are shared by every command that reads a document source.
type sourceFlags struct {
	format   string
	class    string
	packages []string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "source format: toml, yaml, json, markdown (default: from file extension)")
	cmd.Flags().StringVar(&f.class, "class", "", "document class (default from config)")
	cmd.Flags().StringSliceVarP(&f.packages, "package", "p", nil, "extra \\usepackage names (repeatable)")
}

// options builds pipeline options for the source at arg, applying config
// defaults under the flags.
func (c *CLI) options(cmd *cobra.Command, arg string, f sourceFlags) (pipeline.Options, error) {
	src, err := readSource(cmd.InOrStdin(), arg)
	if err != nil {
		return pipeline.Options{}, err
	}
	opts := pipeline.Options{
		Format:   f.format,
		Source:   src,
		Class:    f.class,
		Packages: append(append([]string(nil), c.Config.Document.Packages...), f.packages...),
		Logger:   loggerFromContext(cmd.Context()),
	}
	if arg != stdinArg {
		opts.Filename = filepath.Base(arg)
	} else if opts.Format == "" {
		return opts, errors.New(errors.ErrCodeInvalidFormat, "--format is required when reading stdin")
	}
	if opts.Class == "" {
		opts.Class = c.Config.Document.Class
	}
	return opts, nil
}

func readSource(stdin io.Reader, arg string) ([]byte, error) {
	if arg == stdinArg {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeIO, err, "read stdin")
		}
		return data, nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read %s", arg)
	}
	return data, nil
}

// defaultOutput derives "<name><ext>" from the source path.
func defaultOutput(arg, ext string) string {
	if arg == stdinArg {
		return "texweave" + ext
	}
	base := strings.TrimSuffix(arg, filepath.Ext(arg))
	return base + ext
}

// writeOutput writes data to path using the sink mode.
func writeOutput(path string, data []byte, mode sink.Mode) error {
	f, err := sink.Open(path, mode)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
