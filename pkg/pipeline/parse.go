package pipeline

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/texweave/texweave/pkg/document"
	"github.com/texweave/texweave/pkg/manifest"
	"github.com/texweave/texweave/pkg/markdown"
)

// Decode builds the document described by opts.Source.
func Decode(opts Options) (*document.Document, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if opts.Format == FormatMarkdown {
		return markdown.Read(bytes.NewReader(opts.Source), opts.DocumentOptions()...)
	}
	return manifest.Load(opts.Source, manifest.Format(opts.Format), opts.DocumentOptions()...)
}

func extension(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}
