// Package pipeline turns a document source into LaTeX text.
//
// The CLI and the HTTP API both go through [Runner.Execute], so caching,
// logging and hooks behave the same for every entry point.
//
// # Stages
//
//  1. Decode: read a manifest (TOML, YAML, JSON) or Markdown source into
//     a [document.Document]
//  2. Render: write the full LaTeX text, preamble to \end{document}
//  3. Outline (optional): Graphviz DOT of the document structure
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Source:   data,
//	    Filename: "letter.toml",
//	})
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("letter.tex", []byte(result.TeX), 0o644)
package pipeline

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/texweave/texweave/pkg/document"
	"github.com/texweave/texweave/pkg/errors"
	"github.com/texweave/texweave/pkg/manifest"
)

// Source formats.
const (
	FormatTOML     = string(manifest.FormatTOML)
	FormatYAML     = string(manifest.FormatYAML)
	FormatJSON     = string(manifest.FormatJSON)
	FormatMarkdown = "markdown"
)

// ValidFormats is the set of supported source formats.
var ValidFormats = map[string]bool{
	FormatTOML:     true,
	FormatYAML:     true,
	FormatJSON:     true,
	FormatMarkdown: true,
}

// Options configures a single build.
type Options struct {
	// Format of Source. When empty it is inferred from Filename.
	Format   string `json:"format,omitempty"`
	Source   []byte `json:"-"`
	Filename string `json:"filename,omitempty"`

	// Class and Packages are defaults; a manifest may override the class
	// and add packages.
	Class    string   `json:"class,omitempty"`
	Packages []string `json:"packages,omitempty"`

	// Outline also produces Graphviz DOT of the document structure.
	Outline bool `json:"outline,omitempty"`
	// Refresh skips the cache lookup but still stores the result.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a build.
type Result struct {
	// ID identifies this build in logs and API responses.
	ID uuid.UUID

	// Document is the decoded document. It is nil when the result came
	// from the cache.
	Document *document.Document

	// Title is the document title, available on cache hits too.
	Title string

	TeX        string
	OutlineDOT string

	// SourceHash is the SHA-256 of the source bytes.
	SourceHash string

	Stats    Stats
	CacheHit bool
}

// Stats contains build statistics.
type Stats struct {
	Nodes      int
	Bytes      int
	DecodeTime time.Duration
	RenderTime time.Duration
	Duration   time.Duration
}

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: toml, yaml, json, markdown)", format)
	}
	return nil
}

// InferFormat maps a filename extension to a source format.
func InferFormat(filename string) (string, error) {
	switch ext := extension(filename); ext {
	case "md", "markdown":
		return FormatMarkdown, nil
	default:
		f, err := manifest.FormatFromFilename(filename)
		if err != nil {
			return "", err
		}
		return string(f), nil
	}
}

// ValidateAndSetDefaults checks required fields and fills in defaults.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Source) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "source is empty")
	}
	if o.Format == "" {
		if o.Filename == "" {
			return errors.New(errors.ErrCodeInvalidFormat, "format or filename is required")
		}
		f, err := InferFormat(o.Filename)
		if err != nil {
			return err
		}
		o.Format = f
	}
	if o.Format == "yml" {
		o.Format = FormatYAML
	}
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	if o.Class == "" {
		o.Class = document.DefaultClass
	}
	for _, p := range o.Packages {
		if err := errors.ValidatePackageName(p); err != nil {
			return err
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// DocumentOptions returns the document defaults carried by o.
func (o *Options) DocumentOptions() []document.Option {
	opts := []document.Option{document.WithClass(o.Class)}
	if len(o.Packages) > 0 {
		opts = append(opts, document.WithPackages(slices.Clone(o.Packages)...))
	}
	return opts
}
