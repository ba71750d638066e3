package manifest

import (
	"path/filepath"
	"strings"

	"github.com/texweave/texweave/pkg/errors"
)

// Format identifies a manifest encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Formats returns the supported manifest formats.
func Formats() []Format {
	return []Format{FormatTOML, FormatYAML, FormatJSON}
}

// ParseFormat accepts a format name, case-insensitively. "yml" is an
// alias for yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported manifest format %q", s)
}

// FormatFromFilename infers the format from a file extension.
func FormatFromFilename(name string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer manifest format from %q", name)
	}
	return ParseFormat(ext)
}
