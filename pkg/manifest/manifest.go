package manifest

import (
	"bytes"
	"encoding/json"
	"io"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/texweave/texweave/pkg/document"
	"github.com/texweave/texweave/pkg/errors"
)

// Manifest is a decoded document description.
type Manifest struct {
	Class    string   `toml:"class" yaml:"class" json:"class"`
	Title    string   `toml:"title" yaml:"title" json:"title"`
	Author   string   `toml:"author" yaml:"author" json:"author"`
	Date     string   `toml:"date" yaml:"date" json:"date"`
	Packages []string `toml:"packages" yaml:"packages" json:"packages"`
	Content  []Node   `toml:"content" yaml:"content" json:"content"`
}

// Node describes one content node. Which fields apply depends on Type.
type Node struct {
	Type     string    `toml:"type" yaml:"type" json:"type"`
	Text     string    `toml:"text" yaml:"text" json:"text"`
	Title    string    `toml:"title" yaml:"title" json:"title"`
	Kind     string    `toml:"kind" yaml:"kind" json:"kind"`
	Name     string    `toml:"name" yaml:"name" json:"name"`
	Children []Node    `toml:"children" yaml:"children" json:"children"`
	Child    *Node     `toml:"child" yaml:"child" json:"child"`
	Rows     [][]Node  `toml:"rows" yaml:"rows" json:"rows"`
	Tokens   []string  `toml:"tokens" yaml:"tokens" json:"tokens"`
	Elements []Element `toml:"elements" yaml:"elements" json:"elements"`
	File     string    `toml:"file" yaml:"file" json:"file"`
	Caption  string    `toml:"caption" yaml:"caption" json:"caption"`
	Scale    *float64  `toml:"scale" yaml:"scale" json:"scale"`
	Language string    `toml:"language" yaml:"language" json:"language"`
}

// Element is one equation element: either a token or an operator.
type Element struct {
	Token string `toml:"token" yaml:"token" json:"token"`
	Op    string `toml:"op" yaml:"op" json:"op"`
	Var   string `toml:"var" yaml:"var" json:"var"`
	From  string `toml:"from" yaml:"from" json:"from"`
	To    string `toml:"to" yaml:"to" json:"to"`
}

// Parse decodes data in the given format. Unknown keys are rejected.
func Parse(data []byte, f Format) (*Manifest, error) {
	var m Manifest
	switch f {
	case FormatTOML:
		md, err := toml.Decode(string(data), &m)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return nil, errors.New(errors.ErrCodeInvalidManifest, "unknown keys: %s", strings.Join(keys, ", "))
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil && err != io.EOF {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode yaml")
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&m); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode json")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported manifest format %q", f)
	}
	return &m, nil
}

// Decode reads all of r and parses it with [Parse].
func Decode(r io.Reader, f Format) (*Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read manifest")
	}
	return Parse(data, f)
}

// Load parses data and builds the document in one step.
func Load(data []byte, f Format, defaults ...document.Option) (*document.Document, error) {
	m, err := Parse(data, f)
	if err != nil {
		return nil, err
	}
	return m.Document(defaults...)
}

// Document builds the described document. The defaults are applied first,
// so values set in the manifest win; packages from both are kept.
func (m *Manifest) Document(defaults ...document.Option) (*document.Document, error) {
	opts := append([]document.Option{}, defaults...)
	if m.Class != "" {
		opts = append(opts, document.WithClass(m.Class))
	}
	if m.Title != "" {
		opts = append(opts, document.WithTitle(m.Title))
	}
	if m.Author != "" {
		opts = append(opts, document.WithAuthor(m.Author))
	}
	if m.Date != "" {
		opts = append(opts, document.WithDate(m.Date))
	}

	doc, err := document.New(opts...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "document options")
	}
	for i, p := range m.Packages {
		if err := doc.UsePackage(p); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "packages[%d]", i)
		}
	}
	for i, n := range m.Content {
		node, err := n.build(indexPath("content", i))
		if err != nil {
			return nil, err
		}
		doc.Insert(node)
	}
	return doc, nil
}
