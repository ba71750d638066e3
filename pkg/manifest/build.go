package manifest

import (
	"strconv"

	"github.com/texweave/texweave/pkg/content"
	"github.com/texweave/texweave/pkg/errors"
)

var sectionRanks = map[string]content.Rank{
	"section":       content.RankSection,
	"subsection":    content.RankSubsection,
	"subsubsection": content.RankSubsubsection,
	"paragraph":     content.RankParagraph,
}

// Build converts a single node description. path prefixes error messages.
func (n Node) Build(path string) (content.Node, error) {
	return n.build(path)
}

func (n Node) build(path string) (content.Node, error) {
	if rank, ok := sectionRanks[n.Type]; ok {
		sec, err := content.NewSectionRank(n.Title, rank)
		if err != nil {
			return nil, invalid(path, err)
		}
		if err := n.appendChildren(sec, path); err != nil {
			return nil, err
		}
		return sec, nil
	}

	switch n.Type {
	case "text":
		return content.NewText(n.Text), nil
	case "math":
		return content.NewMath(n.Text), nil
	case "block":
		if n.Kind == "" {
			return nil, missing(path, "kind")
		}
		b := content.NewBlock(n.Kind)
		if err := n.appendChildren(b, path); err != nil {
			return nil, err
		}
		return b, nil
	case "item":
		child, err := n.buildChild(path)
		if err != nil {
			return nil, err
		}
		return content.Item(child), nil
	case "tag":
		if n.Name == "" {
			return nil, missing(path, "name")
		}
		child, err := n.buildChild(path)
		if err != nil {
			return nil, err
		}
		return content.NewTag(n.Name, child), nil
	case "table":
		return n.buildTable(path)
	case "equation":
		return n.buildEquation(path)
	case "figure":
		if n.File == "" {
			return nil, missing(path, "file")
		}
		fig := content.NewFigure(n.File, n.Caption)
		if n.Scale != nil {
			if err := fig.SetScale(*n.Scale); err != nil {
				return nil, invalid(path, err)
			}
		}
		return fig, nil
	case "listing":
		if n.File == "" {
			return nil, missing(path, "file")
		}
		return content.NewListing(n.File, n.Language), nil
	case "":
		return nil, missing(path, "type")
	}
	return nil, errors.New(errors.ErrCodeInvalidManifest, "%s: unknown node type %q", path, n.Type)
}

func (n Node) appendChildren(parent content.Container, path string) error {
	for i, c := range n.Children {
		child, err := c.build(indexPath(path+".children", i))
		if err != nil {
			return err
		}
		parent.Append(child)
	}
	return nil
}

// buildChild resolves the single child of an item or tag. A bare "text"
// key stands in for a text child.
func (n Node) buildChild(path string) (content.Node, error) {
	if n.Child != nil {
		return n.Child.build(path + ".child")
	}
	if n.Text != "" {
		return content.NewText(n.Text), nil
	}
	return nil, missing(path, "child")
}

func (n Node) buildTable(path string) (content.Node, error) {
	rows := make(content.Rows, len(n.Rows))
	for i, row := range n.Rows {
		cells := make([]content.Node, len(row))
		for j, cell := range row {
			c, err := cell.build(path + ".rows[" + strconv.Itoa(i) + "][" + strconv.Itoa(j) + "]")
			if err != nil {
				return nil, err
			}
			cells[j] = c
		}
		rows[i] = cells
	}
	t, err := content.NewTable(rows)
	if err != nil {
		return nil, invalid(path, err)
	}
	return t, nil
}

func (n Node) buildEquation(path string) (content.Node, error) {
	if len(n.Tokens) > 0 && len(n.Elements) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "%s: tokens and elements are mutually exclusive", path)
	}
	if len(n.Tokens) > 0 {
		return content.EquationFromTokens(n.Tokens...), nil
	}

	elems := make([]content.Element, 0, len(n.Elements))
	for i, e := range n.Elements {
		elem, err := e.build(indexPath(path+".elements", i))
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}
	return content.NewEquation(elems...), nil
}

func (e Element) build(path string) (content.Element, error) {
	switch e.Op {
	case "":
		if e.Token == "" {
			return nil, missing(path, "token")
		}
		return content.Classify(e.Token), nil
	case "sum", "product":
		required := []struct{ key, val string }{
			{"var", e.Var},
			{"from", e.From},
			{"to", e.To},
		}
		for _, r := range required {
			if r.val == "" {
				return nil, missing(path, r.key)
			}
		}
		v, lo, hi := content.Var(e.Var), content.ParseBound(e.From), content.ParseBound(e.To)
		if e.Op == "sum" {
			return content.NewSum(v, lo, hi), nil
		}
		return content.NewProduct(v, lo, hi), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidManifest, "%s: unknown operator %q", path, e.Op)
}

func indexPath(prefix string, i int) string {
	return prefix + "[" + strconv.Itoa(i) + "]"
}

func missing(path, key string) error {
	return errors.New(errors.ErrCodeInvalidManifest, "%s: missing %q", path, key)
}

func invalid(path string, err error) error {
	return errors.Wrap(errors.ErrCodeInvalidManifest, err, "%s", path)
}
