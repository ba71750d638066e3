package content

import (
	"github.com/texweave/texweave/pkg/errors"
)

// Kind identifies a node variant.
type Kind int

// Node variants.
const (
	KindText Kind = iota
	KindMath
	KindEquation
	KindSection
	KindBlock
	KindTag
	KindTable
	KindFigure
	KindListing
)

var kindNames = [...]string{
	KindText:     "text",
	KindMath:     "math",
	KindEquation: "equation",
	KindSection:  "section",
	KindBlock:    "block",
	KindTag:      "tag",
	KindTable:    "table",
	KindFigure:   "figure",
	KindListing:  "listing",
}

// String returns the lowercase variant name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Kinds returns every node variant in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i := range kindNames {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Node is one element of a document tree.
//
// The interface is sealed: only the variants declared in this package
// implement it.
type Node interface {
	// Kind reports which variant the node is.
	Kind() Kind

	node()
}

// Container is implemented by the variants that accept children after
// construction: [*Section] and [*Block].
type Container interface {
	Node

	// Append adds children at the end, in order. Nil children, including
	// nil pointers of a variant type, are skipped; use [Append] to have
	// them reported instead.
	Append(children ...Node)

	// Len returns the number of children.
	Len() int

	// Child returns the i-th child.
	Child(i int) Node

	// Children returns a copy of the child list.
	Children() []Node
}

// Append adds children to parent when parent is a [Container].
//
// Every other variant returns an UNSUPPORTED_OPERATION error and is left
// unchanged. A nil child is an INVALID_ARGUMENT error and nothing is
// appended, so a successful call grows the child list by len(children).
func Append(parent Node, children ...Node) error {
	if isNil(parent) {
		return errors.New(errors.ErrCodeInvalidArgument, "cannot append to a nil node")
	}
	c, ok := parent.(Container)
	if !ok {
		return errors.New(errors.ErrCodeUnsupported, "cannot append children to a %s node", parent.Kind())
	}
	for i, ch := range children {
		if isNil(ch) {
			return errors.New(errors.ErrCodeInvalidArgument, "child %d is nil", i)
		}
	}
	c.Append(children...)
	return nil
}

// isNil reports whether n is nil or a nil pointer to one of the variants.
func isNil(n Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *Section:
		return v == nil
	case *Block:
		return v == nil
	case *Tag:
		return v == nil
	case *Table:
		return v == nil
	case *Figure:
		return v == nil
	case *Listing:
		return v == nil
	}
	return false
}

// Text is raw text written verbatim.
type Text string

// NewText returns a text node.
func NewText(s string) Text { return Text(s) }

func (Text) Kind() Kind { return KindText }
func (Text) node()      {}

// Math is the content of an inline math span.
type Math string

// NewMath returns an inline math node.
func NewMath(s string) Math { return Math(s) }

func (Math) Kind() Kind { return KindMath }
func (Math) node()      {}

// children is the ordered child list shared by sections and blocks.
type children []Node

func (c *children) append(nodes ...Node) {
	for _, n := range nodes {
		if !isNil(n) {
			*c = append(*c, n)
		}
	}
}

func (c children) clone() []Node {
	out := make([]Node, len(c))
	copy(out, c)
	return out
}
