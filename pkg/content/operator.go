package content

import (
	"strconv"
)

// OperatorKind selects a big operator.
type OperatorKind int

// Big operators.
const (
	Sum OperatorKind = iota
	Product
)

// Command returns the LaTeX command for k.
func (k OperatorKind) Command() string {
	switch k {
	case Sum:
		return `\sum`
	case Product:
		return `\prod`
	}
	return ""
}

// String returns "sum" or "product".
func (k OperatorKind) String() string {
	switch k {
	case Sum:
		return "sum"
	case Product:
		return "product"
	}
	return "unknown"
}

// Bound is an operator variable or limit: either a name or an integer.
type Bound struct {
	name  string
	value int
	isInt bool
}

// Var returns a named bound.
func Var(name string) Bound { return Bound{name: name} }

// Int returns an integer bound.
func Int(v int) Bound { return Bound{value: v, isInt: true} }

// ParseBound returns an integer bound when s is a decimal integer and a
// named bound otherwise.
func ParseBound(s string) Bound {
	if v, err := strconv.Atoi(s); err == nil {
		return Int(v)
	}
	return Var(s)
}

// IsInt reports whether b holds an integer.
func (b Bound) IsInt() bool { return b.isInt }

// String returns the bound as written in LaTeX.
func (b Bound) String() string {
	if b.isInt {
		return strconv.Itoa(b.value)
	}
	return b.name
}

// Operator is a big operator with a variable and lower/upper limits,
// for example a sum over i from 0 to n.
type Operator struct {
	Op    OperatorKind
	Var   Bound
	Lower Bound
	Upper Bound
}

// NewSum returns a sum over v from lo to hi.
func NewSum(v, lo, hi Bound) Operator {
	return Operator{Op: Sum, Var: v, Lower: lo, Upper: hi}
}

// NewProduct returns a product over v from lo to hi.
func NewProduct(v, lo, hi Bound) Operator {
	return Operator{Op: Product, Var: v, Lower: lo, Upper: hi}
}

// Code returns the LaTeX fragment, e.g. \sum_{i = 0}^{n}.
func (o Operator) Code() string {
	return o.Op.Command() + "_{" + o.Var.String() + " = " + o.Lower.String() + "}^{" + o.Upper.String() + "}"
}

func (Operator) element() {}
