package content

// Element is one item of an equation: a [Term], a [Symbol] or an
// [Operator].
type Element interface {
	element()
}

// Term is plain text inside an equation.
type Term string

func (Term) element() {}

// Classify converts a raw token into an equation element. The comparison
// tokens listed by [SymbolTokens] become a [Symbol]; every other token,
// including the empty string, becomes a [Term].
func Classify(tok string) Element {
	if s, ok := symbolTable[tok]; ok {
		return s
	}
	return Term(tok)
}

// Equation is a displayed equation.
type Equation struct {
	elements []Element
}

// NewEquation returns an equation made of elems, in order. Nil elements are
// skipped.
func NewEquation(elems ...Element) Equation {
	out := make([]Element, 0, len(elems))
	for _, e := range elems {
		if e != nil {
			out = append(out, e)
		}
	}
	return Equation{elements: out}
}

// EquationFromTokens classifies each token and returns the equation.
func EquationFromTokens(tokens ...string) Equation {
	out := make([]Element, len(tokens))
	for i, tok := range tokens {
		out[i] = Classify(tok)
	}
	return Equation{elements: out}
}

// Len returns the number of elements.
func (e Equation) Len() int { return len(e.elements) }

// Element returns the i-th element.
func (e Equation) Element(i int) Element { return e.elements[i] }

func (Equation) Kind() Kind { return KindEquation }
func (Equation) node()      {}
