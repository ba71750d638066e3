package content

import (
	"github.com/texweave/texweave/pkg/errors"
)

// Symbol is a comparison sign inside an equation.
type Symbol int

// Comparison symbols.
const (
	Equals Symbol = iota
	LessOrEquals
	Less
	MoreOrEquals
	More
	NotEquals
)

// symbolTable maps every recognized token to its symbol.
var symbolTable = map[string]Symbol{
	"=":  Equals,
	"==": Equals,
	"<=": LessOrEquals,
	"<":  Less,
	">=": MoreOrEquals,
	">":  More,
	"!=": NotEquals,
	"<>": NotEquals,
}

var symbolStrings = [...]string{
	Equals:       "=",
	LessOrEquals: "<=",
	Less:         "<",
	MoreOrEquals: ">=",
	More:         ">",
	NotEquals:    "!=",
}

var symbolCodes = [...]string{
	Equals:       " = ",
	LessOrEquals: ` \leq `,
	Less:         " < ",
	MoreOrEquals: ` \geq `,
	More:         " > ",
	NotEquals:    ` \neq `,
}

// IsSymbol reports whether tok is one of the recognized comparison tokens.
func IsSymbol(tok string) bool {
	_, ok := symbolTable[tok]
	return ok
}

// ParseSymbol returns the symbol for tok, or an INVALID_TOKEN error when tok
// is not a recognized comparison token.
func ParseSymbol(tok string) (Symbol, error) {
	s, ok := symbolTable[tok]
	if !ok {
		return 0, errors.New(errors.ErrCodeInvalidToken, "%q is not a valid symbol", tok)
	}
	return s, nil
}

// SymbolTokens returns every recognized token.
func SymbolTokens() []string {
	return []string{"=", "==", "<=", "<", ">=", ">", "!=", "<>"}
}

// String returns the canonical token for s.
func (s Symbol) String() string {
	if s < 0 || int(s) >= len(symbolStrings) {
		return "?"
	}
	return symbolStrings[s]
}

// Code returns the LaTeX fragment for s, including its surrounding spaces.
func (s Symbol) Code() string {
	if s < 0 || int(s) >= len(symbolCodes) {
		return ""
	}
	return symbolCodes[s]
}

func (Symbol) element() {}
