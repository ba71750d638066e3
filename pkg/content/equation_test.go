package content

import (
	"testing"

	"github.com/texweave/texweave/pkg/errors"
)

func TestClassifySymbols(t *testing.T) {
	tests := []struct {
		tok  string
		want Symbol
	}{
		{"=", Equals},
		{"==", Equals},
		{"<=", LessOrEquals},
		{"<", Less},
		{">=", MoreOrEquals},
		{">", More},
		{"!=", NotEquals},
		{"<>", NotEquals},
	}

	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			got, ok := Classify(tt.tok).(Symbol)
			if !ok {
				t.Fatalf("Classify(%q) = %#v, want a Symbol", tt.tok, Classify(tt.tok))
			}
			if got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.tok, got, tt.want)
			}
			// Classification is idempotent.
			if again := Classify(tt.tok); again != got {
				t.Errorf("second Classify(%q) = %v, want %v", tt.tok, again, got)
			}
		})
	}
}

func TestClassifyOtherTokensAreTerms(t *testing.T) {
	for _, tok := range []string{"", "a", "x^2", "=>", "=<", "===", " = ", "\\leq", "≠", "!"} {
		el := Classify(tok)
		term, ok := el.(Term)
		if !ok {
			t.Errorf("Classify(%q) = %#v, want a Term", tok, el)
			continue
		}
		if string(term) != tok {
			t.Errorf("Classify(%q) = %q", tok, term)
		}
	}
}

func TestSymbolTokensMatchTable(t *testing.T) {
	toks := SymbolTokens()
	if len(toks) != len(symbolTable) {
		t.Fatalf("SymbolTokens() has %d entries, table has %d", len(toks), len(symbolTable))
	}
	for _, tok := range toks {
		if !IsSymbol(tok) {
			t.Errorf("IsSymbol(%q) = false", tok)
		}
		s, err := ParseSymbol(tok)
		if err != nil {
			t.Errorf("ParseSymbol(%q) error: %v", tok, err)
		}
		if s.Code() == "" {
			t.Errorf("Symbol %v has no code", s)
		}
	}
}

func TestParseSymbolInvalid(t *testing.T) {
	_, err := ParseSymbol("=>")
	if !errors.Is(err, errors.ErrCodeInvalidToken) {
		t.Errorf("ParseSymbol(=>) error = %v, want INVALID_TOKEN", err)
	}
}

func TestSymbolStringsAndCodes(t *testing.T) {
	tests := []struct {
		s    Symbol
		str  string
		code string
	}{
		{Equals, "=", " = "},
		{LessOrEquals, "<=", ` \leq `},
		{Less, "<", " < "},
		{MoreOrEquals, ">=", ` \geq `},
		{More, ">", " > "},
		{NotEquals, "!=", ` \neq `},
	}
	for _, tt := range tests {
		if tt.s.String() != tt.str {
			t.Errorf("String() = %q, want %q", tt.s.String(), tt.str)
		}
		if tt.s.Code() != tt.code {
			t.Errorf("Code() = %q, want %q", tt.s.Code(), tt.code)
		}
	}
}

func TestOperatorCode(t *testing.T) {
	tests := []struct {
		name string
		op   Operator
		want string
	}{
		{"sum", NewSum(Var("i"), Int(0), Var("n")), `\sum_{i = 0}^{n}`},
		{"product", NewProduct(Var("k"), Int(1), Int(10)), `\prod_{k = 1}^{10}`},
		{"negative bound", NewSum(Var("j"), Int(-3), Int(3)), `\sum_{j = -3}^{3}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.op.Code(); got != tt.want {
				t.Errorf("Code() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseBound(t *testing.T) {
	if b := ParseBound("42"); !b.IsInt() || b.String() != "42" {
		t.Errorf("ParseBound(42) = %v (int=%v)", b, b.IsInt())
	}
	if b := ParseBound("n"); b.IsInt() || b.String() != "n" {
		t.Errorf("ParseBound(n) = %v (int=%v)", b, b.IsInt())
	}
}

func TestEquationFromTokens(t *testing.T) {
	eq := EquationFromTokens("1", ">=", "0", "=", "x")
	if eq.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", eq.Len())
	}
	if _, ok := eq.Element(1).(Symbol); !ok {
		t.Errorf("Element(1) = %#v, want Symbol", eq.Element(1))
	}
	if eq.Element(4) != Term("x") {
		t.Errorf("Element(4) = %#v, want Term(x)", eq.Element(4))
	}
}

func TestNewEquationSkipsNil(t *testing.T) {
	eq := NewEquation(Term("a"), nil, Equals)
	if eq.Len() != 2 {
		t.Errorf("Len() = %d, want 2", eq.Len())
	}
}
