package content

import (
	"strconv"

	"github.com/texweave/texweave/pkg/errors"
)

// Rank is the nesting depth of a section-like node.
type Rank int

// Section ranks.
const (
	RankSection Rank = iota
	RankSubsection
	RankSubsubsection
	RankParagraph
)

var rankCommands = [...]string{
	RankSection:       "section",
	RankSubsection:    "subsection",
	RankSubsubsection: "subsubsection",
	RankParagraph:     "paragraph",
}

// Valid reports whether r is one of the four section ranks.
func (r Rank) Valid() bool {
	return r >= RankSection && r <= RankParagraph
}

// Command returns the LaTeX command name for r, without the backslash.
func (r Rank) Command() string {
	if !r.Valid() {
		return ""
	}
	return rankCommands[r]
}

// String returns the command name, or "rank(N)" for invalid ranks.
func (r Rank) String() string {
	if !r.Valid() {
		return "rank(" + strconv.Itoa(int(r)) + ")"
	}
	return rankCommands[r]
}

// Section is a titled part of a document. Its rank is fixed at construction.
type Section struct {
	title    string
	rank     Rank
	children children
}

// NewSectionRank returns an empty section at the given rank.
// Ranks outside 0..3 are rejected with INVALID_ARGUMENT.
func NewSectionRank(title string, rank Rank) (*Section, error) {
	if !rank.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "section rank %d out of range 0..3", int(rank))
	}
	return &Section{title: title, rank: rank}, nil
}

// NewSection returns an empty \section.
func NewSection(title string) *Section { return &Section{title: title, rank: RankSection} }

// NewSubsection returns an empty \subsection.
func NewSubsection(title string) *Section { return &Section{title: title, rank: RankSubsection} }

// NewSubsubsection returns an empty \subsubsection.
func NewSubsubsection(title string) *Section {
	return &Section{title: title, rank: RankSubsubsection}
}

// NewParagraph returns an empty \paragraph.
func NewParagraph(title string) *Section { return &Section{title: title, rank: RankParagraph} }

// Title returns the section title.
func (s *Section) Title() string { return s.title }

// Rank returns the section rank.
func (s *Section) Rank() Rank { return s.rank }

func (s *Section) Append(nodes ...Node) { s.children.append(nodes...) }
func (s *Section) Len() int             { return len(s.children) }
func (s *Section) Child(i int) Node     { return s.children[i] }
func (s *Section) Children() []Node     { return s.children.clone() }

func (*Section) Kind() Kind { return KindSection }
func (*Section) node()      {}

var _ Container = (*Section)(nil)
