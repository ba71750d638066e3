package content

import (
	"github.com/texweave/texweave/pkg/errors"
)

// Grid is anything that can be converted into rows of cells for a table.
// [Row] and [Rows] cover the common cases.
type Grid interface {
	ToRows() [][]Node
}

// Row is a single table row. As a [Grid] it becomes a one-row table.
type Row []Node

// ToRows promotes r to a single-row grid.
func (r Row) ToRows() [][]Node {
	row := make([]Node, len(r))
	copy(row, r)
	return [][]Node{row}
}

// Rows is a list of table rows.
type Rows [][]Node

// ToRows returns a copy of the rows.
func (rs Rows) ToRows() [][]Node {
	out := make([][]Node, len(rs))
	for i, r := range rs {
		out[i] = make([]Node, len(r))
		copy(out[i], r)
	}
	return out
}

// Table is a tabular grid of nodes.
//
// The column count is taken from the first row. Later rows are not checked
// against it: a shorter row renders fewer cells and a longer row renders
// all of its cells.
type Table struct {
	rows [][]Node
}

// NewTable builds a table from g. An empty grid, or a grid whose first row
// is empty, is rejected with INVALID_ARGUMENT.
func NewTable(g Grid) (*Table, error) {
	if g == nil {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "table grid is nil")
	}
	rows := g.ToRows()
	if len(rows) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "table must have at least one row")
	}
	if len(rows[0]) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "table first row must have at least one cell")
	}
	for i, row := range rows {
		for j, cell := range row {
			if cell == nil {
				rows[i][j] = Text("")
			}
		}
	}
	return &Table{rows: rows}, nil
}

// MustTable is like [NewTable] but panics on error.
// It is intended for tables written as literals.
func MustTable(g Grid) *Table {
	t, err := NewTable(g)
	if err != nil {
		panic(err)
	}
	return t
}

// Columns returns the column count, taken from the first row.
func (t *Table) Columns() int { return len(t.rows[0]) }

// NumRows returns the number of rows.
func (t *Table) NumRows() int { return len(t.rows) }

// RowLen returns the number of cells in row i.
func (t *Table) RowLen(i int) int { return len(t.rows[i]) }

// Cell returns the cell at row i, column j.
func (t *Table) Cell(i, j int) Node { return t.rows[i][j] }

// Ragged reports whether any row length differs from the first row.
func (t *Table) Ragged() bool {
	for _, r := range t.rows[1:] {
		if len(r) != len(t.rows[0]) {
			return true
		}
	}
	return false
}

func (*Table) Kind() Kind { return KindTable }
func (*Table) node()      {}
