package cube

import (
	"fmt"

	"csvcube/internal/common"
)

// Table is an in-memory grid of string cells with named columns.
type Table struct {
	Columns []string
	Rows    [][]string
}

// NewTable returns a table after checking that column names are non-empty and
// unique and that every row has one cell per column.
func NewTable(columns []string, rows [][]string) (*Table, error) {
	seen := make(map[string]struct{}, len(columns))

	for i, name := range columns {
		if name == "" {
			return nil, fmt.Errorf("%w: column %d has no name", ErrInvalidTable, i+1)
		}

		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrInvalidTable, name)
		}

		seen[name] = struct{}{}
	}

	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidTable, i+1, len(row), len(columns))
		}
	}

	return &Table{Columns: columns, Rows: rows}, nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Column returns the cells of the named column, top to bottom.
func (t *Table) Column(name string) ([]string, bool) {
	idx := -1

	for i, c := range t.Columns {
		if c == name {
			idx = i
			break
		}
	}

	if idx < 0 {
		return nil, false
	}

	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[idx]
	}

	return out, true
}

// Clone returns a copy of t sharing no slices with it.
func (t *Table) Clone() *Table {
	out := &Table{Columns: common.CloneStrings(t.Columns)}

	if t.Rows != nil {
		out.Rows = make([][]string, len(t.Rows))
		for i, row := range t.Rows {
			out.Rows[i] = common.CloneStrings(row)
		}
	}

	return out
}
