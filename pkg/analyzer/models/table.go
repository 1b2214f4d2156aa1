package models

import "fmt"

// Table is a rectangular grid of named columns and ordered rows of cell
// values. Tables are immutable once constructed; derived tables are built
// with Slice and Select rather than in-place edits.
type Table struct {
	columns []string
	rows    [][]Value
}

// NewTable constructs a table from column names and rows. Every row must
// have exactly one cell per column; a ragged row is an ingestion contract
// violation and fails loudly rather than being repaired.
func NewTable(columns []string, rows [][]Value) (*Table, error) {
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("row %d has %d cells, want %d", i, len(row), len(columns))
		}
	}
	return &Table{columns: columns, rows: rows}, nil
}

// MustNewTable is NewTable that panics on a ragged row. Intended for tests
// and fixtures.
func MustNewTable(columns []string, rows [][]Value) *Table {
	t, err := NewTable(columns, rows)
	if err != nil {
		panic(err)
	}
	return t
}

// Columns returns the ordered column names. Callers must not modify the
// returned slice.
func (t *Table) Columns() []string { return t.columns }

// Rows returns the ordered rows. Callers must not modify the returned slices.
func (t *Table) Rows() [][]Value { return t.rows }

// NumRows returns the number of rows.
func (t *Table) NumRows() int { return len(t.rows) }

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.columns) }

// Cell returns the value at the given row and column index.
func (t *Table) Cell(row, col int) Value { return t.rows[row][col] }

// ColumnIndex returns the index of the named column, or false if absent.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, c := range t.columns {
		if c == name {
			return i, true
		}
	}
	return 0, false
}

// NumericColumns returns the names of columns whose every non-null value is
// numeric, in column order. Columns with no non-null values are excluded.
func (t *Table) NumericColumns() []string {
	var numeric []string
	for i, name := range t.columns {
		nonNull := 0
		allNumeric := true
		for _, row := range t.rows {
			v := row[i]
			if v.IsNull() {
				continue
			}
			nonNull++
			if _, ok := v.Number(); !ok {
				allNumeric = false
				break
			}
		}
		if allNumeric && nonNull > 0 {
			numeric = append(numeric, name)
		}
	}
	return numeric
}

// ColumnValues returns the non-null numeric values of the named column.
func (t *Table) ColumnValues(name string) []float64 {
	idx, ok := t.ColumnIndex(name)
	if !ok {
		return nil
	}
	var vals []float64
	for _, row := range t.rows {
		if row[idx].IsNull() {
			continue
		}
		if f, ok := row[idx].Number(); ok {
			vals = append(vals, f)
		}
	}
	return vals
}

// Slice derives a new table holding rows [from, to) in original order.
func (t *Table) Slice(from, to int) *Table {
	return &Table{columns: t.columns, rows: t.rows[from:to]}
}

// Select derives a new table restricted to the named columns, in the given
// order. Unknown names are skipped.
func (t *Table) Select(names []string) *Table {
	var idxs []int
	var cols []string
	for _, name := range names {
		if i, ok := t.ColumnIndex(name); ok {
			idxs = append(idxs, i)
			cols = append(cols, name)
		}
	}
	rows := make([][]Value, len(t.rows))
	for r, row := range t.rows {
		sel := make([]Value, len(idxs))
		for j, i := range idxs {
			sel[j] = row[i]
		}
		rows[r] = sel
	}
	return &Table{columns: cols, rows: rows}
}

// Pick derives a new table holding the given row indices in the given order.
func (t *Table) Pick(indices []int) *Table {
	rows := make([][]Value, 0, len(indices))
	for _, i := range indices {
		rows = append(rows, t.rows[i])
	}
	return &Table{columns: t.columns, rows: rows}
}
