package compare

import (
	"errors"

	"github.com/pktikkani/excelanalyzer/pkg/analyzer/models"
)

// Compare runs the full reconciliation between two tables: column structure,
// shape, row matching, cell-level diff and numeric stats, merged into one
// Result.
//
// When the tables share no columns the returned error is ErrNoCommonColumns
// and the Result still carries the structure, shape and stats sections, so
// callers can report what was comparable. Comparators never mutate their
// inputs; concurrent calls sharing the same tables are safe.
func Compare(left, right *models.Table, opts Options) (*Result, error) {
	res := &Result{
		Structure: CompareColumns(left, right),
		Shape:     CompareShape(left, right),
	}
	if opts.ShouldIncludeStats() {
		res.Stats = CompareStats(left, right)
	}

	match := MatchRows(left, right, opts.KeyColumn)
	cells, err := DiffCells(left, right, match, res.Structure.Common)
	if err != nil {
		if errors.Is(err, ErrNoCommonColumns) {
			return res, err
		}
		return nil, err
	}
	res.RowMatch = &match
	res.Cells = cells
	return res, nil
}
