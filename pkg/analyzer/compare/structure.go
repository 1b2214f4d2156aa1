// Package compare implements the tabular reconciliation engine: structural
// column diffs, shape diffs, row matching, cell-level value diffs and numeric
// stat comparison between two tables.
package compare

import (
	"sort"

	"github.com/pktikkani/excelanalyzer/pkg/analyzer/models"
)

// ColumnDiff partitions the column names of two tables.
type ColumnDiff struct {
	// OnlyLeft are columns present only in the left table, sorted ascending.
	OnlyLeft []string `json:"only_in_first"`
	// OnlyRight are columns present only in the right table, sorted ascending.
	OnlyRight []string `json:"only_in_second"`
	// Common are columns present in both tables, sorted ascending.
	Common []string `json:"common"`
	// LeftColumns are the left table's columns in original order.
	LeftColumns []string `json:"first_columns"`
	// RightColumns are the right table's columns in original order.
	RightColumns []string `json:"second_columns"`
}

// ShapeDiff reports the dimensions of two tables and their signed differences.
type ShapeDiff struct {
	// LeftRows and LeftCols are the left table's dimensions.
	LeftRows int `json:"first_rows"`
	LeftCols int `json:"first_cols"`
	// RightRows and RightCols are the right table's dimensions.
	RightRows int `json:"second_rows"`
	RightCols int `json:"second_cols"`
	// RowDiff is left rows minus right rows; the sign is meaningful.
	RowDiff int `json:"row_diff"`
	// ColDiff is left columns minus right columns; the sign is meaningful.
	ColDiff int `json:"col_diff"`
}

// CompareColumns partitions the two tables' column names into only-left,
// only-right and common sets. Names are compared as case-sensitive strings
// with no coercion; each set is deduplicated and sorted for determinism.
func CompareColumns(left, right *models.Table) ColumnDiff {
	leftSet := stringSet(left.Columns())
	rightSet := stringSet(right.Columns())

	var onlyLeft, onlyRight, common []string
	for c := range leftSet {
		if rightSet[c] {
			common = append(common, c)
		} else {
			onlyLeft = append(onlyLeft, c)
		}
	}
	for c := range rightSet {
		if !leftSet[c] {
			onlyRight = append(onlyRight, c)
		}
	}
	sort.Strings(onlyLeft)
	sort.Strings(onlyRight)
	sort.Strings(common)

	return ColumnDiff{
		OnlyLeft:     onlyLeft,
		OnlyRight:    onlyRight,
		Common:       common,
		LeftColumns:  left.Columns(),
		RightColumns: right.Columns(),
	}
}

// CompareShape reports each table's (rows, cols) and the signed differences.
func CompareShape(left, right *models.Table) ShapeDiff {
	return ShapeDiff{
		LeftRows:  left.NumRows(),
		LeftCols:  left.NumCols(),
		RightRows: right.NumRows(),
		RightCols: right.NumCols(),
		RowDiff:   left.NumRows() - right.NumRows(),
		ColDiff:   left.NumCols() - right.NumCols(),
	}
}

func stringSet(ss []string) map[string]bool {
	set := make(map[string]bool, len(ss))
	for _, s := range ss {
		set[s] = true
	}
	return set
}
