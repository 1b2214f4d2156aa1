package compare

// Result merges the outputs of one comparison run. A fresh Result is built
// on every invocation and never mutated afterwards.
type Result struct {
	// Structure is the column set partition.
	Structure ColumnDiff `json:"structure"`
	// Shape is the dimension comparison.
	Shape ShapeDiff `json:"shape"`
	// RowMatch is the row correspondence, nil when no common columns exist.
	RowMatch *RowMatch `json:"row_match,omitempty"`
	// Cells is the cell-level diff, nil when no common columns exist.
	Cells *CellDiff `json:"cells,omitempty"`
	// Stats compares numeric column aggregates; nil when the tables share
	// no numeric columns or stats were disabled.
	Stats []ColumnStats `json:"stats,omitempty"`
}
