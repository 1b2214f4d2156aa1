package compare

import (
	"github.com/pktikkani/excelanalyzer/pkg/analyzer/models"
)

// CellChange is one differing cell between two matched rows.
type CellChange struct {
	// Row is the matched row index in positional mode (0-based).
	Row int `json:"row"`
	// Key is the matching key value in keyed mode; null in positional mode.
	Key models.Value `json:"key"`
	// Column is the shared column where the values disagree.
	Column string `json:"column"`
	// Left and Right are the disagreeing values.
	Left  models.Value `json:"first_value"`
	Right models.Value `json:"second_value"`
}

// CellDiff is the cell-level comparison report.
type CellDiff struct {
	// Changes lists every differing cell in deterministic order: ascending
	// row index (positional) or ascending canonical key (keyed), then column
	// order as compared.
	Changes []CellChange `json:"cell_changes"`
	// Total is the number of changes. The full list is always returned;
	// truncation for display is the presentation layer's concern.
	Total int `json:"total_changes"`
	// Columns are the column names that were compared, in comparison order.
	Columns []string `json:"compared_columns"`
}

// DiffCells compares the matched row pairs cell by cell over the common
// columns, minus the key column in keyed mode. Equality is null-aware
// canonical-text equality (models.Equal). An empty common set returns
// ErrNoCommonColumns so callers cannot mistake "nothing comparable" for
// "nothing differs".
func DiffCells(left, right *models.Table, match RowMatch, common []string) (*CellDiff, error) {
	if len(common) == 0 {
		return nil, ErrNoCommonColumns
	}

	compareCols := common
	if match.Mode == ModeKeyed {
		compareCols = make([]string, 0, len(common))
		for _, c := range common {
			if c != match.KeyColumn {
				compareCols = append(compareCols, c)
			}
		}
	}

	leftIdx := columnIndices(left, compareCols)
	rightIdx := columnIndices(right, compareCols)

	var changes []CellChange
	for _, pair := range match.Pairs {
		for i, col := range compareCols {
			lv := left.Cell(pair.Left, leftIdx[i])
			rv := right.Cell(pair.Right, rightIdx[i])
			if models.Equal(lv, rv) {
				continue
			}
			change := CellChange{Column: col, Left: lv, Right: rv}
			if match.Mode == ModeKeyed {
				change.Key = pair.Key
			} else {
				change.Row = pair.Left
			}
			changes = append(changes, change)
		}
	}

	return &CellDiff{Changes: changes, Total: len(changes), Columns: compareCols}, nil
}

func columnIndices(t *models.Table, names []string) []int {
	idx := make([]int, len(names))
	for i, name := range names {
		idx[i], _ = t.ColumnIndex(name)
	}
	return idx
}
