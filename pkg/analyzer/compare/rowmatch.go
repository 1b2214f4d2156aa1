package compare

import (
	"sort"

	"github.com/pktikkani/excelanalyzer/pkg/analyzer/models"
)

// MatchMode identifies the row-matching strategy.
type MatchMode string

const (
	// ModePositional pairs rows by ordinal index.
	ModePositional MatchMode = "positional"
	// ModeKeyed pairs rows by equality of a designated key column's value.
	ModeKeyed MatchMode = "key"
)

// RowPair is one matched row correspondence. Left and Right are row indices
// into the original tables. Key is the matching key value in keyed mode and
// null in positional mode.
type RowPair struct {
	Left  int
	Right int
	Key   models.Value
}

// RowMatch is the correspondence between the rows of two tables.
type RowMatch struct {
	// Mode is the matching strategy that was applied.
	Mode MatchMode `json:"mode"`
	// KeyColumn is the key column in effect, empty in positional mode.
	KeyColumn string `json:"key_column,omitempty"`
	// KeyFallback is true when a requested key column was not a common
	// column and matching fell back to positional mode.
	KeyFallback bool `json:"key_fallback,omitempty"`
	// Pairs are the matched row correspondences in emission order:
	// ascending row index for positional mode, ascending canonical key for
	// keyed mode.
	Pairs []RowPair `json:"-"`
	// RowsCompared is the number of matched pairs.
	RowsCompared int `json:"rows_compared"`
	// KeysOnlyLeft, KeysOnlyRight and CommonKeys partition the key values in
	// keyed mode, each sorted by canonical string representation. CommonKeys
	// carries the first table's values, so when the two sides store a shared
	// key with different kinds (say integer 1 versus float 1.0) the first
	// table's kind is what serialization reflects.
	KeysOnlyLeft  []models.Value `json:"keys_only_in_first,omitempty"`
	KeysOnlyRight []models.Value `json:"keys_only_in_second,omitempty"`
	CommonKeys    []models.Value `json:"common_keys,omitempty"`
	// ExtraLeft and ExtraRight hold rows outside the matched correspondence:
	// trailing rows (restricted to common columns) in positional mode, all
	// rows with an unmatched key in keyed mode.
	ExtraLeft  *models.Table `json:"extra_rows_in_first,omitempty"`
	ExtraRight *models.Table `json:"extra_rows_in_second,omitempty"`
}

// MatchRows builds the row correspondence between two tables. With an empty
// keyColumn, or a keyColumn that is not a common column, rows are paired
// positionally; the latter case additionally sets KeyFallback so callers can
// surface the silent downgrade. Otherwise rows are matched by the key
// column's value; duplicate keys contribute their first occurrence to the
// correspondence while all duplicate rows stay in the extra-row report.
func MatchRows(left, right *models.Table, keyColumn string) RowMatch {
	common := CompareColumns(left, right).Common

	if keyColumn == "" || !contains(common, keyColumn) {
		m := matchPositional(left, right, common)
		m.KeyFallback = keyColumn != ""
		return m
	}
	return matchKeyed(left, right, keyColumn)
}

func matchPositional(left, right *models.Table, common []string) RowMatch {
	minRows := left.NumRows()
	if right.NumRows() < minRows {
		minRows = right.NumRows()
	}

	pairs := make([]RowPair, minRows)
	for i := 0; i < minRows; i++ {
		pairs[i] = RowPair{Left: i, Right: i}
	}

	m := RowMatch{
		Mode:         ModePositional,
		Pairs:        pairs,
		RowsCompared: minRows,
	}
	if left.NumRows() > minRows {
		m.ExtraLeft = left.Slice(minRows, left.NumRows()).Select(common)
	}
	if right.NumRows() > minRows {
		m.ExtraRight = right.Slice(minRows, right.NumRows()).Select(common)
	}
	return m
}

// keyGroup tracks every row holding one key value, in original row order.
type keyGroup struct {
	key  models.Value
	rows []int
}

func matchKeyed(left, right *models.Table, keyColumn string) RowMatch {
	leftGroups := groupByKey(left, keyColumn)
	rightGroups := groupByKey(right, keyColumn)

	var onlyLeft, onlyRight, commonKeys []string
	for k := range leftGroups {
		if _, ok := rightGroups[k]; ok {
			commonKeys = append(commonKeys, k)
		} else {
			onlyLeft = append(onlyLeft, k)
		}
	}
	for k := range rightGroups {
		if _, ok := leftGroups[k]; !ok {
			onlyRight = append(onlyRight, k)
		}
	}
	sort.Strings(onlyLeft)
	sort.Strings(onlyRight)
	sort.Strings(commonKeys)

	pairs := make([]RowPair, len(commonKeys))
	for i, k := range commonKeys {
		// First occurrence on each side participates in the cell diff.
		pairs[i] = RowPair{
			Left:  leftGroups[k].rows[0],
			Right: rightGroups[k].rows[0],
			Key:   leftGroups[k].key,
		}
	}

	return RowMatch{
		Mode:          ModeKeyed,
		KeyColumn:     keyColumn,
		Pairs:         pairs,
		RowsCompared:  len(commonKeys),
		KeysOnlyLeft:  groupKeys(leftGroups, onlyLeft),
		KeysOnlyRight: groupKeys(rightGroups, onlyRight),
		CommonKeys:    groupKeys(leftGroups, commonKeys),
		ExtraLeft:     pickGroups(left, leftGroups, onlyLeft),
		ExtraRight:    pickGroups(right, rightGroups, onlyRight),
	}
}

// groupByKey indexes a table's rows by the canonical text of the key column.
func groupByKey(t *models.Table, keyColumn string) map[string]*keyGroup {
	idx, _ := t.ColumnIndex(keyColumn)
	groups := make(map[string]*keyGroup)
	for r := 0; r < t.NumRows(); r++ {
		key := t.Cell(r, idx)
		canon := key.Canonical()
		g, ok := groups[canon]
		if !ok {
			g = &keyGroup{key: key}
			groups[canon] = g
		}
		g.rows = append(g.rows, r)
	}
	return groups
}

// groupKeys returns the key values for the given canonical keys, preserving
// the sorted order of canon.
func groupKeys(groups map[string]*keyGroup, canon []string) []models.Value {
	if len(canon) == 0 {
		return nil
	}
	keys := make([]models.Value, len(canon))
	for i, k := range canon {
		keys[i] = groups[k].key
	}
	return keys
}

// pickGroups derives a table of all rows whose key is in canon, ordered by
// key then original row order. Duplicate-key rows are all included.
func pickGroups(t *models.Table, groups map[string]*keyGroup, canon []string) *models.Table {
	if len(canon) == 0 {
		return nil
	}
	var indices []int
	for _, k := range canon {
		indices = append(indices, groups[k].rows...)
	}
	return t.Pick(indices)
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
