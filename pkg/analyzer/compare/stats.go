package compare

import (
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/pktikkani/excelanalyzer/pkg/analyzer/models"
)

// ColumnStats compares one numeric column's aggregates across two tables.
// Nulls are excluded from the aggregates, not treated as zero.
type ColumnStats struct {
	Column    string  `json:"column"`
	MeanLeft  float64 `json:"first_mean"`
	MeanRight float64 `json:"second_mean"`
	MeanDiff  float64 `json:"mean_diff"`
	SumLeft   float64 `json:"first_sum"`
	SumRight  float64 `json:"second_sum"`
	SumDiff   float64 `json:"sum_diff"`
	MinLeft   float64 `json:"first_min"`
	MinRight  float64 `json:"second_min"`
	MaxLeft   float64 `json:"first_max"`
	MaxRight  float64 `json:"second_max"`
}

// CompareStats aggregates mean, sum, min and max for every column that is
// numeric on both sides, sorted ascending by column name. It returns nil
// when the two tables share no numeric columns; that absence is distinct
// from a result where all aggregates happen to be equal.
func CompareStats(left, right *models.Table) []ColumnStats {
	rightNumeric := stringSet(right.NumericColumns())
	var common []string
	for _, c := range left.NumericColumns() {
		if rightNumeric[c] {
			common = append(common, c)
		}
	}
	if len(common) == 0 {
		return nil
	}
	sort.Strings(common)

	result := make([]ColumnStats, 0, len(common))
	for _, col := range common {
		lv := left.ColumnValues(col)
		rv := right.ColumnValues(col)
		cs := ColumnStats{Column: col}
		cs.MeanLeft, _ = stats.Mean(lv)
		cs.MeanRight, _ = stats.Mean(rv)
		cs.MeanDiff = cs.MeanLeft - cs.MeanRight
		cs.SumLeft, _ = stats.Sum(lv)
		cs.SumRight, _ = stats.Sum(rv)
		cs.SumDiff = cs.SumLeft - cs.SumRight
		cs.MinLeft, _ = stats.Min(lv)
		cs.MinRight, _ = stats.Min(rv)
		cs.MaxLeft, _ = stats.Max(lv)
		cs.MaxRight, _ = stats.Max(rv)
		result = append(result, cs)
	}
	return result
}
