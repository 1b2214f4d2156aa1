package analyzer

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pktikkani/excelanalyzer/pkg/analyzer/models"
)

// ValueCount pairs a distinct column value with its occurrence count.
type ValueCount struct {
	// Value is the canonical text of the distinct value.
	Value string `json:"value"`
	// Count is the number of rows holding it.
	Count int `json:"count"`
}

// Unique returns the distinct canonical values of the named column in
// first-occurrence order. Null cells count as one distinct empty value.
func (s *Session) Unique(file, sheet, column string) ([]string, error) {
	t, idx, err := s.column(file, sheet, column)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var uniques []string
	for r := 0; r < t.NumRows(); r++ {
		canon := t.Cell(r, idx).Canonical()
		if seen[canon] {
			continue
		}
		seen[canon] = true
		uniques = append(uniques, canon)
	}
	return uniques, nil
}

// ValueCounts returns the occurrence count of every distinct value in the
// named column, most frequent first, ties broken by ascending value.
func (s *Session) ValueCounts(file, sheet, column string) ([]ValueCount, error) {
	t, idx, err := s.column(file, sheet, column)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for r := 0; r < t.NumRows(); r++ {
		counts[t.Cell(r, idx).Canonical()]++
	}

	result := make([]ValueCount, 0, len(counts))
	for v, c := range counts {
		result = append(result, ValueCount{Value: v, Count: c})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Value < result[j].Value
	})
	return result, nil
}

// Filter derives the rows of a sheet whose named column matches the
// condition. Operators ">", ">=", "<", "<=" and "!=" compare numerically and
// require a numeric value; "==" (or "=") compares numerically when both
// sides are numeric and by canonical text otherwise; "contains" is a
// case-insensitive substring match. Null cells never match.
func (s *Session) Filter(file, sheet, column, op, value string) (*models.Table, error) {
	t, idx, err := s.column(file, sheet, column)
	if err != nil {
		return nil, err
	}

	num, numErr := strconv.ParseFloat(value, 64)
	numeric := numErr == nil

	match := func(v models.Value) bool {
		if v.IsNull() {
			return false
		}
		switch op {
		case "==", "=":
			if f, ok := v.Number(); numeric && ok {
				return f == num
			}
			return v.Canonical() == value
		case "contains":
			return strings.Contains(strings.ToLower(v.Canonical()), strings.ToLower(value))
		}
		f, ok := v.Number()
		if !ok {
			return false
		}
		switch op {
		case "!=":
			return f != num
		case ">":
			return f > num
		case ">=":
			return f >= num
		case "<":
			return f < num
		case "<=":
			return f <= num
		}
		return false
	}

	switch op {
	case "==", "=", "contains":
	case "!=", ">", ">=", "<", "<=":
		if !numeric {
			return nil, fmt.Errorf("operator %q needs a numeric value, got %q", op, value)
		}
	default:
		return nil, fmt.Errorf("unsupported operator %q", op)
	}

	var indices []int
	for r := 0; r < t.NumRows(); r++ {
		if match(t.Cell(r, idx)) {
			indices = append(indices, r)
		}
	}
	return t.Pick(indices), nil
}

func (s *Session) column(file, sheet, column string) (*models.Table, int, error) {
	t, err := s.Sheet(file, sheet)
	if err != nil {
		return nil, 0, err
	}
	idx, ok := t.ColumnIndex(column)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q (available: %s)", ErrColumnNotFound, column, strings.Join(t.Columns(), ", "))
	}
	return t, idx, nil
}
