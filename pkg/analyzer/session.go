// Package analyzer holds the session state for loaded workbooks and exposes
// sheet inspection and comparison over them.
package analyzer

import (
	"path/filepath"
	"sync"

	"github.com/montanaflynn/stats"

	"github.com/pktikkani/excelanalyzer/pkg/analyzer/compare"
	"github.com/pktikkani/excelanalyzer/pkg/analyzer/ingest"
	"github.com/pktikkani/excelanalyzer/pkg/analyzer/models"
)

// Session holds the workbooks loaded in one analysis session. All state is
// explicit; the comparators themselves are pure, so comparisons over shared
// workbooks may run concurrently. Loading is guarded by a mutex.
type Session struct {
	mu        sync.RWMutex
	order     []string
	workbooks map[string]*models.Workbook
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{workbooks: make(map[string]*models.Workbook)}
}

// Load ingests the Excel file at path and registers it under its base name.
// Reloading an existing name replaces the workbook and recomputes its
// summary. Failures are wrapped in a LoadError tagged with the file label.
func (s *Session) Load(path string) (*models.Workbook, error) {
	wb, err := ingest.LoadWorkbook(path)
	if err != nil {
		return nil, &LoadError{File: filepath.Base(path), Err: err}
	}

	s.Add(wb)
	return wb, nil
}

// Add registers an already-materialized workbook under its name, replacing
// any previous workbook with the same name.
func (s *Session) Add(wb *models.Workbook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.workbooks[wb.Name()]; !exists {
		s.order = append(s.order, wb.Name())
	}
	s.workbooks[wb.Name()] = wb
}

// FileNames returns the loaded workbook names in load order.
func (s *Session) FileNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.order...)
}

// Workbook returns the named workbook.
func (s *Session) Workbook(name string) (*models.Workbook, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	wb, ok := s.workbooks[name]
	if !ok {
		return nil, ErrFileNotFound
	}
	return wb, nil
}

// Sheet returns the named sheet of the named workbook.
func (s *Session) Sheet(file, sheet string) (*models.Table, error) {
	wb, err := s.Workbook(file)
	if err != nil {
		return nil, err
	}
	t, ok := wb.Sheet(sheet)
	if !ok {
		return nil, ErrSheetNotFound
	}
	return t, nil
}

// CompareSheets runs a full comparison between two loaded sheets, possibly
// from different workbooks. An empty keyColumn selects positional matching.
func (s *Session) CompareSheets(file1, sheet1, file2, sheet2, keyColumn string) (*compare.Result, error) {
	left, err := s.Sheet(file1, sheet1)
	if err != nil {
		return nil, err
	}
	right, err := s.Sheet(file2, sheet2)
	if err != nil {
		return nil, err
	}
	return compare.Compare(left, right, compare.Options{KeyColumn: keyColumn})
}

// ColumnInfo describes one column of a sheet.
type ColumnInfo struct {
	// Name is the column name.
	Name string `json:"name"`
	// Kind is the column's value kind, or "mixed" when non-null values
	// disagree, or "null" for an all-null column.
	Kind string `json:"kind"`
	// Nulls is the number of null cells.
	Nulls int `json:"nulls"`
}

// NumericSummary holds per-column aggregates for a numeric column.
type NumericSummary struct {
	Column string  `json:"column"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
}

// SheetInfo describes one sheet: shape, columns and numeric aggregates.
type SheetInfo struct {
	File    string           `json:"file"`
	Sheet   string           `json:"sheet"`
	Rows    int              `json:"rows"`
	Cols    int              `json:"cols"`
	Columns []ColumnInfo     `json:"columns"`
	Numeric []NumericSummary `json:"numeric,omitempty"`
}

// SheetInfo computes detailed information about one loaded sheet.
func (s *Session) SheetInfo(file, sheet string) (*SheetInfo, error) {
	t, err := s.Sheet(file, sheet)
	if err != nil {
		return nil, err
	}

	info := &SheetInfo{
		File:  file,
		Sheet: sheet,
		Rows:  t.NumRows(),
		Cols:  t.NumCols(),
	}
	for i, name := range t.Columns() {
		info.Columns = append(info.Columns, ColumnInfo{
			Name:  name,
			Kind:  columnKind(t, i),
			Nulls: nullCount(t, i),
		})
	}
	for _, col := range t.NumericColumns() {
		vals := t.ColumnValues(col)
		ns := NumericSummary{Column: col}
		ns.Min, _ = stats.Min(vals)
		ns.Max, _ = stats.Max(vals)
		ns.Mean, _ = stats.Mean(vals)
		info.Numeric = append(info.Numeric, ns)
	}
	return info, nil
}

func columnKind(t *models.Table, col int) string {
	kind := models.KindNull
	mixed := false
	for r := 0; r < t.NumRows(); r++ {
		v := t.Cell(r, col)
		if v.IsNull() {
			continue
		}
		if kind == models.KindNull {
			kind = v.Kind()
		} else if kind != v.Kind() {
			mixed = true
		}
	}
	if mixed {
		return "mixed"
	}
	return kind.String()
}

func nullCount(t *models.Table, col int) int {
	n := 0
	for r := 0; r < t.NumRows(); r++ {
		if t.Cell(r, col).IsNull() {
			n++
		}
	}
	return n
}
