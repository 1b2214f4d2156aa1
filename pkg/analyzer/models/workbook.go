package models

// Summary holds derived totals for a loaded workbook. It is computed eagerly
// when the workbook is constructed and recomputed on reload, never updated
// incrementally.
type Summary struct {
	// Sheets is the number of sheets in the workbook.
	Sheets int `json:"sheets"`
	// TotalRows is the row count summed across all sheets.
	TotalRows int `json:"total_rows"`
	// TotalColumns is the column count summed across all sheets.
	TotalColumns int `json:"total_columns"`
}

// Workbook is a named ordered collection of sheets loaded from one source
// file. Sheet order is preserved for display only; it has no comparison
// semantics.
type Workbook struct {
	name       string
	sheetNames []string
	sheets     map[string]*Table
	summary    Summary
}

// NewWorkbook constructs a workbook from sheets in the given order and
// computes its summary.
func NewWorkbook(name string, sheetNames []string, sheets map[string]*Table) *Workbook {
	s := Summary{Sheets: len(sheetNames)}
	for _, sn := range sheetNames {
		t := sheets[sn]
		s.TotalRows += t.NumRows()
		s.TotalColumns += t.NumCols()
	}
	return &Workbook{name: name, sheetNames: sheetNames, sheets: sheets, summary: s}
}

// Name returns the workbook's file label.
func (w *Workbook) Name() string { return w.name }

// SheetNames returns the sheet names in insertion order.
func (w *Workbook) SheetNames() []string { return w.sheetNames }

// Sheet returns the named sheet's table, or false if absent.
func (w *Workbook) Sheet(name string) (*Table, bool) {
	t, ok := w.sheets[name]
	return t, ok
}

// Summary returns the derived totals.
func (w *Workbook) Summary() Summary { return w.summary }
