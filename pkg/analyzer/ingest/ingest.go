// Package ingest loads Excel workbooks into the in-memory table model.
package ingest

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/pktikkani/excelanalyzer/pkg/analyzer/models"
)

// dateLayouts are tried in order when parsing a cell as a date/time.
var dateLayouts = []string{
	models.DateTimeLayout,
	"2006-01-02",
	"2006/01/02",
	"01-02-06",
}

// LoadWorkbook reads every sheet of the Excel file at path into a Workbook.
// The first row of each sheet is the header; blank header cells are named
// "Unnamed: <index>". Short data rows are padded with null cells so every
// table stays rectangular.
func LoadWorkbook(path string) (*models.Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	name := filepath.Base(path)
	sheetNames := f.GetSheetList()
	sheets := make(map[string]*models.Table, len(sheetNames))

	for _, sheetName := range sheetNames {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheetName, err)
		}
		table, err := buildTable(rows)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheetName, err)
		}
		sheets[sheetName] = table
	}

	return models.NewWorkbook(name, sheetNames, sheets), nil
}

// buildTable converts raw string rows into a typed table. The header width
// grows to the widest row so no data is dropped.
func buildTable(raw [][]string) (*models.Table, error) {
	if len(raw) == 0 {
		return models.NewTable(nil, nil)
	}

	width := len(raw[0])
	for _, row := range raw[1:] {
		if len(row) > width {
			width = len(row)
		}
	}

	columns := make([]string, width)
	for i := 0; i < width; i++ {
		header := ""
		if i < len(raw[0]) {
			header = strings.TrimSpace(raw[0][i])
		}
		if header == "" {
			header = fmt.Sprintf("Unnamed: %d", i)
		}
		columns[i] = header
	}

	rows := make([][]models.Value, 0, len(raw)-1)
	for _, rawRow := range raw[1:] {
		row := make([]models.Value, width)
		for i := range row {
			if i < len(rawRow) {
				row[i] = ParseValue(rawRow[i])
			} else {
				row[i] = models.Null()
			}
		}
		rows = append(rows, row)
	}

	return models.NewTable(columns, rows)
}

// ParseValue converts a raw cell string into a typed value. Surrounding
// whitespace is stripped first, for the text fallback as much as for the
// typed forms, so padding never affects equality. Empty strings become
// null; otherwise integer, float, boolean and date/time forms are tried in
// order before falling back to text.
func ParseValue(s string) models.Value {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return models.Null()
	}
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return models.Int(i)
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return models.Float(f)
	}
	switch trimmed {
	case "TRUE", "true", "True":
		return models.Bool(true)
	case "FALSE", "false", "False":
		return models.Bool(false)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return models.DateTime(t)
		}
	}
	return models.Text(trimmed)
}
