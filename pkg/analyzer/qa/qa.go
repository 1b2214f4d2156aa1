// Package qa answers simple natural-language questions about the loaded
// workbooks by keyword matching. Rules are an ordered list of (predicate,
// handler) pairs evaluated against the lowercased question text; the first
// matching rule wins.
package qa

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pktikkani/excelanalyzer/pkg/analyzer"
	"github.com/pktikkani/excelanalyzer/pkg/analyzer/models"
)

type rule struct {
	match   func(q string) bool
	handler func(s *analyzer.Session) string
}

// Router answers questions about a session's loaded data.
type Router struct {
	session *analyzer.Session
	rules   []rule
}

// New builds a router over the given session.
func New(session *analyzer.Session) *Router {
	r := &Router{session: session}
	r.rules = []rule{
		{func(q string) bool {
			return strings.Contains(q, "how many") && (strings.Contains(q, "rows") || strings.Contains(q, "records"))
		}, rowCounts},
		{func(q string) bool {
			return strings.Contains(q, "what columns") || strings.Contains(q, "column names")
		}, listColumns},
		{func(q string) bool {
			return strings.Contains(q, "summary") || strings.Contains(q, "describe")
		}, summarize},
		{func(q string) bool {
			return strings.Contains(q, "compare") || strings.Contains(q, "diff")
		}, compareOverview},
		{func(q string) bool {
			return strings.Contains(q, "average") || strings.Contains(q, "mean")
		}, averages},
		{func(q string) bool {
			return strings.Contains(q, "maximum") || strings.Contains(q, "max")
		}, maxima},
		{func(q string) bool {
			return strings.Contains(q, "minimum") || strings.Contains(q, "min")
		}, minima},
		{func(q string) bool {
			return strings.Contains(q, "null") || strings.Contains(q, "missing") || strings.Contains(q, "empty")
		}, nulls},
		{func(q string) bool { return strings.Contains(q, "duplicate") }, duplicates},
	}
	return r
}

// Answer routes the question to the first matching handler. Questions that
// match no rule get usage help.
func (r *Router) Answer(question string) string {
	if len(r.session.FileNames()) == 0 {
		return "No Excel files loaded. Load files first."
	}
	q := strings.ToLower(question)
	for _, rule := range r.rules {
		if rule.match(q) {
			return rule.handler(r.session)
		}
	}
	return help()
}

// eachSheet visits every loaded sheet in load order.
func eachSheet(s *analyzer.Session, visit func(file, sheet string, t *models.Table)) {
	for _, file := range s.FileNames() {
		wb, err := s.Workbook(file)
		if err != nil {
			continue
		}
		for _, sheet := range wb.SheetNames() {
			if t, ok := wb.Sheet(sheet); ok {
				visit(file, sheet, t)
			}
		}
	}
}

func rowCounts(s *analyzer.Session) string {
	var b strings.Builder
	b.WriteString("Row counts:\n")
	for _, file := range s.FileNames() {
		wb, err := s.Workbook(file)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "%s:\n", file)
		for _, sheet := range wb.SheetNames() {
			t, _ := wb.Sheet(sheet)
			fmt.Fprintf(&b, "  - %s: %d rows\n", sheet, t.NumRows())
		}
	}
	return b.String()
}

func listColumns(s *analyzer.Session) string {
	var b strings.Builder
	b.WriteString("Columns:\n")
	eachSheet(s, func(file, sheet string, t *models.Table) {
		fmt.Fprintf(&b, "%s / %s: %s\n", file, sheet, strings.Join(t.Columns(), ", "))
	})
	return b.String()
}

func summarize(s *analyzer.Session) string {
	var b strings.Builder
	b.WriteString("Data summary:\n")
	eachSheet(s, func(file, sheet string, t *models.Table) {
		info, err := s.SheetInfo(file, sheet)
		if err != nil {
			return
		}
		fmt.Fprintf(&b, "%s / %s: %d rows x %d columns\n", file, sheet, info.Rows, info.Cols)
		if len(info.Numeric) == 0 {
			b.WriteString("  no numeric columns\n")
			return
		}
		for _, n := range info.Numeric {
			fmt.Fprintf(&b, "  - %s: min=%.2f max=%.2f mean=%.2f\n", n.Column, n.Min, n.Max, n.Mean)
		}
	})
	return b.String()
}

func compareOverview(s *analyzer.Session) string {
	files := s.FileNames()
	if len(files) < 2 {
		return "Need at least 2 files to compare. Load more files first."
	}

	var b strings.Builder
	b.WriteString("File comparison overview:\n")
	sheetSets := make([]map[string]bool, 0, len(files))
	for _, file := range files {
		wb, err := s.Workbook(file)
		if err != nil {
			continue
		}
		sum := wb.Summary()
		fmt.Fprintf(&b, "%s: %d sheet(s) (%s), %d rows, %d columns\n",
			file, sum.Sheets, strings.Join(wb.SheetNames(), ", "), sum.TotalRows, sum.TotalColumns)
		set := make(map[string]bool)
		for _, sn := range wb.SheetNames() {
			set[sn] = true
		}
		sheetSets = append(sheetSets, set)
	}

	common := sheetSets[0]
	for _, set := range sheetSets[1:] {
		next := make(map[string]bool)
		for sn := range common {
			if set[sn] {
				next[sn] = true
			}
		}
		common = next
	}

	if len(common) == 0 {
		b.WriteString("No common sheet names found between files.\n")
	} else {
		var names []string
		for sn := range common {
			names = append(names, sn)
		}
		fmt.Fprintf(&b, "Common sheets: %s\n", strings.Join(sortStrings(names), ", "))
		for _, sn := range sortStrings(names) {
			for _, file := range files {
				if t, err := s.Sheet(file, sn); err == nil {
					fmt.Fprintf(&b, "  %s / %s: %d rows x %d columns\n", file, sn, t.NumRows(), t.NumCols())
				}
			}
		}
	}

	for _, file := range files {
		wb, err := s.Workbook(file)
		if err != nil {
			continue
		}
		var unique []string
		for _, sn := range wb.SheetNames() {
			if !common[sn] {
				unique = append(unique, sn)
			}
		}
		if len(unique) > 0 {
			fmt.Fprintf(&b, "Sheets only in %s: %s\n", file, strings.Join(unique, ", "))
		}
	}
	b.WriteString("Use the compare command for a detailed cell-level diff.")
	return b.String()
}

func averages(s *analyzer.Session) string {
	return numericReport(s, "Average values", func(n analyzer.NumericSummary) string {
		return fmt.Sprintf("%.2f", n.Mean)
	})
}

func maxima(s *analyzer.Session) string {
	return numericReport(s, "Maximum values", func(n analyzer.NumericSummary) string {
		return fmt.Sprintf("%g", n.Max)
	})
}

func minima(s *analyzer.Session) string {
	return numericReport(s, "Minimum values", func(n analyzer.NumericSummary) string {
		return fmt.Sprintf("%g", n.Min)
	})
}

func numericReport(s *analyzer.Session, title string, format func(analyzer.NumericSummary) string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", title)
	eachSheet(s, func(file, sheet string, t *models.Table) {
		info, err := s.SheetInfo(file, sheet)
		if err != nil || len(info.Numeric) == 0 {
			return
		}
		fmt.Fprintf(&b, "%s / %s:\n", file, sheet)
		for _, n := range info.Numeric {
			fmt.Fprintf(&b, "  - %s: %s\n", n.Column, format(n))
		}
	})
	return b.String()
}

func nulls(s *analyzer.Session) string {
	var b strings.Builder
	b.WriteString("Null / missing values:\n")
	eachSheet(s, func(file, sheet string, t *models.Table) {
		info, err := s.SheetInfo(file, sheet)
		if err != nil {
			return
		}
		any := false
		for _, c := range info.Columns {
			if c.Nulls == 0 {
				continue
			}
			if !any {
				fmt.Fprintf(&b, "%s / %s:\n", file, sheet)
				any = true
			}
			pct := 0.0
			if info.Rows > 0 {
				pct = float64(c.Nulls) / float64(info.Rows) * 100
			}
			fmt.Fprintf(&b, "  - %s: %d missing (%.1f%%)\n", c.Name, c.Nulls, pct)
		}
		if !any {
			fmt.Fprintf(&b, "%s / %s: no missing values\n", file, sheet)
		}
	})
	return b.String()
}

func duplicates(s *analyzer.Session) string {
	var b strings.Builder
	b.WriteString("Duplicate rows:\n")
	eachSheet(s, func(file, sheet string, t *models.Table) {
		seen := make(map[string]bool)
		dups := 0
		for _, row := range t.Rows() {
			parts := make([]string, len(row))
			for i, v := range row {
				parts[i] = v.Canonical()
			}
			k := strings.Join(parts, "\x1f")
			if seen[k] {
				dups++
			}
			seen[k] = true
		}
		fmt.Fprintf(&b, "%s / %s: %d duplicate rows\n", file, sheet, dups)
	})
	return b.String()
}

func help() string {
	return `I can help with questions like:
- "How many rows are in each sheet?"
- "What columns are available?"
- "Give me a summary of the data"
- "What's the average of the numeric columns?"
- "What's the maximum value?"
- "Are there any null or missing values?"
- "Are there any duplicate rows?"
- "Compare the two files"
Use the compare command for detailed cell-level diffs.`
}

func sortStrings(ss []string) []string {
	out := append([]string(nil), ss...)
	sort.Strings(out)
	return out
}
