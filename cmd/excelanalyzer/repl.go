package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pktikkani/excelanalyzer/pkg/analyzer"
	"github.com/pktikkani/excelanalyzer/pkg/analyzer/compare"
	"github.com/pktikkani/excelanalyzer/pkg/analyzer/models"
	"github.com/pktikkani/excelanalyzer/pkg/analyzer/output"
	"github.com/pktikkani/excelanalyzer/pkg/analyzer/qa"
)

// maxListedValues caps how many values or rows the unique, counts and
// filter commands print.
const maxListedValues = 50

const replHelp = `Commands:
  load <filepath>                              Load an Excel file
  files                                        List loaded files
  summary <file>                               Show a file's summary
  info <file> <sheet>                          Show detailed sheet info
  head <file> <sheet> [n]                      Show first rows of a sheet
  tail <file> <sheet> [n]                      Show last rows of a sheet
  unique <file> <sheet> <column>               Show unique values in a column
  counts <file> <sheet> <column>               Show value counts for a column
  filter <file> <sheet> <column> <op> <value>  Filter rows by condition
  compare <file1> <sheet1> <file2> <sheet2> [key]
                                               Compare two sheets
  ask <question>                               Ask about the loaded data
  help                                         Show this help
  quit / exit                                  Exit`

// repl runs the interactive command loop against the session.
func repl(session *analyzer.Session, in io.Reader, out io.Writer) error {
	router := qa.New(session)
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, "Excel Analyzer - type 'help' for available commands")
	fmt.Fprint(out, "> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			fmt.Fprint(out, "> ")
			continue
		}

		fields := strings.Fields(line)
		command := strings.ToLower(fields[0])
		args := fields[1:]

		switch command {
		case "quit", "exit", "q":
			fmt.Fprintln(out, "Goodbye!")
			return nil

		case "help":
			fmt.Fprintln(out, replHelp)

		case "load":
			if len(args) != 1 {
				fmt.Fprintln(out, "usage: load <filepath>")
				break
			}
			wb, err := session.Load(args[0])
			if err != nil {
				fmt.Fprintf(out, "  x %v\n", err)
				break
			}
			fmt.Fprintf(out, "  + loaded %q - %d sheet(s)\n", wb.Name(), wb.Summary().Sheets)

		case "files":
			names := session.FileNames()
			if len(names) == 0 {
				fmt.Fprintln(out, "No files loaded. Use 'load <filepath>' to load a file.")
				break
			}
			for _, name := range names {
				wb, err := session.Workbook(name)
				if err != nil {
					continue
				}
				sum := wb.Summary()
				fmt.Fprintf(out, "  - %s: %d sheet(s), %d rows\n", name, sum.Sheets, sum.TotalRows)
			}

		case "summary":
			if len(args) != 1 {
				fmt.Fprintln(out, "usage: summary <file>")
				break
			}
			wb, err := session.Workbook(args[0])
			if err != nil {
				fmt.Fprintf(out, "  x %v\n", err)
				break
			}
			sum := wb.Summary()
			fmt.Fprintf(out, "File: %s\n", wb.Name())
			fmt.Fprintf(out, "  Sheets: %d (%s)\n", sum.Sheets, strings.Join(wb.SheetNames(), ", "))
			fmt.Fprintf(out, "  Total Rows: %d\n", sum.TotalRows)
			fmt.Fprintf(out, "  Total Columns: %d\n", sum.TotalColumns)

		case "info":
			if len(args) != 2 {
				fmt.Fprintln(out, "usage: info <file> <sheet>")
				break
			}
			info, err := session.SheetInfo(args[0], args[1])
			if err != nil {
				fmt.Fprintf(out, "  x %v\n", err)
				break
			}
			fmt.Fprintf(out, "Sheet: %s (from %s)\n", info.Sheet, info.File)
			fmt.Fprintf(out, "  Shape: %d rows x %d columns\n", info.Rows, info.Cols)
			for _, c := range info.Columns {
				fmt.Fprintf(out, "  - %s: %s, %d null(s)\n", c.Name, c.Kind, c.Nulls)
			}
			for _, n := range info.Numeric {
				fmt.Fprintf(out, "  %s: min=%.2f max=%.2f mean=%.2f\n", n.Column, n.Min, n.Max, n.Mean)
			}

		case "head", "tail":
			if len(args) < 2 || len(args) > 3 {
				fmt.Fprintf(out, "usage: %s <file> <sheet> [n]\n", command)
				break
			}
			n := 5
			if len(args) == 3 {
				if parsed, err := strconv.Atoi(args[2]); err == nil && parsed > 0 {
					n = parsed
				}
			}
			t, err := session.Sheet(args[0], args[1])
			if err != nil {
				fmt.Fprintf(out, "  x %v\n", err)
				break
			}
			if n > t.NumRows() {
				n = t.NumRows()
			}
			if command == "head" {
				t = t.Slice(0, n)
			} else {
				t = t.Slice(t.NumRows()-n, t.NumRows())
			}
			printTable(out, t)

		case "unique":
			if len(args) != 3 {
				fmt.Fprintln(out, "usage: unique <file> <sheet> <column>")
				break
			}
			uniques, err := session.Unique(args[0], args[1], args[2])
			if err != nil {
				fmt.Fprintf(out, "  x %v\n", err)
				break
			}
			fmt.Fprintf(out, "Unique values in %q (%d total):\n", args[2], len(uniques))
			for i, v := range uniques {
				if i == maxListedValues {
					fmt.Fprintf(out, "  ... and %d more\n", len(uniques)-maxListedValues)
					break
				}
				fmt.Fprintf(out, "  - %s\n", v)
			}

		case "counts":
			if len(args) != 3 {
				fmt.Fprintln(out, "usage: counts <file> <sheet> <column>")
				break
			}
			counts, err := session.ValueCounts(args[0], args[1], args[2])
			if err != nil {
				fmt.Fprintf(out, "  x %v\n", err)
				break
			}
			fmt.Fprintf(out, "Value counts for %q:\n", args[2])
			for i, vc := range counts {
				if i == maxListedValues {
					fmt.Fprintf(out, "  ... and %d more values\n", len(counts)-maxListedValues)
					break
				}
				fmt.Fprintf(out, "  %s: %d\n", vc.Value, vc.Count)
			}

		case "filter":
			if len(args) != 5 {
				fmt.Fprintln(out, "usage: filter <file> <sheet> <column> <op> <value>")
				fmt.Fprintln(out, "operators: ==, !=, >, >=, <, <=, contains")
				break
			}
			filtered, err := session.Filter(args[0], args[1], args[2], args[3], args[4])
			if err != nil {
				fmt.Fprintf(out, "  x %v\n", err)
				break
			}
			if filtered.NumRows() == 0 {
				fmt.Fprintln(out, "No rows match the filter condition.")
				break
			}
			fmt.Fprintf(out, "Filtered results (%d rows):\n", filtered.NumRows())
			if filtered.NumRows() > maxListedValues {
				printTable(out, filtered.Slice(0, maxListedValues))
				fmt.Fprintf(out, "  ... showing first %d of %d rows\n", maxListedValues, filtered.NumRows())
			} else {
				printTable(out, filtered)
			}

		case "compare":
			if len(args) < 4 || len(args) > 5 {
				fmt.Fprintln(out, "usage: compare <file1> <sheet1> <file2> <sheet2> [key]")
				break
			}
			key := ""
			if len(args) == 5 {
				key = args[4]
			}
			res, err := session.CompareSheets(args[0], args[1], args[2], args[3], key)
			if err != nil && !errors.Is(err, compare.ErrNoCommonColumns) {
				fmt.Fprintf(out, "  x %v\n", err)
				break
			}
			label1 := fmt.Sprintf("%s:%s", args[0], args[1])
			label2 := fmt.Sprintf("%s:%s", args[2], args[3])
			fmt.Fprint(out, output.RenderReport(res, label1, label2))

		case "ask":
			if len(args) == 0 {
				fmt.Fprintln(out, "usage: ask <question>")
				break
			}
			fmt.Fprintln(out, router.Answer(strings.Join(args, " ")))

		default:
			fmt.Fprintf(out, "Unknown command %q. Type 'help' for available commands.\n", command)
		}

		fmt.Fprint(out, "> ")
	}
	return scanner.Err()
}

func printTable(out io.Writer, t *models.Table) {
	fmt.Fprintf(out, "  %s\n", strings.Join(t.Columns(), " | "))
	for _, row := range t.Rows() {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = v.Canonical()
		}
		fmt.Fprintf(out, "  %s\n", strings.Join(cells, " | "))
	}
}
