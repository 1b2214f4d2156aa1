// Package main provides the CLI entry point for excelanalyzer.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pktikkani/excelanalyzer/pkg/analyzer"
	"github.com/pktikkani/excelanalyzer/pkg/analyzer/compare"
	"github.com/pktikkani/excelanalyzer/pkg/analyzer/output"
)

var (
	keyColumn string
	csvPath   string
	jsonOut   bool
	pretty    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "excelanalyzer [files...]",
		Short: "Load and reconcile Excel workbooks",
		Long: `excelanalyzer loads Excel workbooks and compares their sheets:
column structure, shape, row-by-row or key-matched cell diffs, and
numeric column stats. With file arguments it starts an interactive
session; use the compare subcommand for a one-shot diff.`,
		Args: cobra.ArbitraryArgs,
		RunE: runInteractive,
	}

	compareCmd := &cobra.Command{
		Use:   "compare <file1> <sheet1> <file2> <sheet2>",
		Short: "Compare two sheets and print a report",
		Args:  cobra.ExactArgs(4),
		RunE:  runCompare,
	}
	compareCmd.Flags().StringVarP(&keyColumn, "key", "k", "", "Key column for row matching (default: positional)")
	compareCmd.Flags().StringVar(&csvPath, "csv", "", "Write cell changes to a CSV file")
	compareCmd.Flags().BoolVar(&jsonOut, "json", false, "Print the full result as JSON instead of a report")
	compareCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.AddCommand(compareCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runInteractive(cmd *cobra.Command, args []string) error {
	session := analyzer.NewSession()
	for _, path := range args {
		wb, err := session.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  x %v\n", err)
			continue
		}
		fmt.Printf("  + loaded %q - %d sheet(s)\n", wb.Name(), wb.Summary().Sheets)
	}
	return repl(session, os.Stdin, os.Stdout)
}

func runCompare(cmd *cobra.Command, args []string) error {
	session := analyzer.NewSession()
	if _, err := session.Load(args[0]); err != nil {
		return err
	}
	if _, err := session.Load(args[2]); err != nil {
		return err
	}

	file1 := filepath.Base(args[0])
	file2 := filepath.Base(args[2])
	res, err := session.CompareSheets(file1, args[1], file2, args[3], keyColumn)
	if err != nil && !errors.Is(err, compare.ErrNoCommonColumns) {
		return err
	}

	label1 := fmt.Sprintf("%s:%s", file1, args[1])
	label2 := fmt.Sprintf("%s:%s", file2, args[3])

	if jsonOut {
		data, jerr := output.ToJSON(res, pretty)
		if jerr != nil {
			return jerr
		}
		fmt.Println(string(data))
	} else {
		fmt.Print(output.RenderReport(res, label1, label2))
	}

	if csvPath != "" && res.Cells != nil {
		f, ferr := os.Create(csvPath)
		if ferr != nil {
			return ferr
		}
		defer f.Close()
		if err := output.WriteCellChangesCSV(f, res.RowMatch, res.Cells); err != nil {
			return err
		}
		fmt.Printf("wrote %d changes to %s\n", res.Cells.Total, csvPath)
	}

	return err
}
