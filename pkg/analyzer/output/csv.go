package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pktikkani/excelanalyzer/pkg/analyzer/compare"
)

// WriteCellChangesCSV writes the cell-level changes as a flat delimited
// table. The header is part of the observable contract: the identifier
// column is "Row" in positional mode or the key column's name in keyed mode,
// followed by "Column", "File 1 Value" and "File 2 Value" verbatim.
func WriteCellChangesCSV(w io.Writer, match *compare.RowMatch, diff *compare.CellDiff) error {
	cw := csv.NewWriter(w)

	idHeader := "Row"
	if match.Mode == compare.ModeKeyed {
		idHeader = match.KeyColumn
	}
	if err := cw.Write([]string{idHeader, "Column", "File 1 Value", "File 2 Value"}); err != nil {
		return err
	}

	for _, c := range diff.Changes {
		id := strconv.Itoa(c.Row)
		if match.Mode == compare.ModeKeyed {
			id = c.Key.Canonical()
		}
		if err := cw.Write([]string{id, c.Column, c.Left.Canonical(), c.Right.Canonical()}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
