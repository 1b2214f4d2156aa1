package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pktikkani/excelanalyzer/pkg/analyzer/compare"
)

// maxReportChanges caps how many cell changes the text report prints. The
// underlying result always carries the complete list; this is display only.
const maxReportChanges = 50

// RenderReport formats a comparison result as a styled terminal report,
// mirroring the comparison order: shape, columns, stats, cell diff, extras.
func RenderReport(res *compare.Result, label1, label2 string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Shape Comparison") + "\n")
	fmt.Fprintf(&b, "  %s: %d rows x %d cols\n", label1, res.Shape.LeftRows, res.Shape.LeftCols)
	fmt.Fprintf(&b, "  %s: %d rows x %d cols\n", label2, res.Shape.RightRows, res.Shape.RightCols)
	fmt.Fprintf(&b, "  difference: %+d rows, %+d cols\n", res.Shape.RowDiff, res.Shape.ColDiff)

	b.WriteString(titleStyle.Render("Column Comparison") + "\n")
	if len(res.Structure.OnlyLeft) > 0 {
		b.WriteString(warnStyle.Render(fmt.Sprintf("  only in %s: %s", label1, strings.Join(res.Structure.OnlyLeft, ", "))) + "\n")
	}
	if len(res.Structure.OnlyRight) > 0 {
		b.WriteString(warnStyle.Render(fmt.Sprintf("  only in %s: %s", label2, strings.Join(res.Structure.OnlyRight, ", "))) + "\n")
	}
	if len(res.Structure.Common) > 0 {
		fmt.Fprintf(&b, "  common columns (%d): %s\n", len(res.Structure.Common), strings.Join(res.Structure.Common, ", "))
	}
	if len(res.Structure.OnlyLeft) == 0 && len(res.Structure.OnlyRight) == 0 {
		b.WriteString(okStyle.Render("  both sheets have identical column structures") + "\n")
	}

	if len(res.Stats) > 0 {
		b.WriteString(titleStyle.Render("Numeric Stats Comparison") + "\n")
		for _, cs := range res.Stats {
			fmt.Fprintf(&b, "  %s: mean %.2f vs %.2f (diff %+.2f), sum %.2f vs %.2f (diff %+.2f), min %g/%g, max %g/%g\n",
				cs.Column, cs.MeanLeft, cs.MeanRight, cs.MeanDiff,
				cs.SumLeft, cs.SumRight, cs.SumDiff,
				cs.MinLeft, cs.MinRight, cs.MaxLeft, cs.MaxRight)
		}
	}

	b.WriteString(titleStyle.Render("Cell-Level Differences") + "\n")
	if res.Cells == nil || res.RowMatch == nil {
		b.WriteString(errStyle.Render("  no common columns - cannot compare cells") + "\n")
		return b.String()
	}

	match := res.RowMatch
	if match.KeyFallback {
		b.WriteString(warnStyle.Render("  requested key column is not a common column; compared positionally instead") + "\n")
	}
	if match.Mode == compare.ModeKeyed {
		fmt.Fprintf(&b, "  matched on key column %q: %d common keys, %d only in %s, %d only in %s\n",
			match.KeyColumn, len(match.CommonKeys), len(match.KeysOnlyLeft), label1, len(match.KeysOnlyRight), label2)
	} else {
		fmt.Fprintf(&b, "  compared positionally, %d rows\n", match.RowsCompared)
	}

	if res.Cells.Total == 0 {
		b.WriteString(okStyle.Render("  all compared cells are identical") + "\n")
	} else {
		b.WriteString(warnStyle.Render(fmt.Sprintf("  %d cell value(s) differ", res.Cells.Total)) + "\n")
		for i, c := range res.Cells.Changes {
			if i == maxReportChanges {
				b.WriteString(dimStyle.Render(fmt.Sprintf("  ... showing first %d of %d changes", maxReportChanges, res.Cells.Total)) + "\n")
				break
			}
			id := strconv.Itoa(c.Row)
			if match.Mode == compare.ModeKeyed {
				id = c.Key.Canonical()
			}
			fmt.Fprintf(&b, "  [%s] %s: %q -> %q\n", id, c.Column, c.Left.Canonical(), c.Right.Canonical())
		}
	}

	if match.ExtraLeft != nil {
		fmt.Fprintf(&b, "  extra rows in %s: %d\n", label1, match.ExtraLeft.NumRows())
	}
	if match.ExtraRight != nil {
		fmt.Fprintf(&b, "  extra rows in %s: %d\n", label2, match.ExtraRight.NumRows())
	}

	return b.String()
}
