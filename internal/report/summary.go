package report

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/kodelint/next-prune/internal/format"
	"github.com/kodelint/next-prune/internal/remove"
)

// PrintDeletionSummary renders a deletion run's outcome: one row per
// CandidateType with its reclaimed bytes, a footer with the grand
// total, and the overall deleted/failed counts.
func PrintDeletionSummary(summary remove.Summary, typeTotals []TypeTotal, dryRun bool) {
	title := "CLEANUP SUMMARY"
	if dryRun {
		title = "CLEANUP SUMMARY (DRY RUN)"
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetTitle(title)
	tw.AppendHeader(table.Row{blue("CANDIDATE TYPE"), blue("RECLAIMED")})
	tw.SetStyle(table.StyleColoredDark)

	var total int64
	for _, t := range typeTotals {
		tw.AppendRow(table.Row{string(t.Type), green(format.HumanBytes(t.Bytes))})
		total += t.Bytes
	}
	tw.AppendFooter(table.Row{blue("TOTAL RECLAIMED:"), blue(format.HumanBytes(total))})
	tw.Render()

	fmt.Println()
	if dryRun {
		return
	}
	fmt.Println(blue("deleted:"), summary.DeletedCount, blue("failed:"), summary.FailureCount)
}
