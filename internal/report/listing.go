// Package report renders scan listings and deletion summaries the way
// the reference cleanup tool's reclaimer package renders its
// categorized, colored table: go-pretty for layout, fatih/color for
// emphasis.
package report

import (
	"os"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/kodelint/next-prune/internal/classify"
	"github.com/kodelint/next-prune/internal/format"
	"github.com/kodelint/next-prune/internal/scan"
)

var (
	blue  = color.New(color.FgBlue, color.Bold).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
)

// PrintListing renders a scan result as a human-readable table: one
// row per candidate, grouped visually by sort order (size desc, path
// asc, the order Scan already returns them in).
func PrintListing(items []scan.ScanItem, title string) {
	if len(items) == 0 {
		return
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetTitle(title)
	tw.AppendHeader(table.Row{blue("TYPE"), blue("SCOPE"), blue("PATH"), blue("SIZE"), blue("AGE")})
	tw.SetStyle(table.StyleColoredDark)

	var total int64
	now := time.Now()
	for _, item := range items {
		candidateType := classify.Classify(item)
		tw.AppendRow(table.Row{
			string(candidateType),
			string(item.CleanupScope),
			item.Path,
			green(format.HumanBytes(item.Stats.Size)),
			format.TimeAgo(item.Stats.Mtime, now),
		})
		total += item.Stats.Size
	}

	tw.AppendFooter(table.Row{"", "", blue("TOTAL"), blue(format.HumanBytes(total)), ""})
	tw.Render()
}

// SummaryByType aggregates reclaimable bytes per CandidateType, sorted
// by type name, the same shape the reference tool aggregates per
// Category before rendering its footer-totaled table.
func SummaryByType(items []scan.ScanItem) []TypeTotal {
	grouped := make(map[classify.CandidateType]int64)
	for _, item := range items {
		grouped[classify.Classify(item)] += item.Stats.Size
	}

	types := make([]string, 0, len(grouped))
	for t := range grouped {
		types = append(types, string(t))
	}
	sort.Strings(types)

	totals := make([]TypeTotal, 0, len(types))
	for _, t := range types {
		ct := classify.CandidateType(t)
		totals = append(totals, TypeTotal{Type: ct, Bytes: grouped[ct]})
	}
	return totals
}

// TypeTotal is one row of a SummaryByType aggregation.
type TypeTotal struct {
	Type  classify.CandidateType
	Bytes int64
}
