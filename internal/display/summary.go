// Package display renders human-facing decorations: the banner and the
// end-of-run summary table. Nothing here writes per-file result lines.
package display

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/backmassage/exifdate/internal/pipeline"
)

// SummaryTable renders stats as a two-column table. Rows with a zero count
// are kept so the layout is the same for every run.
func SummaryTable(stats pipeline.RunStats, dryRun bool) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Outcome", "Files"})

	done := table.Row{"Applied", strconv.Itoa(stats.Applied)}
	if dryRun {
		done = table.Row{"Emitted", strconv.Itoa(stats.Emitted)}
	}
	tw.AppendRow(done)
	tw.AppendRow(table.Row{"Skipped", strconv.Itoa(stats.Skipped)})
	tw.AppendRow(table.Row{"Failed", strconv.Itoa(stats.Failed)})
	tw.AppendFooter(table.Row{"Total", strconv.Itoa(stats.Total)})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft, AlignFooter: text.AlignRight},
	})
	return tw.Render()
}
