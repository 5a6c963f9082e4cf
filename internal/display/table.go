package display

import (
	"fmt"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/backmassage/extsort/internal/planner"
)

// RenderPlan renders a PlanSet as a table: one row per file with its
// destination relative to the destination root, its size, and a note for
// renamed files. The footer carries the totals.
func RenderPlan(ps *planner.PlanSet) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"File", "Destination", "Size", "Note"})

	for _, p := range ps.Plans {
		note := ""
		if p.Renamed() {
			note = "renamed"
		}
		tw.AppendRow(table.Row{
			p.OriginalName(),
			filepath.Join(p.Extension, p.Name),
			FormatBytes(p.Size),
			note,
		})
	}

	tw.AppendFooter(table.Row{
		fmt.Sprintf("%d files", ps.Len()),
		fmt.Sprintf("%d buckets", len(ps.Buckets())),
		FormatBytes(ps.TotalBytes()),
		"",
	})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
