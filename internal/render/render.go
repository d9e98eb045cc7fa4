// Package render writes segment records for human consumption: a plain text
// listing and a table view.
package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"segalign/internal/pipeline"
)

// Text writes a numbered speaker/time/text listing, one block per segment.
func Text(w io.Writer, records []pipeline.Record) {
	for i, rec := range records {
		fmt.Fprintf(w, "Segment %d: %s (%.2f-%.2f)\n%s\n\n",
			i+1, rec.Speaker, rec.Start, rec.End, rec.Text)
	}
}

// Table renders records as a rounded-border table.
func Table(records []pipeline.Record) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Speaker", "Start", "End", "Text"})

	for i, rec := range records {
		tw.AppendRow(table.Row{
			i + 1,
			rec.Speaker,
			fmt.Sprintf("%.2f", rec.Start),
			fmt.Sprintf("%.2f", rec.End),
			rec.Text,
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 5, WidthMax: 60},
	})

	return tw.Render()
}
