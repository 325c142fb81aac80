package main

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"reflow/internal/driver"
)

// renderStatsTable prints per-file byte savings for a formatting run.
func renderStatsTable(out io.Writer, results []driver.FormatResult) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Path", "Bytes In", "Bytes Out", "Saved"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	totalIn, totalOut := 0, 0
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		totalIn += res.BytesIn
		totalOut += res.BytesOut
		table.Append([]string{
			res.Path,
			fmt.Sprintf("%d", res.BytesIn),
			fmt.Sprintf("%d", res.BytesOut),
			savedPercent(res.BytesIn, res.BytesOut),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(results)),
		fmt.Sprintf("%d", totalIn),
		fmt.Sprintf("%d", totalOut),
		savedPercent(totalIn, totalOut),
	})
	table.Render()
}

func savedPercent(in, out int) string {
	if in == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(in-out)/float64(in))
}
