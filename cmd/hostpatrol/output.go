package main

import (
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pterm/pterm"

	"github.com/hostpatrol/hostpatrol/pkg/report"
)

// printSummary writes a per-check table and a final verdict line.
func printSummary(summary report.Summary) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Append([]string{"Server", "Host", "Check", "Status"})

	for _, r := range summary.Reports {
		for _, res := range r.Results {
			table.Append([]string{
				r.Name,
				r.Host,
				res.Check,
				strings.ToUpper(res.Status.String()),
			})
		}
	}

	table.Render()

	if summary.Failed {
		pterm.Error.Println("some checks failed")
	} else {
		pterm.Success.Println("all checks passed")
	}
}
