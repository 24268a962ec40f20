// Package renderer turns engine reports into markdown text. It performs no
// arithmetic: every figure is formatted from the report as computed.
package renderer

import (
	"fmt"
	"strings"

	"cryptogains"
)

// ReportMarkdown renders a TaxReport to a markdown string: the totals, one
// row per disposal, and the jurisdiction's advisory notes.
func ReportMarkdown(report *cryptogains.TaxReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Capital Gains Tax Report (%s)\n\n", report.Jurisdiction)
	fmt.Fprintf(&b, "%s\n\n", report.Jurisdiction.Describe())

	fmt.Fprint(&b, "## Summary\n\n")
	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Total Gains | %s |\n", report.TotalGains.SignedString())
	fmt.Fprintf(&b, "| Taxable Gains | %s |\n", report.TaxableGains.SignedString())
	fmt.Fprintf(&b, "| Estimated Tax | %s |\n", report.EstimatedTax.String())
	if report.ShortTermGains != nil {
		fmt.Fprintf(&b, "| Short-Term Gains | %s |\n", report.ShortTermGains.SignedString())
	}
	if report.LongTermGains != nil {
		fmt.Fprintf(&b, "| Long-Term Gains | %s |\n", report.LongTermGains.SignedString())
	}
	fmt.Fprintln(&b)

	if len(report.Disposals) > 0 {
		fmt.Fprint(&b, "## Disposals\n\n")
		fmt.Fprintln(&b, "| Asset | Sell Date | Quantity | Proceeds | Cost Basis | Gain | Held (days) |")
		fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|---:|")
		for _, d := range report.Disposals {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %d |\n",
				d.Asset,
				d.SellDate,
				d.Quantity,
				d.Proceeds,
				d.CostBasis,
				d.Gain.SignedString(),
				d.HoldingPeriodDays,
			)
		}
		fmt.Fprintln(&b)
	}

	fmt.Fprint(&b, "## Notes\n\n")
	for _, note := range report.Notes {
		fmt.Fprintf(&b, "- %s\n", note)
	}

	return b.String()
}
