package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rajeev00723/tng-ewallet-visualizer/internal/model"
	"github.com/rajeev00723/tng-ewallet-visualizer/internal/report"
)

// renderTable prints transactions in reading order.
func renderTable(w io.Writer, txns []model.Transaction) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tTYPE\tNAME\tAMOUNT\tBALANCE")
	for _, t := range txns {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			t.Date.Format("2006-01-02"), t.Type, t.Name,
			t.Amount.StringFixed(2), t.Balance.StringFixed(2))
	}
	tw.Flush()
}

// renderSummary prints the headline metrics.
func renderSummary(w io.Writer, s report.Summary) {
	fmt.Fprintf(w, "Transactions:        %d\n", s.Count)
	fmt.Fprintf(w, "Total received (RM): %s\n", s.TotalCredits.StringFixed(2))
	fmt.Fprintf(w, "Total paid (RM):     %s\n", s.TotalDebits.StringFixed(2))
	fmt.Fprintf(w, "Last balance (RM):   %s\n", s.LastBalance.StringFixed(2))
}

// renderDistribution prints the type-distribution series.
func renderDistribution(w io.Writer, counts []report.TypeCount) {
	fmt.Fprintln(w, "By type:")
	for _, tc := range counts {
		fmt.Fprintf(w, "  %-20s %d\n", tc.Type, tc.Count)
	}
}

// renderCumulative prints the cumulative net series.
func renderCumulative(w io.Writer, points []report.Point) {
	fmt.Fprintln(w, "Cumulative net (RM):")
	for _, pt := range points {
		fmt.Fprintf(w, "  %s  %s\n", pt.Date.Format("2006-01-02"), pt.Net.StringFixed(2))
	}
}

// renderHistogram prints the signed-amount histogram buckets.
func renderHistogram(w io.Writer, buckets []report.Bucket) {
	fmt.Fprintln(w, "Amount distribution (RM):")
	for _, b := range buckets {
		fmt.Fprintf(w, "  %s .. %s  %d\n",
			b.Low.StringFixed(2), b.High.StringFixed(2), b.Count)
	}
}
