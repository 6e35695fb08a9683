package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rajeev00723/tng-ewallet-visualizer/internal/report"
)

func newReportCommand() *cobra.Command {
	var flags pipelineFlags
	var filters filterFlags
	var bins int

	cmd := &cobra.Command{
		Use:   "report <statement.pdf>",
		Short: "Summarize and chart extracted transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			txns, err := flags.run(args[0])
			if err != nil {
				return err
			}
			filter, err := filters.build()
			if err != nil {
				return err
			}
			txns = report.Apply(txns, filter)

			out := cmd.OutOrStdout()
			if len(txns) == 0 {
				fmt.Fprintln(out, "No transactions match.")
				return nil
			}

			renderTable(out, txns)
			fmt.Fprintln(out)
			renderSummary(out, report.Summarize(txns))
			fmt.Fprintln(out)
			renderDistribution(out, report.TypeDistribution(txns))
			fmt.Fprintln(out)
			renderCumulative(out, report.CumulativeNet(txns))
			if bins > 0 {
				fmt.Fprintln(out)
				renderHistogram(out, report.Histogram(txns, bins))
			}
			return nil
		},
	}
	flags.register(cmd)
	filters.register(cmd)
	cmd.Flags().IntVar(&bins, "bins", 0, "also print an amount histogram with this many buckets")

	return cmd
}
