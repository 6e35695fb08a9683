package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rajeev00723/tng-ewallet-visualizer/internal/export"
	"github.com/rajeev00723/tng-ewallet-visualizer/internal/extract"
	"github.com/rajeev00723/tng-ewallet-visualizer/internal/report"
)

func newExportCommand() *cobra.Command {
	var flags pipelineFlags
	var filters filterFlags
	var output string

	cmd := &cobra.Command{
		Use:   "export <statement.pdf>",
		Short: "Export extracted transactions to CSV or XLSX",
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
			if len(txns) == 0 {
				return extract.ErrNoData
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating %s: %w", output, err)
			}
			defer f.Close()

			switch ext := strings.ToLower(filepath.Ext(output)); ext {
			case ".csv":
				err = export.CSV(f, txns)
			case ".xlsx":
				err = export.Excel(f, txns)
			default:
				return fmt.Errorf("unsupported output format %q (use .csv or .xlsx)", ext)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d transactions to %s\n", len(txns), output)
			return nil
		},
	}
	flags.register(cmd)
	filters.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, .csv or .xlsx (required)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
