// Package commands wires the tngwallet CLI: extract, report, and export
// over a single statement PDF.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/rajeev00723/tng-ewallet-visualizer/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "tngwallet",
		Short:   "Extract and analyze TNG e-wallet statement PDFs",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newExtractCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newExportCommand())

	return rootCmd
}
