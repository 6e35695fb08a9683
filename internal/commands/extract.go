package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExtractCommand() *cobra.Command {
	var flags pipelineFlags

	cmd := &cobra.Command{
		Use:   "extract <statement.pdf>",
		Short: "Extract transactions from a statement PDF",
		Long: "Extract transactions from a password-protected TNG e-wallet statement.\n" +
			"Direct text extraction runs first; OCR is the fallback when no page\n" +
			"yields a recognizable row. Pass - as the path to read the PDF from stdin.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			txns, err := flags.run(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(txns) == 0 {
				fmt.Fprintln(out, "No transactions found.")
				return nil
			}
			renderTable(out, txns)
			fmt.Fprintf(out, "\n%d transactions\n", len(txns))
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}
