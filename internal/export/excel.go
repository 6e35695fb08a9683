package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/rajeev00723/tng-ewallet-visualizer/internal/model"
	"github.com/rajeev00723/tng-ewallet-visualizer/internal/report"
)

const (
	sheetTransactions = "Transactions"
	sheetSummary      = "Summary"
)

// Excel writes transactions and their summary metrics as a two-sheet
// workbook. Amounts land as numbers so spreadsheet formulas work on
// them.
func Excel(w io.Writer, txns []model.Transaction) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetTransactions); err != nil {
		return fmt.Errorf("naming transactions sheet: %w", err)
	}

	header := []interface{}{"Date", "Type", "Name", "Amount", "Balance"}
	if err := f.SetSheetRow(sheetTransactions, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, t := range txns {
		amount, _ := t.Amount.Float64()
		balance, _ := t.Balance.Float64()
		cells := []interface{}{
			t.Date.Format("2006-01-02"), string(t.Type), t.Name, amount, balance,
		}
		if err := f.SetSheetRow(sheetTransactions, fmt.Sprintf("A%d", i+2), &cells); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	if _, err := f.NewSheet(sheetSummary); err != nil {
		return fmt.Errorf("creating summary sheet: %w", err)
	}
	s := report.Summarize(txns)
	summary := [][]interface{}{
		{"Transactions", s.Count},
		{"Total received (RM)", s.TotalCredits.StringFixed(2)},
		{"Total paid (RM)", s.TotalDebits.StringFixed(2)},
		{"Last balance (RM)", s.LastBalance.StringFixed(2)},
	}
	for i, cells := range summary {
		if err := f.SetSheetRow(sheetSummary, fmt.Sprintf("A%d", i+1), &cells); err != nil {
			return fmt.Errorf("writing summary row %d: %w", i+1, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
