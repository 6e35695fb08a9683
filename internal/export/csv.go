// Package export writes the normalized transaction table to CSV or XLSX.
package export

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/rajeev00723/tng-ewallet-visualizer/internal/model"
)

// row is the flat projection of a normalized transaction used by both
// output formats.
type row struct {
	Date    string `csv:"date"`
	Type    string `csv:"type"`
	Name    string `csv:"name"`
	Amount  string `csv:"amount"`
	Balance string `csv:"balance"`
}

func toRow(t model.Transaction) row {
	return row{
		Date:    t.Date.Format("2006-01-02"),
		Type:    string(t.Type),
		Name:    t.Name,
		Amount:  t.Amount.StringFixed(2),
		Balance: t.Balance.StringFixed(2),
	}
}

// CSV writes transactions as a headed CSV table in appearance order.
func CSV(w io.Writer, txns []model.Transaction) error {
	rows := make([]row, len(txns))
	for i, t := range txns {
		rows[i] = toRow(t)
	}
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}
	return nil
}
