// Package normalize converts matched statement rows into typed,
// sign-carrying transactions ready for tabular analysis.
package normalize

import (
	"fmt"
	"time"

	"github.com/rajeev00723/tng-ewallet-visualizer/internal/model"
)

// DateLayout parses statement dates in day/month/year order, with one or
// two digit day and month.
const DateLayout = "2/1/2006"

// FormatError means a matched field did not parse. It should never
// happen for a well-matched row but is always checked.
type FormatError struct {
	Field string
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("parsing %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Normalize converts raw rows in appearance order. Credits keep their
// amount positive, debits are negated, balances pass through as printed.
// An empty input yields an empty result and a nil error; downstream
// consumers treat that as nothing to display, not a failure.
func Normalize(raws []model.RawTransaction) ([]model.Transaction, error) {
	txns := make([]model.Transaction, 0, len(raws))
	for _, raw := range raws {
		date, err := time.Parse(DateLayout, raw.Date)
		if err != nil {
			return nil, &FormatError{Field: "date", Value: raw.Date, Err: err}
		}
		amount := raw.Amount
		if !raw.Type.IsCredit() {
			amount = amount.Neg()
		}
		txns = append(txns, model.Transaction{
			Date:    date,
			Type:    raw.Type,
			Name:    raw.Name,
			Amount:  amount,
			Balance: raw.Balance,
		})
	}
	return txns, nil
}
