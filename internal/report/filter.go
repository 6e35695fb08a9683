package report

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rajeev00723/tng-ewallet-visualizer/internal/model"
)

// Filter narrows a transaction list. Zero values leave a dimension
// unconstrained.
type Filter struct {
	From  time.Time // inclusive
	To    time.Time // inclusive
	Types []model.TxnType
	Min   *decimal.Decimal // signed-amount lower bound, inclusive
	Max   *decimal.Decimal // signed-amount upper bound, inclusive
	Name  string           // case-insensitive counterparty substring
}

// Apply returns the transactions passing every set dimension, in input
// order.
func Apply(txns []model.Transaction, f Filter) []model.Transaction {
	var out []model.Transaction
	for _, t := range txns {
		if f.match(t) {
			out = append(out, t)
		}
	}
	return out
}

func (f Filter) match(t model.Transaction) bool {
	if !f.From.IsZero() && t.Date.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && t.Date.After(f.To) {
		return false
	}
	if len(f.Types) > 0 && !hasType(f.Types, t.Type) {
		return false
	}
	if f.Min != nil && t.Amount.LessThan(*f.Min) {
		return false
	}
	if f.Max != nil && t.Amount.GreaterThan(*f.Max) {
		return false
	}
	if f.Name != "" && !strings.Contains(strings.ToLower(t.Name), strings.ToLower(f.Name)) {
		return false
	}
	return true
}

func hasType(types []model.TxnType, t model.TxnType) bool {
	for _, typ := range types {
		if typ == t {
			return true
		}
	}
	return false
}
