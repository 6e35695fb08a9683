// Package pattern recognizes transaction rows in TNG statement page text.
// The same matcher serves both the direct-text and the OCR extraction
// paths.
package pattern

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rajeev00723/tng-ewallet-visualizer/internal/model"
)

// DefaultYear anchors the date group when no statement year is configured.
const DefaultYear = 2025

// Matcher recognizes transaction rows in extracted page text. Build one
// per run and reuse it across pages.
type Matcher struct {
	re *regexp.Regexp
}

// New compiles the row pattern anchored on the given statement year.
// A row is a date, one of the three type literals, an optional uppercase
// counterparty name, then an RM-prefixed amount and running balance with
// exactly two fraction digits. (?s) lets a single row span the line
// breaks the statement renderer inserts.
func New(year int) (*Matcher, error) {
	if year < 1000 || year > 9999 {
		return nil, fmt.Errorf("statement year %d out of range", year)
	}
	expr := fmt.Sprintf(`(?s)(?P<date>\d{1,2}/\d{1,2}/%d)`+
		`.*?(?P<type>Receive from Wallet|PayDirect Payment|DUITNOW_RECEI)`+
		`.*?(?P<name>[A-Z\s/]+)?`+
		`\s+.*?RM(?P<amount>\d+\.\d{2})\s+RM(?P<balance>\d+\.\d{2})`, year)
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compiling row pattern: %w", err)
	}
	return &Matcher{re: re}, nil
}

// Submatch indices of the compiled pattern.
const (
	idxDate = iota + 1
	idxType
	idxName
	idxAmount
	idxBalance
)

// FindAll returns every transaction row recognized in text, in match
// order. The optional name group can swallow adjacent uppercase text
// when a row has no counterparty; that is a known accuracy limitation of
// the statement layout, not something FindAll tries to repair.
func (m *Matcher) FindAll(text string) []model.RawTransaction {
	var txns []model.RawTransaction
	for _, sub := range m.re.FindAllStringSubmatch(text, -1) {
		typ, ok := model.ParseType(strings.TrimSpace(sub[idxType]))
		if !ok {
			continue
		}
		amount, err := decimal.NewFromString(sub[idxAmount])
		if err != nil {
			continue
		}
		balance, err := decimal.NewFromString(sub[idxBalance])
		if err != nil {
			continue
		}
		txns = append(txns, model.RawTransaction{
			Date:    sub[idxDate],
			Type:    typ,
			Name:    strings.TrimSpace(sub[idxName]),
			Amount:  amount,
			Balance: balance,
		})
	}
	return txns
}
