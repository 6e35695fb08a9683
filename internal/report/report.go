// Package report filters normalized transactions and computes the
// summary metrics and chart series the CLI renders.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rajeev00723/tng-ewallet-visualizer/internal/model"
)

// Summary holds the headline metrics for a set of transactions.
type Summary struct {
	Count        int
	TotalCredits decimal.Decimal // sum of positive signed amounts
	TotalDebits  decimal.Decimal // sum of negative signed amounts, reported positive
	LastBalance  decimal.Decimal // running balance of the last transaction in order
}

// Summarize computes the headline metrics in appearance order.
func Summarize(txns []model.Transaction) Summary {
	s := Summary{Count: len(txns)}
	for _, t := range txns {
		if t.Amount.IsPositive() {
			s.TotalCredits = s.TotalCredits.Add(t.Amount)
		} else {
			s.TotalDebits = s.TotalDebits.Sub(t.Amount)
		}
	}
	if len(txns) > 0 {
		s.LastBalance = txns[len(txns)-1].Balance
	}
	return s
}

// Point is one step of the cumulative net series.
type Point struct {
	Date time.Time
	Net  decimal.Decimal // running net amount up to and including Date
}

// CumulativeNet groups signed amounts by calendar date and accumulates
// them in date order.
func CumulativeNet(txns []model.Transaction) []Point {
	byDate := make(map[time.Time]decimal.Decimal)
	for _, t := range txns {
		byDate[t.Date] = byDate[t.Date].Add(t.Amount)
	}

	dates := make([]time.Time, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	var running decimal.Decimal
	points := make([]Point, 0, len(dates))
	for _, d := range dates {
		running = running.Add(byDate[d])
		points = append(points, Point{Date: d, Net: running})
	}
	return points
}

// TypeCount is one slice of the type-distribution chart.
type TypeCount struct {
	Type  model.TxnType
	Count int
}

// TypeDistribution counts transactions per type, ordered by the closed
// enum so output is stable. Types with zero transactions are omitted.
func TypeDistribution(txns []model.Transaction) []TypeCount {
	counts := make(map[model.TxnType]int)
	for _, t := range txns {
		counts[t.Type]++
	}
	var out []TypeCount
	for _, typ := range model.AllTypes() {
		if counts[typ] > 0 {
			out = append(out, TypeCount{Type: typ, Count: counts[typ]})
		}
	}
	return out
}

// Bucket is one bar of the signed-amount histogram. The range is
// [Low, High); the last bucket includes its upper bound.
type Bucket struct {
	Low   decimal.Decimal
	High  decimal.Decimal
	Count int
}

// Histogram splits signed amounts into bins equal-width buckets. A
// single bucket comes back when every amount is the same value; nil when
// there is nothing to bin.
func Histogram(txns []model.Transaction, bins int) []Bucket {
	if len(txns) == 0 || bins <= 0 {
		return nil
	}

	lo, hi := txns[0].Amount, txns[0].Amount
	for _, t := range txns[1:] {
		if t.Amount.LessThan(lo) {
			lo = t.Amount
		}
		if t.Amount.GreaterThan(hi) {
			hi = t.Amount
		}
	}
	if lo.Equal(hi) {
		return []Bucket{{Low: lo, High: hi, Count: len(txns)}}
	}

	width := hi.Sub(lo).Div(decimal.NewFromInt(int64(bins)))
	buckets := make([]Bucket, bins)
	for i := range buckets {
		low := lo.Add(width.Mul(decimal.NewFromInt(int64(i))))
		buckets[i] = Bucket{Low: low, High: low.Add(width)}
	}
	buckets[bins-1].High = hi

	for _, t := range txns {
		idx := int(t.Amount.Sub(lo).Div(width).IntPart())
		if idx >= bins {
			idx = bins - 1
		}
		buckets[idx].Count++
	}
	return buckets
}
