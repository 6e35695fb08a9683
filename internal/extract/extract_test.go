package extract

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rajeev00723/tng-ewallet-visualizer/internal/model"
)

type fakeStrategy struct {
	name  string
	txns  []model.RawTransaction
	err   error
	calls int
	paths []string
}

func (f *fakeStrategy) Name() string { return f.name }

func (f *fakeStrategy) Extract(path, _ string) ([]model.RawTransaction, error) {
	f.calls++
	f.paths = append(f.paths, path)
	return f.txns, f.err
}

func sampleRows(n int) []model.RawTransaction {
	rows := make([]model.RawTransaction, n)
	for i := range rows {
		rows[i] = model.RawTransaction{
			Date:    "1/1/2025",
			Type:    model.TypeReceiveFromWallet,
			Amount:  decimal.New(int64(i+1), 0),
			Balance: decimal.New(100, 0),
		}
	}
	return rows
}

func TestExtractFile_FirstStrategyWins(t *testing.T) {
	first := &fakeStrategy{name: "first", txns: sampleRows(2)}
	second := &fakeStrategy{name: "second", txns: sampleRows(5)}

	e := NewWithStrategies(zap.NewNop(), first, second)
	txns, err := e.ExtractFile("statement.pdf", "pw")
	require.NoError(t, err)

	assert.Len(t, txns, 2)
	assert.Equal(t, 1, first.calls)
	assert.Zero(t, second.calls, "fallback must not run when direct extraction finds rows")
}

func TestExtractFile_FallsBackOnZeroRows(t *testing.T) {
	first := &fakeStrategy{name: "first"}
	second := &fakeStrategy{name: "second", txns: sampleRows(3)}

	e := NewWithStrategies(zap.NewNop(), first, second)
	txns, err := e.ExtractFile("statement.pdf", "pw")
	require.NoError(t, err)

	assert.Len(t, txns, 3)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
}

func TestExtractFile_FallsBackOnStrategyError(t *testing.T) {
	first := &fakeStrategy{name: "first", err: errors.New("boom")}
	second := &fakeStrategy{name: "second", txns: sampleRows(1)}

	e := NewWithStrategies(zap.NewNop(), first, second)
	txns, err := e.ExtractFile("statement.pdf", "pw")
	require.NoError(t, err)

	assert.Len(t, txns, 1)
	assert.Equal(t, 1, second.calls)
}

func TestExtractFile_DocumentErrorAborts(t *testing.T) {
	first := &fakeStrategy{name: "first", err: &DocumentError{Path: "statement.pdf", Err: errors.New("invalid password")}}
	second := &fakeStrategy{name: "second", txns: sampleRows(1)}

	e := NewWithStrategies(zap.NewNop(), first, second)
	txns, err := e.ExtractFile("statement.pdf", "wrong")
	require.Error(t, err)

	var docErr *DocumentError
	assert.ErrorAs(t, err, &docErr)
	assert.Empty(t, txns)
	assert.Zero(t, second.calls, "no fallback after a document-open failure")
}

func TestExtractFile_AllEmptyIsNotAnError(t *testing.T) {
	first := &fakeStrategy{name: "first"}
	second := &fakeStrategy{name: "second"}

	e := NewWithStrategies(zap.NewNop(), first, second)
	txns, err := e.ExtractFile("statement.pdf", "pw")
	require.NoError(t, err)

	assert.Empty(t, txns)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
}

func TestExtractReader_TempFileScopedToRun(t *testing.T) {
	s := &fakeStrategy{name: "probe", txns: sampleRows(1)}

	e := NewWithStrategies(zap.NewNop(), s)
	txns, err := e.ExtractReader(strings.NewReader("%PDF-1.7 fake"), "pw")
	require.NoError(t, err)
	assert.Len(t, txns, 1)

	require.Len(t, s.paths, 1)
	// The spilled statement must be gone once the run returns.
	_, statErr := os.Stat(s.paths[0])
	assert.True(t, os.IsNotExist(statErr), "temp statement %s should be removed", s.paths[0])
}

func TestNew_DefaultChain(t *testing.T) {
	e, err := New(nil, Options{})
	require.NoError(t, err)
	require.Len(t, e.strategies, 2)
	assert.Equal(t, "pdf-text", e.strategies[0].Name())
	assert.Equal(t, "ocr", e.strategies[1].Name())
}

func TestNew_OCRDisabled(t *testing.T) {
	e, err := New(zap.NewNop(), Options{DisableOCR: true})
	require.NoError(t, err)
	require.Len(t, e.strategies, 1)
	assert.Equal(t, "pdf-text", e.strategies[0].Name())
}

func TestNew_BadYear(t *testing.T) {
	_, err := New(zap.NewNop(), Options{Year: 12})
	assert.Error(t, err)
}

func TestDocumentError_Unwrap(t *testing.T) {
	inner := errors.New("invalid password")
	err := &DocumentError{Path: "x.pdf", Err: inner}

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "x.pdf")
}
