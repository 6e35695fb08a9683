// Package extract turns a password-protected TNG statement PDF into raw
// transaction rows. Extraction is an ordered chain of strategies, each
// tried in turn until one yields rows: direct PDF text first, OCR as the
// single fallback.
package extract

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/rajeev00723/tng-ewallet-visualizer/internal/model"
	"github.com/rajeev00723/tng-ewallet-visualizer/internal/pattern"
)

// Strategy is one way of getting transaction rows out of a statement.
type Strategy interface {
	Name() string
	Extract(path, password string) ([]model.RawTransaction, error)
}

// Options configures a run.
type Options struct {
	Year        int    // statement year the matcher anchors on, 0 = pattern.DefaultYear
	OCRLanguage string // tesseract language, "" = "eng"
	DisableOCR  bool   // drop the OCR fallback from the chain
}

// Extractor runs the strategy chain over one statement at a time. It is
// strictly sequential; page iteration and OCR never overlap.
type Extractor struct {
	strategies []Strategy
	log        *zap.Logger
}

// New builds an extractor with the default strategy chain.
func New(log *zap.Logger, opts Options) (*Extractor, error) {
	if log == nil {
		log = zap.NewNop()
	}
	year := opts.Year
	if year == 0 {
		year = pattern.DefaultYear
	}
	m, err := pattern.New(year)
	if err != nil {
		return nil, err
	}
	lang := opts.OCRLanguage
	if lang == "" {
		lang = "eng"
	}
	strategies := []Strategy{
		&TextStrategy{Matcher: m, Log: log.Named("text")},
	}
	if !opts.DisableOCR {
		strategies = append(strategies, &OCRStrategy{Matcher: m, Language: lang, Log: log.Named("ocr")})
	}
	return &Extractor{strategies: strategies, log: log}, nil
}

// NewWithStrategies builds an extractor with an explicit chain.
func NewWithStrategies(log *zap.Logger, strategies ...Strategy) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{strategies: strategies, log: log}
}

// ExtractFile runs the chain against a statement on disk. A wrong
// password or unreadable file surfaces as *DocumentError and stops the
// chain. Any other strategy failure is logged and the next strategy
// tried. Zero recognized rows is not an error: the result is empty with
// a nil error.
func (e *Extractor) ExtractFile(path, password string) ([]model.RawTransaction, error) {
	for _, s := range e.strategies {
		txns, err := s.Extract(path, password)
		var docErr *DocumentError
		if errors.As(err, &docErr) {
			return nil, err
		}
		if err != nil {
			e.log.Warn("extraction strategy failed",
				zap.String("strategy", s.Name()), zap.Error(err))
			continue
		}
		if len(txns) > 0 {
			e.log.Info("extraction strategy succeeded",
				zap.String("strategy", s.Name()), zap.Int("transactions", len(txns)))
			return txns, nil
		}
		e.log.Info("extraction strategy found nothing",
			zap.String("strategy", s.Name()))
	}
	return nil, nil
}

// ExtractReader spills an uploaded statement to a run-scoped temp file
// and extracts from it. The file is removed on every exit path, so two
// concurrent callers never collide on a shared name.
func (e *Extractor) ExtractReader(r io.Reader, password string) ([]model.RawTransaction, error) {
	f, err := os.CreateTemp("", "tngwallet-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("creating temp statement: %w", err)
	}
	defer os.Remove(f.Name())

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return nil, fmt.Errorf("writing temp statement: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("closing temp statement: %w", err)
	}
	return e.ExtractFile(f.Name(), password)
}
