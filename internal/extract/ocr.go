package extract

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/gen2brain/go-fitz"
	"github.com/otiai10/gosseract/v2"
	"go.uber.org/zap"

	"github.com/rajeev00723/tng-ewallet-visualizer/internal/model"
	"github.com/rajeev00723/tng-ewallet-visualizer/internal/pattern"
)

// Engine runs text recognition on one rendered page image. Close frees
// whatever native state the engine holds.
type Engine interface {
	Recognize(image []byte) (string, error)
	Close() error
}

// NewTesseract returns an Engine backed by a gosseract client.
func NewTesseract(language string) (Engine, error) {
	client := gosseract.NewClient()
	if err := client.SetLanguage(language); err != nil {
		client.Close()
		return nil, fmt.Errorf("setting OCR language %q: %w", language, err)
	}
	return &tesseractEngine{client: client}, nil
}

type tesseractEngine struct {
	client *gosseract.Client
}

func (t *tesseractEngine) Recognize(image []byte) (string, error) {
	if err := t.client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("loading page image: %w", err)
	}
	return t.client.Text()
}

func (t *tesseractEngine) Close() error { return t.client.Close() }

// OCRStrategy rasterizes every page and recognizes its text. It is the
// fallback for statements whose pages carry no embedded text, and can be
// slow: one external recognition call per page, strictly sequential.
type OCRStrategy struct {
	Matcher  *pattern.Matcher
	Language string
	Log      *zap.Logger

	// NewEngine overrides the Tesseract engine, for tests.
	NewEngine func(language string) (Engine, error)
}

// Name identifies the strategy in diagnostics.
func (s *OCRStrategy) Name() string { return "ocr" }

// Extract renders each page and feeds the PNG to the engine. The
// rasterizer cannot authenticate, so the password goes unused here, as
// in the original pipeline; a statement it cannot open is an ordinary
// strategy error, not a DocumentError. Per-page failures are logged and
// skipped, so whatever pages succeed still contribute rows.
func (s *OCRStrategy) Extract(path, _ string) ([]model.RawTransaction, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("rasterizing %s: %w", path, err)
	}
	defer doc.Close()

	newEngine := s.NewEngine
	if newEngine == nil {
		newEngine = NewTesseract
	}
	engine, err := newEngine(s.Language)
	if err != nil {
		return nil, err
	}
	defer engine.Close()

	var txns []model.RawTransaction
	for i := 0; i < doc.NumPage(); i++ {
		img, err := doc.Image(i)
		if err != nil {
			s.Log.Warn("page render failed", zap.Int("page", i+1), zap.Error(err))
			continue
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			s.Log.Warn("page encode failed", zap.Int("page", i+1), zap.Error(err))
			continue
		}
		text, err := engine.Recognize(buf.Bytes())
		if err != nil {
			s.Log.Warn("page recognition failed", zap.Int("page", i+1), zap.Error(err))
			continue
		}
		rows := s.Matcher.FindAll(text)
		s.Log.Debug("page recognized", zap.Int("page", i+1), zap.Int("rows", len(rows)))
		txns = append(txns, rows...)
	}
	return txns, nil
}
