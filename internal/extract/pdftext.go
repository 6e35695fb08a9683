package extract

import (
	"fmt"
	"os"
	"strings"

	"github.com/dslipak/pdf"
	"go.uber.org/zap"

	"github.com/rajeev00723/tng-ewallet-visualizer/internal/model"
	"github.com/rajeev00723/tng-ewallet-visualizer/internal/pattern"
)

// TextStrategy reads the text embedded in the PDF, page by page.
type TextStrategy struct {
	Matcher *pattern.Matcher
	Log     *zap.Logger
}

// Name identifies the strategy in diagnostics.
func (s *TextStrategy) Name() string { return "pdf-text" }

// Extract opens the document with the password and matches each page's
// plain text. A page without extractable text contributes zero rows and
// is logged, never an error; a failed open or decrypt is *DocumentError.
func (s *TextStrategy) Extract(path, password string) ([]model.RawTransaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DocumentError{Path: path, Err: err}
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, &DocumentError{Path: path, Err: err}
	}

	r, err := openEncrypted(f, st.Size(), password)
	if err != nil {
		return nil, &DocumentError{Path: path, Err: err}
	}

	var txns []model.RawTransaction
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			s.Log.Warn("page missing from document", zap.Int("page", i))
			continue
		}
		text, err := pageText(page)
		if err != nil {
			s.Log.Warn("page text unreadable", zap.Int("page", i), zap.Error(err))
			continue
		}
		if strings.TrimSpace(text) == "" {
			s.Log.Warn("page has no extractable text", zap.Int("page", i))
			continue
		}
		rows := s.Matcher.FindAll(text)
		s.Log.Debug("page scanned", zap.Int("page", i), zap.Int("rows", len(rows)))
		txns = append(txns, rows...)
	}
	return txns, nil
}

// openEncrypted builds the reader, converting the library's panics on
// corrupt cross-reference tables into an ordinary error.
func openEncrypted(f *os.File, size int64, password string) (r *pdf.Reader, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("reading document structure: %v", p)
		}
	}()
	return pdf.NewReaderEncrypted(f, size, passwordOnce(password))
}

// pageText extracts a page's plain text, converting panics on malformed
// content streams into a per-page error.
func pageText(page pdf.Page) (text string, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("decoding page content: %v", p)
		}
	}()
	return page.GetPlainText(nil)
}

// passwordOnce yields the password a single time. NewReaderEncrypted
// calls the function until it returns "", so returning a constant would
// loop forever on a wrong password.
func passwordOnce(password string) func() string {
	used := false
	return func() string {
		if used {
			return ""
		}
		used = true
		return password
	}
}
