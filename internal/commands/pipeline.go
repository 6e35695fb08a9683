package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rajeev00723/tng-ewallet-visualizer/internal/config"
	"github.com/rajeev00723/tng-ewallet-visualizer/internal/extract"
	"github.com/rajeev00723/tng-ewallet-visualizer/internal/logging"
	"github.com/rajeev00723/tng-ewallet-visualizer/internal/model"
	"github.com/rajeev00723/tng-ewallet-visualizer/internal/normalize"
)

// passwordEnv is consulted when --password is not given, so the password
// does not have to appear in shell history.
const passwordEnv = "TNG_PDF_PASSWORD"

// pipelineFlags are the flags every statement-reading command shares.
type pipelineFlags struct {
	password   string
	configPath string
	year       int
	ocrLang    string
	noOCR      bool
	logLevel   string
}

func (p *pipelineFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&p.password, "password", "p", "", "statement PDF password (or "+passwordEnv+")")
	cmd.Flags().StringVar(&p.configPath, "config", "", "path to tngwallet.yaml")
	cmd.Flags().IntVar(&p.year, "year", 0, "statement year the row pattern anchors on")
	cmd.Flags().StringVar(&p.ocrLang, "ocr-lang", "", "tesseract language for the OCR fallback")
	cmd.Flags().BoolVar(&p.noOCR, "no-ocr", false, "skip the OCR fallback")
	cmd.Flags().StringVar(&p.logLevel, "log-level", "", "diagnostic log level (debug, info, warn, error)")
}

// load resolves the effective configuration: file (or defaults), then
// flag overrides.
func (p *pipelineFlags) load() (*config.Config, error) {
	cfg := config.Default()
	if p.configPath != "" {
		loaded, err := config.Load(p.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if p.year != 0 {
		cfg.Statement.Year = p.year
	}
	if p.ocrLang != "" {
		cfg.OCR.Language = p.ocrLang
	}
	if p.noOCR {
		cfg.OCR.Enabled = false
	}
	if p.logLevel != "" {
		cfg.Log.Level = p.logLevel
	}
	return cfg, nil
}

// run extracts and normalizes one statement. "-" as path reads the PDF
// from stdin through the run-scoped temp file.
func (p *pipelineFlags) run(path string) ([]model.Transaction, error) {
	cfg, err := p.load()
	if err != nil {
		return nil, err
	}

	log, err := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return nil, err
	}
	defer log.Sync() //nolint:errcheck // stderr sync failure is uninteresting

	password := p.password
	if password == "" {
		password = os.Getenv(passwordEnv)
	}

	ex, err := extract.New(log, extract.Options{
		Year:        cfg.Statement.Year,
		OCRLanguage: cfg.OCR.Language,
		DisableOCR:  !cfg.OCR.Enabled,
	})
	if err != nil {
		return nil, err
	}

	var raws []model.RawTransaction
	if path == "-" {
		raws, err = ex.ExtractReader(os.Stdin, password)
	} else {
		raws, err = ex.ExtractFile(path, password)
	}
	if err != nil {
		return nil, err
	}
	return normalize.Normalize(raws)
}
