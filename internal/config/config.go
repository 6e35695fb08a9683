package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level tngwallet.yaml configuration.
type Config struct {
	Statement StatementConfig `yaml:"statement"`
	OCR       OCRConfig       `yaml:"ocr"`
	Log       LogConfig       `yaml:"log"`
}

// StatementConfig describes the statement layout being parsed.
type StatementConfig struct {
	Year int `yaml:"year"` // year the row pattern anchors on
}

// OCRConfig controls the fallback recognition pass.
type OCRConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Language string `yaml:"language"` // tesseract language code
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console or json
}

// Load reads a tngwallet.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Statement: StatementConfig{
			Year: 2025,
		},
		OCR: OCRConfig{
			Enabled:  true,
			Language: "eng",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
