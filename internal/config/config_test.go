package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
			},
			wantErr: false,
		},
		{
			name: "missing paths",
			config: Config{
				Paths: PathsConfig{},
			},
			wantErr: true,
		},
		{
			name: "unknown provider",
			config: Config{
				Translator: TranslatorConfig{Provider: "deepl"},
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
			},
			wantErr: true,
		},
		{
			name: "libretranslate without url",
			config: Config{
				Translator: TranslatorConfig{Provider: "libretranslate"},
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Annotator: AnnotatorConfig{Models: map[string]string{"en": "en_core_web_lg"}},
		Paths:     PathsConfig{Input: "in", Output: "out"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Translator.Provider != "gemini" {
		t.Errorf("Provider = %v, want gemini", cfg.Translator.Provider)
	}
	if cfg.Annotator.Models["en"] != "en_core_web_lg" {
		t.Errorf("explicit model overwritten: %v", cfg.Annotator.Models["en"])
	}
	if cfg.Annotator.Models["de"] != "de_core_news_sm" {
		t.Errorf("default model missing: %v", cfg.Annotator.Models["de"])
	}
	if cfg.Summary.DefaultPrecision != "medium" || cfg.Summary.DefaultTarget != "fr" {
		t.Errorf("summary defaults = %+v", cfg.Summary)
	}
	if cfg.Performance.MaxConcurrent != 2 {
		t.Errorf("MaxConcurrent = %v, want 2", cfg.Performance.MaxConcurrent)
	}
	if len(cfg.Export.Formats) != 2 {
		t.Errorf("Formats = %v", cfg.Export.Formats)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	content := `
summary:
  default_precision: "high"
  default_target: "es"

annotator:
  python: "/usr/bin/python3"
  models:
    fr: "fr_core_news_md"

translator:
  provider: "gemini"
  gemini:
    model: "gemini-2.5-pro"

paths:
  input: "data/input"
  output: "data/output"

export:
  formats: ["docx"]
  font_family: "Times New Roman"
  font_size: 14
  emphasis: "italic"

logging:
  level: "info"
  format: "text"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GEMINI_API_KEYS", "key-one, key-two,,")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Paths.Input != "data/input" {
		t.Errorf("Input = %v, want %v", cfg.Paths.Input, "data/input")
	}
	if cfg.Summary.DefaultPrecision != "high" {
		t.Errorf("DefaultPrecision = %v, want high", cfg.Summary.DefaultPrecision)
	}
	if cfg.Annotator.Models["fr"] != "fr_core_news_md" {
		t.Errorf("fr model = %v", cfg.Annotator.Models["fr"])
	}
	if cfg.Export.FontSize != 14 || cfg.Export.Emphasis != "italic" {
		t.Errorf("Export = %+v", cfg.Export)
	}
	if got := cfg.Translator.GeminiAPIKeys; len(got) != 2 || got[0] != "key-one" || got[1] != "key-two" {
		t.Errorf("GeminiAPIKeys = %v", got)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
