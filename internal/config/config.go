package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Summary     SummaryConfig     `yaml:"summary"`
	Annotator   AnnotatorConfig   `yaml:"annotator"`
	Translator  TranslatorConfig  `yaml:"translator"`
	Ingest      IngestConfig      `yaml:"ingest"`
	Paths       PathsConfig       `yaml:"paths"`
	Export      ExportConfig      `yaml:"export"`
	Server      ServerConfig      `yaml:"server"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type SummaryConfig struct {
	DefaultPrecision string `yaml:"default_precision"`
	DefaultTarget    string `yaml:"default_target"`
}

// AnnotatorConfig points at the spaCy worker. Models maps a language code to
// the spaCy pipeline loaded for it.
type AnnotatorConfig struct {
	Python                string            `yaml:"python"`
	ScriptDir             string            `yaml:"script_dir"`
	Models                map[string]string `yaml:"models"`
	StartupTimeoutSeconds int               `yaml:"startup_timeout_seconds"`
}

type TranslatorConfig struct {
	Provider       string               `yaml:"provider"`
	TimeoutSeconds int                  `yaml:"timeout_seconds"`
	CacheSize      int                  `yaml:"cache_size"`
	Gemini         GeminiConfig         `yaml:"gemini"`
	LibreTranslate LibreTranslateConfig `yaml:"libretranslate"`

	// Secrets are read from the environment, never from the YAML file.
	GeminiAPIKeys     []string `yaml:"-"`
	LibreTranslateKey string   `yaml:"-"`
}

type GeminiConfig struct {
	Model string `yaml:"model"`
}

type LibreTranslateConfig struct {
	URL string `yaml:"url"`
}

// IngestConfig names the external tools used to pull text out of documents.
type IngestConfig struct {
	PDFToText string `yaml:"pdftotext"`
}

type PathsConfig struct {
	Input      string `yaml:"input"`
	Output     string `yaml:"output"`
	Processing string `yaml:"processing"`
	Archived   string `yaml:"archived"`
	Failed     string `yaml:"failed"`
}

type ExportConfig struct {
	Formats    []string `yaml:"formats"`
	FontFamily string   `yaml:"font_family"`
	FontSize   int      `yaml:"font_size"`
	Emphasis   string   `yaml:"emphasis"`
}

// ServerConfig configures the HTTP API. RateLimit is requests per second per
// client address; zero disables limiting.
type ServerConfig struct {
	Addr      string  `yaml:"addr"`
	BodyLimit string  `yaml:"body_limit"`
	RateLimit float64 `yaml:"rate_limit"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads the YAML file at path, overlays secrets from the environment
// and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if keys := os.Getenv("GEMINI_API_KEYS"); keys != "" {
		for _, k := range strings.Split(keys, ",") {
			if k = strings.TrimSpace(k); k != "" {
				c.Translator.GeminiAPIKeys = append(c.Translator.GeminiAPIKeys, k)
			}
		}
	}
	if key := os.Getenv("LIBRETRANSLATE_API_KEY"); key != "" {
		c.Translator.LibreTranslateKey = key
	}
}

func (c *Config) Validate() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	switch c.Translator.Provider {
	case "":
		c.Translator.Provider = "gemini"
	case "gemini", "libretranslate":
	default:
		return fmt.Errorf("translator.provider must be gemini or libretranslate, got %q", c.Translator.Provider)
	}
	if c.Translator.Provider == "libretranslate" && c.Translator.LibreTranslate.URL == "" {
		return fmt.Errorf("translator.libretranslate.url is required")
	}

	if c.Paths.Processing == "" {
		c.Paths.Processing = "data/processing"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Failed == "" {
		c.Paths.Failed = "data/failed"
	}
	if c.Summary.DefaultPrecision == "" {
		c.Summary.DefaultPrecision = "medium"
	}
	if c.Summary.DefaultTarget == "" {
		c.Summary.DefaultTarget = "fr"
	}
	if c.Annotator.Python == "" {
		c.Annotator.Python = "python3"
	}
	if c.Annotator.ScriptDir == "" {
		c.Annotator.ScriptDir = "data/annotator"
	}
	if c.Annotator.StartupTimeoutSeconds == 0 {
		c.Annotator.StartupTimeoutSeconds = 120
	}
	if c.Annotator.Models == nil {
		c.Annotator.Models = map[string]string{}
	}
	for code, model := range defaultModels {
		if c.Annotator.Models[code] == "" {
			c.Annotator.Models[code] = model
		}
	}
	if c.Ingest.PDFToText == "" {
		c.Ingest.PDFToText = "pdftotext"
	}
	if c.Translator.TimeoutSeconds == 0 {
		c.Translator.TimeoutSeconds = 60
	}
	// Negative disables the cache.
	if c.Translator.CacheSize == 0 {
		c.Translator.CacheSize = 256
	}
	if c.Translator.Gemini.Model == "" {
		c.Translator.Gemini.Model = "gemini-2.5-flash"
	}
	if len(c.Export.Formats) == 0 {
		c.Export.Formats = []string{"pdf", "docx"}
	}
	if c.Export.FontFamily == "" {
		c.Export.FontFamily = "Arial"
	}
	if c.Export.FontSize == 0 {
		c.Export.FontSize = 12
	}
	if c.Export.Emphasis == "" {
		c.Export.Emphasis = "normal"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.BodyLimit == "" {
		c.Server.BodyLimit = "2M"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}

var defaultModels = map[string]string{
	"fr": "fr_core_news_sm",
	"en": "en_core_web_sm",
	"de": "de_core_news_sm",
	"es": "es_core_news_sm",
}
