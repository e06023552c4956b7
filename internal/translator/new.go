package translator

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/nguyentantai21042004/digest-flow/internal/config"
	"github.com/nguyentantai21042004/digest-flow/internal/logger"
)

// New creates the Translator selected by cfg.Provider, behind an LRU cache
// when cfg.CacheSize is positive.
func New(cfg config.TranslatorConfig, log logger.Logger) (Translator, error) {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second

	var tr Translator
	switch cfg.Provider {
	case "", "gemini":
		tr = NewGemini(cfg.GeminiAPIKeys, cfg.Gemini.Model, timeout, log)
	case "libretranslate":
		tr = NewLibreTranslate(cfg.LibreTranslate.URL, cfg.LibreTranslateKey, &http.Client{Timeout: timeout}, log)
	default:
		return nil, fmt.Errorf("unknown translator provider %q", cfg.Provider)
	}

	if cfg.CacheSize <= 0 {
		return tr, nil
	}
	return NewCached(tr, cfg.CacheSize, log)
}

// NewGemini creates a Gemini-backed Translator that rotates through apiKeys
// when one is rate limited.
func NewGemini(apiKeys []string, model string, timeout time.Duration, log logger.Logger) Translator {
	g := &implGemini{
		apiKeys: apiKeys,
		model:   model,
		timeout: timeout,
		logger:  log,
	}
	g.generate = g.callGemini
	return g
}

// NewLibreTranslate creates a Translator for a LibreTranslate server.
func NewLibreTranslate(baseURL, apiKey string, client *http.Client, log logger.Logger) Translator {
	return &implLibreTranslate{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: client,
		logger:     log,
	}
}
